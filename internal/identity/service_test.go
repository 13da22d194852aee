package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/testutil"
	"github.com/ssengur01/TalentFlows/pkg/config"
	"github.com/ssengur01/TalentFlows/pkg/jwtutil"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t, &model.Tenant{}, &model.User{}, &model.RefreshToken{})
	jwt := jwtutil.NewJWTUtil(&config.JWTConfig{
		SigningKey:        "test-signing-key",
		ExpirationMinutes: 60,
	})
	return NewService(db, jwt, time.Hour), db
}

func companyInput(email, company string) RegisterInput {
	return RegisterInput{
		Email:       email,
		Password:    "Password123!",
		FullName:    "Test Admin",
		Role:        model.RoleCompany,
		CompanyName: company,
	}
}

func TestRegister_CompanyCreatesTenantAndUser(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, companyInput("admin@acme.com", "Acme Corp"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" || result.RefreshToken == "" {
		t.Fatal("expected token pair")
	}

	var tenantCount, userCount int64
	db.Model(&model.Tenant{}).Count(&tenantCount)
	db.Model(&model.User{}).Count(&userCount)
	if tenantCount != 1 || userCount != 1 {
		t.Fatalf("expected 1 tenant and 1 user, got %d/%d", tenantCount, userCount)
	}

	var tenant model.Tenant
	db.First(&tenant)
	if tenant.Domain != "acme-corp.talentflows.com" {
		t.Fatalf("unexpected slug: %q", tenant.Domain)
	}

	var user model.User
	db.First(&user)
	if user.TenantID != tenant.ID {
		t.Fatal("user not assigned to the new tenant")
	}
	if user.PasswordHash == "Password123!" {
		t.Fatal("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password123!")) != nil {
		t.Fatal("stored hash does not verify")
	}
}

func TestRegister_CompanyWithoutNameFails(t *testing.T) {
	svc, db := newTestService(t)

	in := companyInput("admin@acme.com", "")
	_, err := svc.Register(context.Background(), in)

	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount != 0 {
		t.Fatal("no user should be created on validation failure")
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, companyInput("admin@acme.com", "Acme")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same email, different role: still a conflict.
	_, err := svc.Register(ctx, RegisterInput{
		Email:    "admin@acme.com",
		Password: "other",
		FullName: "Someone Else",
		Role:     model.RoleCandidate,
	})
	if !errors.Is(err, model.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_CandidateUsesSystemTenant(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.Register(ctx, RegisterInput{
			Email:    email,
			Password: "Password123!",
			FullName: "Candidate",
			Role:     model.RoleCandidate,
		})
		if err != nil {
			t.Fatalf("register %s: %v", email, err)
		}
	}

	// The System tenant is created once, idempotently.
	var tenants []model.Tenant
	db.Find(&tenants)
	if len(tenants) != 1 {
		t.Fatalf("expected a single System tenant, got %d", len(tenants))
	}
	if tenants[0].Name != model.SystemTenantName {
		t.Fatalf("unexpected tenant name %q", tenants[0].Name)
	}

	var users []model.User
	db.Find(&users)
	for _, u := range users {
		if u.TenantID != tenants[0].ID {
			t.Fatalf("candidate %s not in System tenant", u.Email)
		}
	}
}

func TestRegister_SlugCollisionDisambiguated(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, companyInput("one@acme.com", "Acme")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, companyInput("two@acme.com", "Acme")); err != nil {
		t.Fatalf("second register: %v", err)
	}

	var domains []string
	db.Model(&model.Tenant{}).Order("created_at").Pluck("domain", &domains)
	if len(domains) != 2 {
		t.Fatalf("expected 2 tenants, got %d", len(domains))
	}
	want := map[string]bool{
		"acme.talentflows.com":   true,
		"acme-2.talentflows.com": true,
	}
	for _, d := range domains {
		if !want[d] {
			t.Fatalf("unexpected domain %q", d)
		}
	}
}

func TestLogin_IssuesTokenWithTenantClaim(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, companyInput("admin@acme.com", "Acme")); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(ctx, "admin@acme.com", "Password123!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	jwt := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationMinutes: 60})
	claims, err := jwt.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Email != "admin@acme.com" || claims.Role != model.RoleCompany {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	var tenant model.Tenant
	db.First(&tenant)
	if claims.TenantID != tenant.ID {
		t.Fatalf("token tenant %s, want %s", claims.TenantID, tenant.ID)
	}
	if time.Until(claims.ExpiresAt.Time) > 61*time.Minute {
		t.Fatal("token lifetime exceeds 60 minutes")
	}
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, companyInput("admin@acme.com", "Acme")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "admin@acme.com", "nope"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "ghost@acme.com", "Password123!"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, companyInput("admin@acme.com", "Acme"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, reg.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.RefreshToken == reg.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}

	// The old token is revoked and cannot be replayed.
	if _, err := svc.Refresh(ctx, reg.RefreshToken); !errors.Is(err, model.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken on replay, got %v", err)
	}
}
