package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/scope"
	"github.com/ssengur01/TalentFlows/pkg/jwtutil"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const domainSuffix = ".talentflows.com"

// RegisterInput carries a registration request.
type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	Role        string
	CompanyName string
}

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	Token        string
	RefreshToken string
	Expiration   time.Time
}

// Service implements registration, login and token refresh. User and tenant
// lookups run through the repository bypass: both happen before a tenant
// context exists for the request.
type Service struct {
	db         *gorm.DB
	users      *scope.GlobalRepository[model.User]
	tenants    *scope.GlobalRepository[model.Tenant]
	refresh    *scope.GlobalRepository[model.RefreshToken]
	jwt        *jwtutil.JWTUtil
	refreshTTL time.Duration
}

// NewService creates the identity service.
func NewService(db *gorm.DB, jwt *jwtutil.JWTUtil, refreshTTL time.Duration) *Service {
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &Service{
		db:         db,
		users:      scope.NewGlobalRepository[model.User](db),
		tenants:    scope.NewGlobalRepository[model.Tenant](db),
		refresh:    scope.NewGlobalRepository[model.RefreshToken](db),
		jwt:        jwt,
		refreshTTL: refreshTTL,
	}
}

// Register creates the user and, for the Company role, a fresh tenant. The
// whole registration is one transaction: no tenant is left behind when the
// user insert fails.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Role != model.RoleCompany && in.Role != model.RoleCandidate {
		return nil, model.NewValidationError("role must be Company or Candidate")
	}
	if in.Role == model.RoleCompany && strings.TrimSpace(in.CompanyName) == "" {
		return nil, model.NewValidationError("companyName is required for the Company role")
	}

	// Duplicate email check is global and case-sensitive.
	if _, err := s.users.FindOne(ctx, "email = ?", in.Email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user model.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenantID uuid.UUID

		if in.Role == model.RoleCompany {
			t := model.Tenant{
				Name:     in.CompanyName,
				Domain:   s.uniqueDomain(tx, in.CompanyName),
				IsActive: true,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			tenantID = t.ID
		} else {
			t, err := ensureSystemTenant(tx)
			if err != nil {
				return err
			}
			tenantID = t.ID
		}

		user = model.User{
			TenantID:     tenantID,
			Email:        in.Email,
			PasswordHash: string(hash),
			FullName:     in.FullName,
			Role:         in.Role,
			IsActive:     true,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, &user)
}

// Login verifies credentials and issues a token pair. Unknown user and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindOne(ctx, "email = ?", email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the given refresh token and issues a fresh token pair.
func (s *Service) Refresh(ctx context.Context, token string) (*AuthResult, error) {
	rt, err := s.refresh.FindOne(ctx, "token = ?", token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !rt.IsValid() {
		return nil, model.ErrInvalidRefreshToken
	}

	user, err := s.users.Get(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidRefreshToken
		}
		return nil, err
	}

	rt.Revoked = true
	if err := s.refresh.Update(ctx, rt.ID, rt); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// EnsureSystemTenant creates the singleton System tenant if absent. Called
// at service startup and whenever a candidate registers.
func (s *Service) EnsureSystemTenant(ctx context.Context) (*model.Tenant, error) {
	return ensureSystemTenant(s.db.WithContext(ctx))
}

func ensureSystemTenant(tx *gorm.DB) (*model.Tenant, error) {
	var t model.Tenant
	err := tx.Where(model.Tenant{Name: model.SystemTenantName}).
		Attrs(model.Tenant{Domain: "talentflows.com", IsActive: true}).
		FirstOrCreate(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// uniqueDomain derives the tenant slug from the company name and
// disambiguates collisions with a numeric suffix: acme, acme-2, acme-3, ...
func (s *Service) uniqueDomain(tx *gorm.DB, companyName string) string {
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(companyName), " ", "-"))

	candidate := base + domainSuffix
	for i := 2; ; i++ {
		var n int64
		tx.Model(&model.Tenant{}).Where("domain = ?", candidate).Count(&n)
		if n == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d%s", base, i, domainSuffix)
	}
}

func (s *Service) issueTokens(ctx context.Context, user *model.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role, user.TenantID)
	if err != nil {
		return nil, err
	}

	rt := model.RefreshToken{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refresh.Create(ctx, &rt); err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:        token,
		RefreshToken: rt.Token,
		Expiration:   expiresAt,
	}, nil
}
