package tenant

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestFromHeader_Valid(t *testing.T) {
	id := uuid.New()
	h := http.Header{}
	h.Set(HeaderName, id.String())

	if got := FromHeader(h); got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestFromHeader_Missing(t *testing.T) {
	if got := FromHeader(http.Header{}); got != uuid.Nil {
		t.Fatalf("expected uuid.Nil for missing header, got %s", got)
	}
}

func TestFromHeader_Malformed(t *testing.T) {
	cases := []string{"not-a-uuid", "12345", "e4c0ffee", " "}
	for _, raw := range cases {
		h := http.Header{}
		h.Set(HeaderName, raw)
		if got := FromHeader(h); got != uuid.Nil {
			t.Fatalf("expected uuid.Nil for %q, got %s", raw, got)
		}
	}
}

func TestContext_Resolved(t *testing.T) {
	if NewContext(uuid.Nil).Resolved() {
		t.Fatal("nil tenant must be unresolved")
	}

	id := uuid.New()
	tc := NewContext(id)
	if !tc.Resolved() {
		t.Fatal("expected resolved context")
	}
	if tc.TenantID() != id {
		t.Fatalf("expected %s, got %s", id, tc.TenantID())
	}
}
