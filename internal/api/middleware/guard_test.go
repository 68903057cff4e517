package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

func guardContext(t *testing.T, path string, cookie *http.Cookie) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGuard_RequireSession_Valid(t *testing.T) {
	guard := NewGuard(testSessions(), testPaths)
	c := guardContext(t, "/dashboard", sessionCookie(t, domain.RoleCustomer))

	record, err := guard.RequireSession(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.SubjectID != "42" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestGuard_RequireSession_AbsentRedirectsToLogin(t *testing.T) {
	guard := NewGuard(testSessions(), testPaths)
	c := guardContext(t, "/dashboard", nil)

	record, err := guard.RequireSession(c)
	if record != nil {
		t.Fatalf("no record may be returned on a failed guard call")
	}

	var redirect *domain.Redirect
	if !errors.As(err, &redirect) {
		t.Fatalf("expected redirect control transfer, got %v", err)
	}
	if redirect.Location != "/login?return_to=%2Fdashboard" {
		t.Fatalf("redirect = %q", redirect.Location)
	}
}

func TestGuard_RequireRole_Match(t *testing.T) {
	guard := NewGuard(testSessions(), testPaths)
	c := guardContext(t, "/admin", sessionCookie(t, domain.RoleAdmin))

	record, err := guard.RequireRole(c, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Role != domain.RoleAdmin {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestGuard_RequireRole_MismatchRedirectsToLanding(t *testing.T) {
	guard := NewGuard(testSessions(), testPaths)
	c := guardContext(t, "/admin", sessionCookie(t, domain.RoleCustomer))

	record, err := guard.RequireRole(c, domain.RoleAdmin)
	if record != nil {
		t.Fatalf("no record may be returned on a role mismatch")
	}

	var redirect *domain.Redirect
	if !errors.As(err, &redirect) {
		t.Fatalf("expected redirect control transfer, got %v", err)
	}
	if redirect.Location != "/dashboard" {
		t.Fatalf("redirect = %q, want /dashboard", redirect.Location)
	}
}

func TestGuard_RequireRole_NoSessionRedirectsToLogin(t *testing.T) {
	guard := NewGuard(testSessions(), testPaths)
	c := guardContext(t, "/admin", nil)

	_, err := guard.RequireRole(c, domain.RoleAdmin)
	var redirect *domain.Redirect
	if !errors.As(err, &redirect) {
		t.Fatalf("expected redirect control transfer, got %v", err)
	}
	if redirect.Location != "/login?return_to=%2Fadmin" {
		t.Fatalf("redirect = %q", redirect.Location)
	}
}
