package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/customer-portal/internal/api/middleware"
	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

// PagesHandler serves the portal's page endpoints. Every protected page calls
// the guard itself before touching its data, independent of the gatekeeper at
// the edge: a misconfigured route table must never be the only line of
// defense. A failed guard call is returned immediately — nothing below it
// runs.
type PagesHandler struct {
	guard *middleware.Guard
}

func NewPagesHandler(guard *middleware.Guard) *PagesHandler {
	return &PagesHandler{guard: guard}
}

// Home handles GET / — public.
func (h *PagesHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "home"})
}

// Dashboard handles GET /dashboard — any authenticated user.
func (h *PagesHandler) Dashboard(c echo.Context) error {
	record, err := h.guard.RequireSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"page":  "dashboard",
		"email": record.Email,
		"role":  record.Role,
	})
}

// Account handles GET /account — any authenticated user.
func (h *PagesHandler) Account(c echo.Context) error {
	record, err := h.guard.RequireSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"page":       "account",
		"subject_id": record.SubjectID,
		"email":      record.Email,
	})
}

// Admin handles GET /admin — admin role only.
func (h *PagesHandler) Admin(c echo.Context) error {
	record, err := h.guard.RequireRole(c, domain.RoleAdmin)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"page": "admin",
		"role": record.Role,
	})
}
