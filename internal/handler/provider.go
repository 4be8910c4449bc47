package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafidhani/tukang-backend/internal/repository"
)

// ProviderHandler serves the public provider directory.
type ProviderHandler struct {
	Users *repository.UserRepo
}

func NewProviderHandler(u *repository.UserRepo) *ProviderHandler {
	return &ProviderHandler{Users: u}
}

// tukangJSON is a directory entry for a provider account. Keahlian is
// always a list; the stored comma-joined string is split for display.
type tukangJSON struct {
	ID           uint64   `json:"id"`
	NamaDepan    string   `json:"nama_depan"`
	NamaBelakang string   `json:"nama_belakang"`
	Alamat       string   `json:"alamat"`
	Email        string   `json:"email"`
	Keahlian     []string `json:"keahlian"`
}

// ListTukang handles GET /api/tukang. It returns every provider account
// with the skills column split into a list.
func (h *ProviderHandler) ListTukang(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListTukang(ctx)
	if err != nil {
		c.Logger().Errorf("tukang: list providers: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}

	data := make([]tukangJSON, 0, len(users))
	for _, u := range users {
		data = append(data, tukangJSON{
			ID:           u.ID,
			NamaDepan:    u.NamaDepan,
			NamaBelakang: u.NamaBelakang,
			Alamat:       u.Alamat,
			Email:        u.Email,
			Keahlian:     splitKeahlian(u.Keahlian),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

// splitKeahlian turns the comma-joined skills column into a list. An
// absent or empty column yields the "Umum" (general) placeholder so the
// directory never shows a provider without at least one skill.
func splitKeahlian(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return []string{"Umum"}
	}
	parts := strings.Split(*raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"Umum"}
	}
	return out
}
