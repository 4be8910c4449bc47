package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafidhani/tukang-backend/internal/repository"
)

// AdminHandler serves the admin user-management endpoints plus the
// customer profile update. Order status forcing reuses
// OrderHandler.UpdateStatus via a route alias.
type AdminHandler struct {
	Users *repository.UserRepo
}

func NewAdminHandler(u *repository.UserRepo) *AdminHandler {
	return &AdminHandler{Users: u}
}

// ListUsers handles GET /api/users/all, newest-first. Password hashes are
// excluded from the serialized shape.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		c.Logger().Errorf("users: list all: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	data := make([]userJSON, 0, len(users))
	for _, u := range users {
		data = append(data, toUserJSON(u))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

// DeleteUser handles DELETE /api/users/:id. The delete is idempotent:
// removing an id that does not exist still reports success.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "id tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		c.Logger().Errorf("users: delete %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "User berhasil dihapus"})
}

type updateProfileReq struct {
	NamaDepan    string `json:"nama_depan"`
	NamaBelakang string `json:"nama_belakang"`
	Email        string `json:"email"`
	Alamat       string `json:"alamat"`
}

// UpdateProfile handles PUT /api/users/:id. It writes the profile columns
// and then re-reads the row so the client receives the stored state.
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "id tidak valid"})
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "body tidak valid"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, id, req.NamaDepan, req.NamaBelakang, req.Email, req.Alamat); err != nil {
		if err == repository.ErrEmailTaken {
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Email sudah terdaftar"})
		}
		c.Logger().Errorf("users: update profile %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User tidak ditemukan"})
		}
		c.Logger().Errorf("users: reload profile %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Profil berhasil diperbarui!",
		"user":    toUserJSON(u),
	})
}
