package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // sentinel errors from the repository layer
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/rafidhani/tukang-backend/internal/config"     // app configuration
	"github.com/rafidhani/tukang-backend/internal/model"      // table row types
	"github.com/rafidhani/tukang-backend/internal/repository" // DB repositories
	"github.com/rafidhani/tukang-backend/internal/utils"      // password hashing helpers
)

// AuthHandler bundles dependencies for the register and login endpoints.
// The API is deliberately token-less: login returns the user object and
// the caller holds it client-side. There are no sessions to manage.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	NamaDepan    string `json:"nama_depan"`
	NamaBelakang string `json:"nama_belakang"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Alamat       string `json:"alamat"`
	TipePengguna string `json:"tipe_pengguna"` // "tukang" = provider, else customer/admin
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userJSON is the serialized user shape shared by login, profile update
// and the admin listing. The password hash is intentionally absent.
type userJSON struct {
	ID           uint64  `json:"id"`
	NamaDepan    string  `json:"nama_depan"`
	NamaBelakang string  `json:"nama_belakang"`
	Email        string  `json:"email"`
	Alamat       string  `json:"alamat"`
	TipePengguna string  `json:"tipe_pengguna"`
	Keahlian     *string `json:"keahlian"`
}

func toUserJSON(u model.User) userJSON {
	return userJSON{
		ID:           u.ID,
		NamaDepan:    u.NamaDepan,
		NamaBelakang: u.NamaBelakang,
		Email:        u.Email,
		Alamat:       u.Alamat,
		TipePengguna: u.TipePengguna,
		Keahlian:     u.Keahlian,
	}
}

// Register handles POST /api/register. The password is stored as a bcrypt
// hash; everything else is passed through to the users table as-is.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "body tidak valid"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "email dan password wajib diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.Users.Create(ctx, req.NamaDepan, req.NamaBelakang, req.Email,
		req.Password, req.Alamat, req.TipePengguna, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailTaken {
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Email sudah terdaftar"})
		}
		c.Logger().Errorf("register: create user: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Registrasi Berhasil"})
}

// Login handles POST /api/login. On a match the full user object (minus
// the password hash) is returned; the client keeps it for later calls.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "body tidak valid"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "email dan password wajib diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Email atau Password salah"})
		}
		c.Logger().Errorf("login: query user: %v", err)
		return c.JSON(http.StatusInternalServerError, internalError)
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Email atau Password salah"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": toUserJSON(u)})
}
