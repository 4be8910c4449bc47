package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhani/tukang-backend/internal/repository"
)

const userCols = "id,nama_depan,nama_belakang,email,password,alamat,tipe_pengguna,keahlian"

func newAdminHandler(t *testing.T) (*AdminHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewAdminHandler(repository.NewUserRepo(db)), mock
}

func TestAdminListUsersRedactsPassword(t *testing.T) {
	h, mock := newAdminHandler(t)
	e := echo.New()

	rows := sqlmock.NewRows([]string{"id", "nama_depan", "nama_belakang", "email", "password", "alamat", "tipe_pengguna", "keahlian"}).
		AddRow(2, "Sari", "P", "sari@example.com", "$2a$10$hash", "Jl. B", "pelanggan", nil).
		AddRow(1, "Agus", "W", "agus@example.com", "$2a$10$hash", "Jl. A", "tukang", "Ledeng")
	mock.ExpectQuery("SELECT " + userCols + " FROM users ORDER BY id DESC").
		WillReturnRows(rows)

	c, rec := jsonRequest(e, http.MethodGet, "/api/users/all", "")
	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")

	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 2)
	assert.EqualValues(t, 2, data[0].(map[string]any)["id"], "newest first")
}

func TestAdminDeleteUserIdempotent(t *testing.T) {
	h, mock := newAdminHandler(t)
	e := echo.New()

	// Deleting an id with no matching row still succeeds.
	mock.ExpectExec("DELETE FROM users WHERE id=?").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := jsonRequest(e, http.MethodDelete, "/api/users/42", "")
	c.SetPath("/api/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.DeleteUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User berhasil dihapus", body["message"])
}

func TestAdminUpdateProfileReturnsStoredUser(t *testing.T) {
	h, mock := newAdminHandler(t)
	e := echo.New()

	mock.ExpectExec("UPDATE users SET nama_depan=?, nama_belakang=?, email=?, alamat=? WHERE id=?").
		WithArgs("Budi", "Santoso", "budi.baru@example.com", "Jl. Baru 2", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT " + userCols + " FROM users WHERE id=? LIMIT 1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama_depan", "nama_belakang", "email", "password", "alamat", "tipe_pengguna", "keahlian"}).
			AddRow(1, "Budi", "Santoso", "budi.baru@example.com", "x", "Jl. Baru 2", "pelanggan", nil))

	c, rec := jsonRequest(e, http.MethodPut, "/api/users/1",
		`{"nama_depan":"Budi","nama_belakang":"Santoso","email":"Budi.Baru@Example.com","alamat":"Jl. Baru 2"}`)
	c.SetPath("/api/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user := body["user"].(map[string]any)
	assert.Equal(t, "budi.baru@example.com", user["email"])
	assert.Equal(t, "Jl. Baru 2", user["alamat"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
