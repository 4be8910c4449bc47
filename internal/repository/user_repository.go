package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rafidhani/tukang-backend/internal/model"
	"github.com/rafidhani/tukang-backend/internal/utils"
)

// UserRepo provides access to the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,nama_depan,nama_belakang,email,password,alamat,tipe_pengguna,keahlian"

// Create inserts a user with a bcrypt-hashed password and returns its ID.
func (r *UserRepo) Create(ctx context.Context, namaDepan, namaBelakang, email, password, alamat, tipePengguna string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (nama_depan, nama_belakang, email, password, alamat, tipe_pengguna) VALUES (?,?,?,?,?,?)",
		namaDepan, namaBelakang, email, hash, alamat, tipePengguna)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email)
	return scanUser(row)
}

// GetByID fetches a user by id. Returns ErrUserNotFound when absent.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return u, ErrUserNotFound
	}
	return u, err
}

// ListTukang returns all provider accounts (tipe_pengguna = 'tukang').
func (r *UserRepo) ListTukang(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE tipe_pengguna='tukang'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

// ListAll returns every user newest-first for the admin surface.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

// UpdateProfile updates the mutable profile columns of a user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, namaDepan, namaBelakang, email, alamat string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET nama_depan=?, nama_belakang=?, email=?, alamat=? WHERE id=?",
		namaDepan, namaBelakang, email, alamat, id)
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
		return ErrEmailTaken
	}
	return err
}

// Delete removes a user by id. Deleting an id that does not exist is not
// an error; the operation is idempotent.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	return err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanUser(s scanner) (model.User, error) {
	var u model.User
	var keahlian sql.NullString
	err := s.Scan(&u.ID, &u.NamaDepan, &u.NamaBelakang, &u.Email, &u.Password,
		&u.Alamat, &u.TipePengguna, &keahlian)
	if keahlian.Valid {
		u.Keahlian = &keahlian.String
	}
	return u, err
}

func collectUsers(rows *sql.Rows) ([]model.User, error) {
	out := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
