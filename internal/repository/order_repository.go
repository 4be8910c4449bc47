package repository

import (
	"context"
	"database/sql"

	"github.com/rafidhani/tukang-backend/internal/model"
)

// OrderRepo provides access to the `pesanan` table. Every operation is a
// single parameterized statement; the database is the only source of
// truth for order state.
type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

const orderColumns = "id,nama_user,kategori_jasa,deskripsi_masalah,alamat,foto_masalah,status"

// Create inserts a new order and returns its ID. foto may be nil when the
// customer submitted no photo; the column is nullable.
func (r *OrderRepo) Create(ctx context.Context, namaUser, kategori, deskripsi, alamat string, foto *string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO pesanan (nama_user, kategori_jasa, deskripsi_masalah, alamat, foto_masalah) VALUES (?,?,?,?,?)",
		namaUser, kategori, deskripsi, alamat, foto)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListAll returns every order newest-first (descending id).
func (r *OrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM pesanan ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetByID fetches one order. Returns ErrOrderNotFound when absent.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (model.Order, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM pesanan WHERE id=? LIMIT 1", id)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return o, ErrOrderNotFound
	}
	return o, err
}

// UpdateStatus overwrites the status column for an order. Status is free
// text; no transition rules are enforced here or in the schema.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE pesanan SET status=? WHERE id=?", status, id)
	return err
}

func scanOrder(s scanner) (model.Order, error) {
	var o model.Order
	var foto sql.NullString
	err := s.Scan(&o.ID, &o.NamaUser, &o.KategoriJasa, &o.DeskripsiMasalah,
		&o.Alamat, &foto, &o.Status)
	if foto.Valid {
		o.FotoMasalah = &foto.String
	}
	return o, err
}
