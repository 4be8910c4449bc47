package model

// Order represents a job request (pesanan) submitted by a
// customer. The status column is free text by design; typical
// values are "pending", "paid", "done" and "cancelled" but the
// schema does not enforce an enum or any transition rules.
//
// Fields:
//  ID               – primary key identifier.
//  NamaUser         – name of the requesting customer.
//  KategoriJasa     – requested service category.
//  DeskripsiMasalah – free-text problem description.
//  Alamat           – job site address.
//  FotoMasalah      – filename of the uploaded problem photo
//                     (nullable; file lives in the upload store).
//  Status           – free-text order status.
type Order struct {
	ID               uint64  // pesanan.id
	NamaUser         string  // pesanan.nama_user
	KategoriJasa     string  // pesanan.kategori_jasa
	DeskripsiMasalah string  // pesanan.deskripsi_masalah
	Alamat           string  // pesanan.alamat
	FotoMasalah      *string // pesanan.foto_masalah (nullable)
	Status           string  // pesanan.status
}
