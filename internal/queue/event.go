// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderCreatedEvent is published when a customer submits a new order.
// It carries enough information for downstream consumers to log or
// notify providers without querying the primary database.
type OrderCreatedEvent struct {
	OrderID      uint64 `json:"order_id"`
	NamaUser     string `json:"nama_user"`
	KategoriJasa string `json:"kategori_jasa"`
	Alamat       string `json:"alamat"`
	FotoMasalah  string `json:"foto_masalah,omitempty"`
	CreatedAt    string `json:"created_at"`
}
