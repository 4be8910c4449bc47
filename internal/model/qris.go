package model

// QRISSettings describes the static QRIS payment display record.
// It is not persisted anywhere; the handler serves a hardcoded
// value. QRIS is only a display aid for manual payment, not a
// payment gateway integration.
type QRISSettings struct {
	MerchantName  string `json:"merchant_name"`
	MerchantPhone string `json:"merchant_phone"`
	QRISImage     string `json:"qris_image"`
}
