package model

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags so
// that the password hash is never serialized.
//
// TipePengguna distinguishes the account kind by convention:
// "tukang" marks a service provider, anything else is treated as
// a customer or admin account.
//
// Fields:
//  ID           – primary key identifier of the user.
//  NamaDepan    – first name.
//  NamaBelakang – last name.
//  Email        – email address (unique in the schema).
//  Password     – bcrypt hashed password.
//  Alamat       – street address.
//  TipePengguna – account type ("tukang" = provider).
//  Keahlian     – comma-joined skills string (nullable; only
//                 meaningful for provider accounts).
type User struct {
	ID           uint64  // users.id
	NamaDepan    string  // users.nama_depan
	NamaBelakang string  // users.nama_belakang
	Email        string  // users.email
	Password     string  // users.password (bcrypt hash)
	Alamat       string  // users.alamat
	TipePengguna string  // users.tipe_pengguna
	Keahlian     *string // users.keahlian (nullable)
}
