package config // package config loads application configuration from environment variables

import "os"

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Unlike secrets-heavy deployments, every value
// here has a local development default so the server boots against a stock
// XAMPP-style MySQL without any environment at all.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	DBUser     string // database username
	DBPass     string // database password (optional)
	DBHost     string // database host address
	DBPort     string // database port number
	DBName     string // database name
	UploadDir  string // directory for uploaded job photos
	BcryptCost int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config. Missing variables fall back to local defaults; nothing is fatal
// at this stage. Database connectivity problems surface when the pool is
// opened, not here.
func Load() Config {
	return Config{
		Env:        getenv("APP_ENV", "dev"),
		Port:       getenv("APP_PORT", "8080"),
		DBUser:     getenv("DB_USER", "root"),
		DBPass:     os.Getenv("DB_PASS"), // empty allowed (XAMPP default)
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     getenv("DB_NAME", "tukang_db"),
		UploadDir:  getenv("UPLOAD_DIR", "uploads"),
		BcryptCost: envInt("BCRYPT_COST", 10),
	}
}

// getenv returns the value of the environment variable or the given
// default when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
