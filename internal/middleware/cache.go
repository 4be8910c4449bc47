package middleware

import (
	"bytes"
	stdcontext "context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rafidhani/tukang-backend/internal/config"
)

// bodyCapture duplicates the response body into a buffer while forwarding
// it to the client, so a successful response can be stored after the
// handler runs.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int
	limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	if w.size+len(b) <= w.limit {
		w.buf.Write(b)
	}
	w.size += len(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache returns an Echo middleware that caches successful JSON GET
// responses in Redis for the configured TTL. It is only attached to
// read-mostly endpoints (provider directory, QRIS settings). Responses
// other than 200, oversized bodies and non-GET requests are never cached,
// and any Redis failure falls through to the handler.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg, c)
			ctx := c.Request().Context()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Header().Set("X-Cache", "MISS")
			c.Response().Writer = cw

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.size <= cfg.MaxBodyBytes {
				// Storage is best effort; a failed SET only costs the
				// next request a database round trip. The write is
				// bounded so a slow Redis cannot hold the request open
				// after the response has been sent.
				storeCtx, cancel := stdcontext.WithTimeout(stdcontext.Background(), 500*time.Millisecond)
				defer cancel()
				_ = rdb.Set(storeCtx, key, cw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}

// cacheKey hashes method, route and raw query under the configured prefix.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	sum := sha1.Sum([]byte(r.Method + ":" + c.Path() + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}
