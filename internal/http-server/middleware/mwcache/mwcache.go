// Package mwcache is a redis-backed response cache for read-only event
// endpoints. Entries expire on a short TTL instead of being invalidated
// on write; slot counts may lag by at most the TTL, which the booking
// path never relies on (it always checks the database).
package mwcache

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// statusSep separates the HTTP status from the body in the cached value.
const statusSep = '\n'

type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

func cacheKey(r *http.Request) string {
	sum := sha1.Sum([]byte(r.Method + ":" + r.URL.RequestURI()))
	return fmt.Sprintf("cache:%x", sum)
}

// New returns a middleware caching successful GET responses in redis
// for the given TTL. A nil client disables caching entirely, and redis
// failures fall through to the handler, so the cache can never take
// reads down with it.
func New(rdb *redis.Client, ttl time.Duration) func(next http.Handler) http.Handler {
	if rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			if val, err := rdb.Get(r.Context(), key).Bytes(); err == nil {
				if i := bytes.IndexByte(val, statusSep); i > 0 {
					var status int
					if _, err := fmt.Sscanf(string(val[:i]), "%d", &status); err == nil {
						w.Header().Set("Content-Type", "application/json")
						w.Header().Set("X-Cache", "HIT")
						w.WriteHeader(status)
						_, _ = w.Write(val[i+1:])
						return
					}
				}
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(cw, r)

			if cw.status == http.StatusOK {
				val := append([]byte(fmt.Sprintf("%d%c", cw.status, statusSep)), cw.buf.Bytes()...)
				_ = rdb.Set(r.Context(), key, val, ttl).Err()
			}
		}

		return http.HandlerFunc(fn)
	}
}
