package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader names the client-chosen deduplication key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a response stays replayable.
	IdempotencyKeyTTL = 5 * time.Minute
	// IdempotencyReplayedHeader marks a response served from the cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
)

// perRequestHeaders describe the current exchange and are never replayed.
var perRequestHeaders = map[string]bool{
	http.CanonicalHeaderKey(RequestIDHeader): true,
	"X-Ratelimit-Limit":                      true,
	"X-Ratelimit-Remaining":                  true,
	"Retry-After":                            true,
	"Date":                                   true,
	"Content-Length":                         true,
}

// cachedResponse is a replayable 2xx response.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig controls the Idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled configuration with its own cache.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency replays the stored response when a write request arrives again
// with the same Idempotency-Key, caller and body. Only 2xx responses are kept.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !isWriteMethod(c.Request.Method) {
			c.Next()
			return
		}

		digest := generateCacheKey(key, GetSubject(c), c.Request)
		if cached, ok := cfg.Cache.Get(digest); ok {
			replay(c, cached)
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		cfg.Cache.Set(digest, &cachedResponse{
			StatusCode: status,
			Headers:    replayableHeaders(rec.Header()),
			Body:       rec.body.Bytes(),
		})
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func replay(c *gin.Context, cached *cachedResponse) {
	for k, v := range cached.Headers {
		c.Header(k, v)
	}
	c.Header(IdempotencyReplayedHeader, "true")

	contentType := cached.Headers["Content-Type"]
	if contentType == "" {
		contentType = gin.MIMEJSON
	}
	c.Data(cached.StatusCode, contentType, cached.Body)
	c.Abort()
}

func replayableHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) == 0 || perRequestHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		out[k] = v[0]
	}
	return out
}

// generateCacheKey digests the idempotency key with the caller, method, path
// and body, so a reused key with a different payload is not replayed. The
// body is restored for the handler.
func generateCacheKey(idempotencyKey, subject string, req *http.Request) string {
	h := sha256.New()
	for _, part := range []string{idempotencyKey, subject, req.Method, req.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// recordingWriter copies the response body while it is written.
type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
