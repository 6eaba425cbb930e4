package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/repository"
)

// IdempotencyKeyHeader is the HTTP header carrying the client's key
const IdempotencyKeyHeader = "Idempotency-Key"

// idempotencyKeyTTL is how long a cached response is replayed
const idempotencyKeyTTL = 24 * time.Hour

// bodyCapturingWriter wraps gin.ResponseWriter to keep a copy of the
// response body for the idempotency cache.
type bodyCapturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response when a POST arrives with an
// Idempotency-Key the same user already submitted, so a retried form post
// cannot create the record twice. Requests without the header pass through
// untouched.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		rawID, _ := sessions.Default(c).Get(SessionUserIDKey).(string)
		userID, err := uuid.Parse(rawID)
		if err != nil {
			c.Next()
			return
		}

		existing, err := repo.GetByKey(c.Request.Context(), key, userID)
		if err == nil && existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		writer := &bodyCapturingWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		// Only successful writes are worth replaying.
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		_ = repo.Create(c.Request.Context(), &entity.IdempotencyKey{
			Key:          key,
			UserID:       userID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: c.Writer.Status(),
			ResponseBody: writer.body.String(),
			ExpiresAt:    time.Now().Add(idempotencyKeyTTL),
		})
	}
}
