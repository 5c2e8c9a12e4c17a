package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a booking or completion is
// submitted twice with the same key. The key is reserved before the handler
// runs, so a concurrent duplicate gets 409 instead of running twice. Reusing
// a key with a different body is rejected.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		operatorID := OperatorID(c)
		if operatorID == uuid.Nil {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])

		ctx := c.Request.Context()
		ikey := &entity.IdempotencyKey{
			Key:         idempotencyKey,
			OperatorID:  operatorID,
			Endpoint:    c.Request.Method + " " + c.FullPath(),
			RequestHash: requestHash,
			ExpiresAt:   time.Now().Add(IdempotencyKeyTTL),
		}

		err = config.Repo.Create(ctx, ikey)
		if errors.Is(err, repository.ErrIdempotencyKeyInUse) {
			replayIdempotent(c, config.Repo, ikey)
			return
		}
		if err != nil {
			log.Printf("Warning: failed to reserve idempotency key: %v", err)
			c.Next()
			return
		}

		// release the reservation unless a response was stored, including
		// after a panic or a cancelled request
		releaseCtx := context.WithoutCancel(ctx)
		stored := false
		defer func() {
			if stored {
				return
			}
			if err := config.Repo.Delete(releaseCtx, idempotencyKey, operatorID); err != nil {
				log.Printf("Warning: failed to release idempotency key: %v", err)
			}
		}()

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// server errors are not cached so the operator can retry
		if c.Writer.Status() >= http.StatusInternalServerError {
			return
		}

		ikey.ResponseCode = c.Writer.Status()
		ikey.ResponseBody = blw.body.String()
		if err := config.Repo.SaveResponse(releaseCtx, ikey); err != nil {
			log.Printf("Warning: failed to store idempotency response: %v", err)
			return
		}
		stored = true
	}
}

// replayIdempotent answers a request whose key is already held
func replayIdempotent(c *gin.Context, repo repository.IdempotencyRepository, ikey *entity.IdempotencyKey) {
	existing, err := repo.GetByKey(c.Request.Context(), ikey.Key, ikey.OperatorID)
	if err != nil || existing == nil {
		response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is still being processed")
		c.Abort()
		return
	}

	if existing.RequestHash != "" && existing.RequestHash != ikey.RequestHash {
		response.ErrorWithCode(c, http.StatusUnprocessableEntity, "Idempotency-Key was already used for a different request")
		c.Abort()
		return
	}
	if existing.IsPending() {
		response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is still being processed")
		c.Abort()
		return
	}

	c.Header("X-Idempotency-Replayed", "true")
	c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
	c.Abort()
}

// SweepIdempotencyKeys deletes expired keys every interval until ctx is done
func SweepIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil {
				log.Printf("Warning: failed to delete expired idempotency keys: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
