package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLog logs page views. Client addresses are never written out; each
// is replaced by a salted hash that is stable for the life of the salt.
type requestLog struct {
	salt string
}

func newRequestLog(salt string) *requestLog {
	if salt == "" {
		salt = rand.Text()
	}
	return &requestLog{salt: salt}
}

func (l *requestLog) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + l.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (l *requestLog) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/live/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" {
			c.Next()
			return
		}

		// Respect Do Not Track
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		log.Printf("view: %s %s %d visitor=%s %s",
			c.Request.Method, path, c.Writer.Status(), l.hashIP(c.ClientIP()), time.Since(start).Round(time.Microsecond))
	}
}
