package latetest

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// JSON responds with status and body encoded as JSON.
func JSON(status int, body any) Responder {
	return func(c *gin.Context) {
		c.JSON(status, body)
	}
}

// NoContent responds 204 without a body.
func NoContent() Responder {
	return func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	}
}

// Raw responds with a verbatim body, e.g. an HTML error page from a proxy.
func Raw(status int, contentType, body string) Responder {
	return func(c *gin.Context) {
		c.Data(status, contentType, []byte(body))
	}
}

// Error responds with the API error body shape. Empty fields are omitted.
func Error(status int, message, code string) Responder {
	return func(c *gin.Context) {
		body := gin.H{}
		if message != "" {
			body["error"] = message
		}
		if code != "" {
			body["code"] = code
		}
		c.JSON(status, body)
	}
}

// ValidationFailed responds 400 with per-field violation messages.
func ValidationFailed(message string, fields map[string][]string) Responder {
	return func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   message,
			"details": gin.H{"fields": fields},
		})
	}
}

// RateLimited responds 429 with the X-RateLimit-* headers.
func RateLimited(limit, remaining int, reset time.Time) Responder {
	return func(c *gin.Context) {
		SetRateLimitHeaders(c, limit, remaining, reset)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
	}
}

// Sequence answers with each responder in turn, repeating the last one.
func Sequence(responders ...Responder) Responder {
	var mu sync.Mutex
	n := 0
	return func(c *gin.Context) {
		mu.Lock()
		i := min(n, len(responders)-1)
		n++
		mu.Unlock()
		responders[i](c)
	}
}

// SetRateLimitHeaders writes the quota headers; reset is sent as epoch seconds.
func SetRateLimitHeaders(c *gin.Context, limit, remaining int, reset time.Time) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
}
