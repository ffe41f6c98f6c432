package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize runs the remaining handlers of every request under one mutex, so
// calls into the ledger never overlap. Read-only routes may be registered
// outside of it.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
