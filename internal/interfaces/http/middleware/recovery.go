package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"vbuddy/internal/shared/logger"
)

// Recovery catches handler panics, logs them with a stack trace, and
// answers with a generic 500.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("request handler panicked",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal server error.",
				})
			}
		}()
		c.Next()
	}
}
