package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"songblog-backend/internal/shared/response"
)

// Recovery bắt panic, log kèm request_id và render trang lỗi 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				response.InternalErrorPage(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
