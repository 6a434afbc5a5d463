package middleware

import (
	"go-hrms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger to the request context.
// It must run after RequestID and, for actor tagging, after AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		fields := []zap.Field{zap.String("request_id", contextutil.GetRequestID(ctx))}
		if actorID, ok := contextutil.GetActorID(ctx); ok {
			fields = append(fields, zap.Int64("actor_id", actorID))
		}

		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
