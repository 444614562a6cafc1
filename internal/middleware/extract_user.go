package middleware

import (
	"go-paie/internal/shared/contextutil"
	"go-paie/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ExtractUserID copies the authenticated user id to user_id_validated and to
// the request context.
func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.AbortWithError(ctx, ErrMissingAuthContext)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.AbortWithError(ctx, ErrMissingAuthContext)
			return
		}

		ctx.Set("user_id_validated", userIDStr)
		ctx.Request = ctx.Request.WithContext(contextutil.WithUserID(ctx.Request.Context(), userIDStr))
		ctx.Next()
	}
}
