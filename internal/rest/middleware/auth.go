package middleware

import (
	"net/http"
	"strings"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer access token and stores the acting user's id
// in the gin context under rest.ContextUserKey.
func Auth(tokens *auth.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": domain.ErrUnauthorized.Error(),
			})
			return
		}

		userID, err := tokens.Decode(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": domain.ErrUnauthorized.Error(),
			})
			return
		}

		c.Set(rest.ContextUserKey, userID)
		c.Next()
	}
}
