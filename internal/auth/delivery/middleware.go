package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindcare-client/internal/auth/usecase"
)

// RequireSession guards authenticated views. The check runs on every
// request to a guarded route, so an expired token is caught at the next
// navigation; a page already rendered when the token expires stays up
// until then, which is accepted behavior.
func RequireSession(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := authUsecase.ValidSession()
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}
