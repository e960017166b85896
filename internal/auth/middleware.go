package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
	"github.com/cookie-sid/job-application-tracker/internal/repo"
)

const contextKeyUser = "current_user"

// Rejection messages. Bad signature, expired token, and deleted user all
// collapse into the same message so a caller cannot probe which one it was.
const (
	msgNoToken      = "Authentication required."
	msgInvalidToken = "Invalid or expired token."
)

// CurrentUser returns the user resolved by RequireAuth for this request.
func CurrentUser(c *gin.Context) (dom.User, bool) {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return dom.User{}, false
	}
	u, ok := v.(dom.User)
	return u, ok
}

// RequireAuth verifies the bearer token, resolves the user it names, and
// attaches the user to the request context. Any failure short of a store
// error is a 401 with a uniform body.
func RequireAuth(tokens *TokenService, users repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			reject(c, http.StatusUnauthorized, msgNoToken)
			return
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			reject(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				reject(c, http.StatusUnauthorized, msgInvalidToken)
				return
			}
			reject(c, http.StatusInternalServerError, "Server error during authentication.")
			return
		}
		c.Set(contextKeyUser, u)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func reject(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}
