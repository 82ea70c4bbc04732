package middleware

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tino-ryan/restaurant-app/pkg"
)

const staffSubjectKey = "staff_subject"

// ExtractBearerToken pulls the JWT out of the Authorization header.
// Expected format: "Bearer {token}".
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("authorization header format must be 'Bearer {token}'")
	}

	return parts[1], nil
}

// StaffAuth gates the staff route group. Tokens are verified against
// STAFF_JWT_SECRET (HMAC); the subject claim identifies the staff member
// and is stored on the context for downstream logging.
func StaffAuth() gin.HandlerFunc {
	secret := os.Getenv("STAFF_JWT_SECRET")
	if secret == "" {
		log.Printf("[auth][middleware] STAFF_JWT_SECRET not set; staff routes will reject all requests")
	}

	return func(c *gin.Context) {
		tokenString, err := ExtractBearerToken(c.Request)
		if err != nil {
			log.Printf("[auth][middleware] missing token path=%s err=%v", c.FullPath(), err)
			abortUnauthorized(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] invalid token path=%s err=%v", c.FullPath(), err)
			abortUnauthorized(c)
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok && sub != "" {
				c.Set(staffSubjectKey, sub)
			}
		}

		c.Next()
	}
}

// StaffSubject returns the authenticated staff identity, if any.
func StaffSubject(c *gin.Context) string {
	sub, _ := c.Get(staffSubjectKey)
	s, _ := sub.(string)
	return s
}

func abortUnauthorized(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid staff credentials", http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
