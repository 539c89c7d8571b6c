package middleware

import (
	"fmt"
	"strings"

	"ecokart/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	UserIDKey        = "user_id"
	UserEmailKey     = "user_email"
	UserFirstNameKey = "user_first_name"
	UserLastNameKey  = "user_last_name"
	UserPictureKey   = "user_picture"
)

// AuthMiddleware verifies a bearer token minted by the identity
// provider and puts the subject and email claims on the context. Token
// issuance happens elsewhere; this service only verifies.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				return apperr.Unauthorized("missing bearer token")
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return apperr.Unauthorized("invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return apperr.Unauthorized("invalid token claims")
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return apperr.Unauthorized("token has no subject")
			}
			email, _ := claims["email"].(string)
			firstName, _ := claims["given_name"].(string)
			lastName, _ := claims["family_name"].(string)
			picture, _ := claims["picture"].(string)

			c.Set(UserIDKey, sub)
			c.Set(UserEmailKey, email)
			c.Set(UserFirstNameKey, firstName)
			c.Set(UserLastNameKey, lastName)
			c.Set(UserPictureKey, picture)
			return next(c)
		}
	}
}
