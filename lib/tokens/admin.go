package tokens

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// AdminTokenMiddleware guards the registry administration surface. With no
// token configured the admin endpoints are open, which is only sensible for
// local development.
func AdminTokenMiddleware(token string) echo.MiddlewareFunc {
	if token == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return middleware.KeyAuth(func(auth string, c echo.Context) (bool, error) {
		return subtle.ConstantTimeCompare([]byte(auth), []byte(token)) == 1, nil
	})
}
