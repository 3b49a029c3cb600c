package tokens

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/scrollverse/metalbridge/lib/responses"
)

type jwtCustomClaims struct {
	Identity string `json:"identity"`

	jwt.StandardClaims
}

// GenerateIdentityToken issues an access token binding the caller to a
// registry identity. Only the admin surface hands these out; the identity
// inside is what the certifier and vault-operator checks run against.
func GenerateIdentityToken(secret []byte, expiryInSeconds int, identity string) (string, error) {
	claims := &jwtCustomClaims{
		Identity: strings.ToLower(identity),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryInSeconds) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

// Middleware validates the bearer token and stores the caller identity on the
// echo context under "Identity".
func Middleware(secret []byte) echo.MiddlewareFunc {
	config := middleware.JWTConfig{
		Claims:     &jwtCustomClaims{},
		SigningKey: secret,
		SuccessHandler: func(c echo.Context) {
			token := c.Get("user").(*jwt.Token)
			claims := token.Claims.(*jwtCustomClaims)
			c.Set("Identity", claims.Identity)
		},
		ErrorHandler: func(err error) error {
			// a missing header keeps echo's 400, a bad token is an auth failure
			if err == middleware.ErrJWTMissing {
				return err
			}
			return &echo.HTTPError{
				Code:    responses.BadAuthError.HttpStatusCode,
				Message: responses.BadAuthError,
			}
		},
	}
	return middleware.JWTWithConfig(config)
}

// ParseIdentity is the test-friendly counterpart of Middleware.
func ParseIdentity(secret []byte, tokenString string) (string, error) {
	claims := &jwtCustomClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	return claims.Identity, nil
}
