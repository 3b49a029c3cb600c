package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBadAuthErrorsNotAllowedForSentry(t *testing.T) {
	badAuthErrResponse := echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"error":   true,
		"code":    1,
		"message": "bad auth",
	})

	isAllowed := isErrAllowedForSentry(badAuthErrResponse)
	assert.False(t, isAllowed)
}

func TestNotBadAuthErrorsAllowedForSentry(t *testing.T) {
	notBadAuthErrResponse := echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"error":   true,
		"code":    2,
		"message": "not bad auth",
	})

	isAllowed := isErrAllowedForSentry(notBadAuthErrResponse)
	assert.True(t, isAllowed)
}

func TestNonErrorResponseErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}

func TestRegistryAuthFailuresNotAllowedForSentry(t *testing.T) {
	// the token middleware wraps BadAuthError directly
	for _, errResponse := range []ErrorResponse{BadAuthError, AuthorizationError} {
		err := &echo.HTTPError{Code: errResponse.HttpStatusCode, Message: errResponse}
		assert.False(t, isErrAllowedForSentry(err))
	}
}

func TestRegistryDomainErrorsAllowedForSentry(t *testing.T) {
	for _, errResponse := range []ErrorResponse{
		BadArgumentsError,
		DuplicateAssetError,
		InvalidStateTransitionError,
		AssetNotFoundError,
		GeneralServerError,
	} {
		err := &echo.HTTPError{Code: errResponse.HttpStatusCode, Message: errResponse}
		assert.True(t, isErrAllowedForSentry(err), errResponse.Message)
	}
}
