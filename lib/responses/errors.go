package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var AuthorizationError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "caller is not authorized for this operation",
	HttpStatusCode: 403,
}

var InvalidAddressError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "invalid identity address",
	HttpStatusCode: 400,
}

var InvalidValueError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "invalid monetary value",
	HttpStatusCode: 400,
}

var DuplicateAssetError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "Asset already tokenized",
	HttpStatusCode: 409,
}

var InvalidStateTransitionError = ErrorResponse{
	Error:          true,
	Code:           4,
	Message:        "certification status transition not permitted",
	HttpStatusCode: 409,
}

var AssetNotFoundError = ErrorResponse{
	Error:          true,
	Code:           5,
	Message:        "asset not found",
	HttpStatusCode: 404,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("Identity", c.Get("Identity"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// auth failures are routine client noise, keep them out of sentry
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	switch m := he.Message.(type) {
	case ErrorResponse:
		return m.Code != BadAuthError.Code
	case echo.Map:
		code, ok := m["code"].(int)
		if !ok {
			return true
		}
		return code != BadAuthError.Code
	}
	return true
}
