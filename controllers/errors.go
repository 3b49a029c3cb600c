package controllers

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
)

// writeServiceError maps the service layer's stable failure reasons onto the
// registry's public error vocabulary. Anything unmapped is a server fault and
// bubbles up to the global error handler.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrAssetNotFound):
		return c.JSON(responses.AssetNotFoundError.HttpStatusCode, responses.AssetNotFoundError)
	case errors.Is(err, service.ErrDuplicateAsset):
		return c.JSON(responses.DuplicateAssetError.HttpStatusCode, responses.DuplicateAssetError)
	case errors.Is(err, service.ErrNotAuthorizedCertifier),
		errors.Is(err, service.ErrNotAuthorizedVaultOperator):
		return c.JSON(responses.AuthorizationError.HttpStatusCode, responses.AuthorizationError)
	case errors.Is(err, service.ErrAssetNotPending),
		errors.Is(err, service.ErrCannotRevertToPending),
		errors.Is(err, service.ErrInvalidStatusTransition):
		return c.JSON(responses.InvalidStateTransitionError.HttpStatusCode, responses.InvalidStateTransitionError)
	case errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrInvalidTreasury):
		return c.JSON(responses.InvalidAddressError.HttpStatusCode, responses.InvalidAddressError)
	case errors.Is(err, service.ErrInvalidValue):
		return c.JSON(responses.InvalidValueError.HttpStatusCode, responses.InvalidValueError)
	case errors.Is(err, service.ErrInvalidWeight),
		errors.Is(err, service.ErrInvalidPurity),
		errors.Is(err, service.ErrInvalidEnum),
		errors.Is(err, service.ErrInvalidHash):
		return c.JSON(responses.BadArgumentsError.HttpStatusCode, responses.BadArgumentsError)
	default:
		return err
	}
}
