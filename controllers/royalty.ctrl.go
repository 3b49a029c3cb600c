package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
)

// RoyaltyController : Royalty quote controller struct
type RoyaltyController struct {
	svc *service.BridgeService
}

func NewRoyaltyController(svc *service.BridgeService) *RoyaltyController {
	return &RoyaltyController{svc: svc}
}

// GetRoyalty godoc
// @Summary      Quote the royalty for a hypothetical sale
// @Description  Returns treasury recipient and royalty amount for a sale price in wei
// @Produce      json
// @Tags         Royalty
// @Param        token_id    path      int     true  "Token ID"
// @Param        sale_price  query     string  true  "Sale price in wei"
// @Success      200         {object}  service.RoyaltyQuote
// @Failure      400         {object}  responses.ErrorResponse
// @Failure      404         {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/royalty [get]
func (controller *RoyaltyController) GetRoyalty(c echo.Context) error {
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	quote, err := controller.svc.RoyaltyInfo(c.Request().Context(), tokenID, c.QueryParam("sale_price"))
	if err != nil {
		c.Logger().Errorf("Failed to quote royalty: token_id:%d sale_price:%s error: %v", tokenID, c.QueryParam("sale_price"), err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, quote)
}
