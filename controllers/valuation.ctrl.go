package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
)

// ValuationController : Asset valuation controller struct
type ValuationController struct {
	svc *service.BridgeService
}

func NewValuationController(svc *service.BridgeService) *ValuationController {
	return &ValuationController{svc: svc}
}

type UpdateValuationRequestBody struct {
	ValueInWei string `json:"value_in_wei" validate:"required"`
}

// UpdateValuation godoc
// @Summary      Record a new valuation
// @Description  Records an appraisal in wei and appends a provenance entry
// @Accept       json
// @Produce      json
// @Tags         Valuation
// @Param        token_id   path      int                         true  "Token ID"
// @Param        valuation  body      UpdateValuationRequestBody  True  "New valuation"
// @Success      200        {object}  models.Asset
// @Failure      400        {object}  responses.ErrorResponse
// @Failure      403        {object}  responses.ErrorResponse
// @Failure      404        {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/valuation [put]
// @Security     OAuth2Password
func (controller *ValuationController) UpdateValuation(c echo.Context) error {
	identity := c.Get("Identity").(string)
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdateValuationRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load valuation request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid valuation request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.UpdateValuation(c.Request().Context(), identity, tokenID, body.ValueInWei)
	if err != nil {
		c.Logger().Errorf("Failed to update valuation: token_id:%d operator:%s error: %v", tokenID, identity, err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, asset)
}
