package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
)

// CertificationController : Asset certification controller struct
type CertificationController struct {
	svc *service.BridgeService
}

func NewCertificationController(svc *service.BridgeService) *CertificationController {
	return &CertificationController{svc: svc}
}

type CertifyRequestBody struct {
	CertificationProof string `json:"certification_proof" validate:"required"`
}

type UpdateStatusRequestBody struct {
	Status string `json:"status" validate:"required"`
}

// Certify godoc
// @Summary      Certify a pending asset
// @Description  Moves a PENDING asset to CERTIFIED, recording the attesting certifier and proof
// @Accept       json
// @Produce      json
// @Tags         Certification
// @Param        token_id  path      int                 true  "Token ID"
// @Param        proof     body      CertifyRequestBody  True  "Certification proof"
// @Success      200       {object}  models.Asset
// @Failure      400       {object}  responses.ErrorResponse
// @Failure      403       {object}  responses.ErrorResponse
// @Failure      404       {object}  responses.ErrorResponse
// @Failure      409       {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/certify [post]
// @Security     OAuth2Password
func (controller *CertificationController) Certify(c echo.Context) error {
	identity := c.Get("Identity").(string)
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body CertifyRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load certify request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid certify request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.CertifyAsset(c.Request().Context(), identity, tokenID, body.CertificationProof)
	if err != nil {
		c.Logger().Errorf("Failed to certify asset: token_id:%d certifier:%s error: %v", tokenID, identity, err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, asset)
}

// UpdateStatus godoc
// @Summary      Change an asset's certification status
// @Description  Applies one edge of the certification state machine
// @Accept       json
// @Produce      json
// @Tags         Certification
// @Param        token_id  path      int                      true  "Token ID"
// @Param        status    body      UpdateStatusRequestBody  True  "New status"
// @Success      200       {object}  models.Asset
// @Failure      400       {object}  responses.ErrorResponse
// @Failure      403       {object}  responses.ErrorResponse
// @Failure      404       {object}  responses.ErrorResponse
// @Failure      409       {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/status [put]
// @Security     OAuth2Password
func (controller *CertificationController) UpdateStatus(c echo.Context) error {
	identity := c.Get("Identity").(string)
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdateStatusRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load status request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid status request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.UpdateCertificationStatus(c.Request().Context(), identity, tokenID, body.Status)
	if err != nil {
		c.Logger().Errorf("Failed to update status: token_id:%d status:%s error: %v", tokenID, body.Status, err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, asset)
}
