package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/db/models"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
)

// AssetController : Asset lookup controller struct
type AssetController struct {
	svc *service.BridgeService
}

func NewAssetController(svc *service.BridgeService) *AssetController {
	return &AssetController{svc: svc}
}

type ExistsResponseBody struct {
	TokenID int64 `json:"token_id"`
	Exists  bool  `json:"exists"`
}

type PureWeightResponseBody struct {
	TokenID             int64 `json:"token_id"`
	PureMetalWeight     int64 `json:"pure_metal_weight"`
	WeightInGrams       int64 `json:"weight_in_grams"`
	PurityInThousandths int64 `json:"purity_in_thousandths"`
}

type LookupResponseBody struct {
	PhysicalAssetHash string `json:"physical_asset_hash"`
	Tokenized         bool   `json:"tokenized"`
	TokenID           *int64 `json:"token_id,omitempty"`
}

func tokenIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("token_id"), 10, 64)
}

// GetAsset godoc
// @Summary      Retrieve an asset record
// @Description  Returns the full asset record for a token id
// @Produce      json
// @Tags         Asset
// @Param        token_id  path      int  true  "Token ID"
// @Success      200       {object}  models.Asset
// @Failure      400       {object}  responses.ErrorResponse
// @Failure      404       {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id} [get]
func (controller *AssetController) GetAsset(c echo.Context) error {
	tokenID, err := tokenIDParam(c)
	if err != nil {
		c.Logger().Errorf("Invalid token id: %s", c.Param("token_id"))
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.GetPreciousAsset(c.Request().Context(), tokenID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, asset)
}

// Exists godoc
// @Summary      Check whether a token exists
// @Produce      json
// @Tags         Asset
// @Param        token_id  path      int  true  "Token ID"
// @Success      200       {object}  ExistsResponseBody
// @Failure      400       {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/exists [get]
func (controller *AssetController) Exists(c echo.Context) error {
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	exists, err := controller.svc.Exists(c.Request().Context(), tokenID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, &ExistsResponseBody{TokenID: tokenID, Exists: exists})
}

// GetPureWeight godoc
// @Summary      Compute pure metal content
// @Description  Returns gross weight scaled by purity for a token
// @Produce      json
// @Tags         Asset
// @Param        token_id  path      int  true  "Token ID"
// @Success      200       {object}  PureWeightResponseBody
// @Failure      400       {object}  responses.ErrorResponse
// @Failure      404       {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/pure-weight [get]
func (controller *AssetController) GetPureWeight(c echo.Context) error {
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.GetPreciousAsset(c.Request().Context(), tokenID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, &PureWeightResponseBody{
		TokenID:             asset.TokenID,
		PureMetalWeight:     asset.PureMetalWeight(),
		WeightInGrams:       asset.WeightInGrams,
		PurityInThousandths: asset.PurityInThousandths,
	})
}

// Lookup godoc
// @Summary      Reverse-lookup a token by physical asset hash
// @Description  Returns the token id bound to a physical asset fingerprint, if any
// @Produce      json
// @Tags         Asset
// @Param        hash  query     string  true  "Physical asset hash"
// @Success      200   {object}  LookupResponseBody
// @Failure      400   {object}  responses.ErrorResponse
// @Router       /v2/assets/lookup [get]
func (controller *AssetController) Lookup(c echo.Context) error {
	hash := c.QueryParam("hash")
	if !service.ValidAssetHash(hash) {
		c.Logger().Errorf("Invalid asset hash in lookup: %s", hash)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	tokenID, err := controller.svc.GetTokenIdByAssetHash(c.Request().Context(), hash)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := LookupResponseBody{PhysicalAssetHash: service.NormalizeAddress(hash)}
	if tokenID != models.NoTokenID {
		response.Tokenized = true
		response.TokenID = &tokenID
	}
	return c.JSON(http.StatusOK, &response)
}
