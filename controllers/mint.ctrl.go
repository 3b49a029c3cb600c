package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
)

// MintController : Mint precious metal asset controller struct
type MintController struct {
	svc *service.BridgeService
}

func NewMintController(svc *service.BridgeService) *MintController {
	return &MintController{svc: svc}
}

type MintRequestBody struct {
	Owner               string `json:"owner" validate:"required"`
	PhysicalAssetHash   string `json:"physical_asset_hash" validate:"required"`
	SerialNumberHash    string `json:"serial_number_hash" validate:"required"`
	MetalType           string `json:"metal_type" validate:"required"`
	WeightInGrams       int64  `json:"weight_in_grams" validate:"required,gt=0,lte=1000000000000"`
	PurityInThousandths int64  `json:"purity_in_thousandths" validate:"gte=0,lte=1000"`
	MetadataURI         string `json:"metadata_uri"`
	StorageType         string `json:"storage_type" validate:"required"`
	VaultLocation       string `json:"vault_location" validate:"required"`
}

// Mint godoc
// @Summary      Tokenize a physical precious metal asset
// @Description  Creates the asset record, ownership token and first provenance entry
// @Accept       json
// @Produce      json
// @Tags         Asset
// @Param        asset  body      MintRequestBody  True  "Mint asset"
// @Success      200    {object}  models.Asset
// @Failure      400    {object}  responses.ErrorResponse
// @Failure      409    {object}  responses.ErrorResponse
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /admin/mint [post]
func (controller *MintController) Mint(c echo.Context) error {
	var body MintRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load mint request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid mint request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.MintPreciousMetal(c.Request().Context(), service.MintParams{
		Owner:               body.Owner,
		PhysicalAssetHash:   body.PhysicalAssetHash,
		SerialNumberHash:    body.SerialNumberHash,
		MetalType:           body.MetalType,
		WeightInGrams:       body.WeightInGrams,
		PurityInThousandths: body.PurityInThousandths,
		MetadataURI:         body.MetadataURI,
		StorageType:         body.StorageType,
		VaultLocation:       body.VaultLocation,
	})
	if err != nil {
		c.Logger().Errorf("Failed to mint asset: hash:%s error: %v", body.PhysicalAssetHash, err)
		return writeServiceError(c, err)
	}

	c.Logger().Infof("Minted asset: token_id:%d owner:%s hash:%s", asset.TokenID, asset.Owner, asset.PhysicalAssetHash)
	return c.JSON(http.StatusOK, asset)
}
