package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/service"
)

// InfoController : Registry info controller struct
type InfoController struct {
	svc *service.BridgeService
}

func NewInfoController(svc *service.BridgeService) *InfoController {
	return &InfoController{svc: svc}
}

// GetInfo godoc
// @Summary      Registry information
// @Description  Returns name, symbol, treasury, royalty rate, uptime and total supply
// @Produce      json
// @Tags         Info
// @Success      200  {object}  service.RegistryInfo
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/info [get]
func (controller *InfoController) GetInfo(c echo.Context) error {
	info, err := controller.svc.GetInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
