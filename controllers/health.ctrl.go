package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/service"
)

// HealthController : Liveness probe controller struct
type HealthController struct {
	svc *service.BridgeService
}

func NewHealthController(svc *service.BridgeService) *HealthController {
	return &HealthController{svc: svc}
}

type HealthResponse struct {
	Result string `json:"result"`
}

// Check godoc
// @Summary      Check system health
// @Description  Verifies the registry database is reachable
// @Produce      json
// @Tags         Info
// @Success      200  {object}  HealthResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /healthz [get]
func (controller *HealthController) Check(c echo.Context) error {
	if err := controller.svc.DB.PingContext(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Result: "OK",
	})
}
