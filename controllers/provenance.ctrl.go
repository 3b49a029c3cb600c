package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
)

// ProvenanceController : Provenance history controller struct
type ProvenanceController struct {
	svc *service.BridgeService
}

func NewProvenanceController(svc *service.BridgeService) *ProvenanceController {
	return &ProvenanceController{svc: svc}
}

type ProvenanceEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"actor"`
	Description string    `json:"description"`
}

type GetProvenanceResponseBody struct {
	TokenID int64             `json:"token_id"`
	Entries []ProvenanceEntry `json:"entries"`
}

type GetProvenanceCountResponseBody struct {
	TokenID int64 `json:"token_id"`
	Count   int64 `json:"count"`
}

// GetProvenance godoc
// @Summary      Retrieve provenance history
// @Description  Returns the full custody trail of an asset in recording order
// @Produce      json
// @Tags         Provenance
// @Param        token_id  path      int  true  "Token ID"
// @Success      200       {object}  GetProvenanceResponseBody
// @Failure      400       {object}  responses.ErrorResponse
// @Failure      404       {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/provenance [get]
func (controller *ProvenanceController) GetProvenance(c echo.Context) error {
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entries, err := controller.svc.GetProvenanceHistory(c.Request().Context(), tokenID)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := GetProvenanceResponseBody{TokenID: tokenID, Entries: make([]ProvenanceEntry, len(entries))}
	for i, entry := range entries {
		response.Entries[i] = ProvenanceEntry{
			Timestamp:   entry.Timestamp,
			Actor:       entry.Actor,
			Description: entry.Description,
		}
	}
	return c.JSON(http.StatusOK, &response)
}

// GetProvenanceCount godoc
// @Summary      Count provenance entries
// @Produce      json
// @Tags         Provenance
// @Param        token_id  path      int  true  "Token ID"
// @Success      200       {object}  GetProvenanceCountResponseBody
// @Failure      400       {object}  responses.ErrorResponse
// @Failure      404       {object}  responses.ErrorResponse
// @Router       /v2/assets/{token_id}/provenance/count [get]
func (controller *ProvenanceController) GetProvenanceCount(c echo.Context) error {
	tokenID, err := tokenIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	count, err := controller.svc.GetProvenanceCount(c.Request().Context(), tokenID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, &GetProvenanceCountResponseBody{TokenID: tokenID, Count: count})
}
