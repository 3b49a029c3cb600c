package transport

import (
	cache "github.com/SporkHubr/echo-http-cache"
	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/controllers"
	"github.com/scrollverse/metalbridge/lib/service"
)

// RegisterEndpoints wires the public, secured and admin surfaces.
//
// Public reads are unauthenticated. Mutations by certifiers and vault
// operators go through the secured group (bearer token carries the caller's
// identity). Registry administration requires the admin token.
func RegisterEndpoints(svc *service.BridgeService, e *echo.Echo, secured *echo.Group, admin *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, cacheClient *cache.Client) {
	assetCtrl := controllers.NewAssetController(svc)
	provenanceCtrl := controllers.NewProvenanceController(svc)
	certificationCtrl := controllers.NewCertificationController(svc)
	valuationCtrl := controllers.NewValuationController(svc)
	royaltyCtrl := controllers.NewRoyaltyController(svc)
	adminCtrl := controllers.NewAdminController(svc)

	e.GET("/healthz", controllers.NewHealthController(svc).Check)
	e.GET("/v2/info", controllers.NewInfoController(svc).GetInfo, cacheClient.Middleware())
	e.GET("/v2/assets/lookup", assetCtrl.Lookup)
	e.GET("/v2/assets/:token_id", assetCtrl.GetAsset)
	e.GET("/v2/assets/:token_id/exists", assetCtrl.Exists)
	e.GET("/v2/assets/:token_id/pure-weight", assetCtrl.GetPureWeight)
	e.GET("/v2/assets/:token_id/provenance", provenanceCtrl.GetProvenance)
	e.GET("/v2/assets/:token_id/provenance/count", provenanceCtrl.GetProvenanceCount)
	e.GET("/v2/assets/:token_id/royalty", royaltyCtrl.GetRoyalty)

	secured.POST("/v2/assets/:token_id/certify", certificationCtrl.Certify)
	secured.PUT("/v2/assets/:token_id/status", certificationCtrl.UpdateStatus)
	secured.PUT("/v2/assets/:token_id/valuation", valuationCtrl.UpdateValuation)

	admin.POST("/admin/mint", controllers.NewMintController(svc).Mint, strictRateLimitMiddleware)
	admin.PUT("/admin/certifiers", adminCtrl.SetCertifier)
	admin.PUT("/admin/vault-operators", adminCtrl.SetVaultOperator)
	admin.GET("/admin/certifiers/:identity/certifications", adminCtrl.GetCertificationCount)
	admin.PUT("/admin/treasury", adminCtrl.UpdateTreasury)
	admin.POST("/admin/tokens", adminCtrl.IssueToken, strictRateLimitMiddleware)
}
