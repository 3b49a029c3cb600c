package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scrollverse/metalbridge/common"
	"github.com/scrollverse/metalbridge/lib/responses"
	"github.com/scrollverse/metalbridge/lib/service"
	"github.com/scrollverse/metalbridge/lib/tokens"
)

// AdminController : Registry administration controller struct
type AdminController struct {
	svc *service.BridgeService
}

func NewAdminController(svc *service.BridgeService) *AdminController {
	return &AdminController{svc: svc}
}

type SetAuthorizationRequestBody struct {
	Identity   string `json:"identity" validate:"required"`
	Authorized *bool  `json:"authorized" validate:"required"`
}

type SetAuthorizationResponseBody struct {
	Identity   string `json:"identity"`
	Role       string `json:"role"`
	Authorized bool   `json:"authorized"`
}

type UpdateTreasuryRequestBody struct {
	TreasuryAddress string `json:"treasury_address" validate:"required"`
}

type IssueTokenRequestBody struct {
	Identity string `json:"identity" validate:"required"`
}

type IssueTokenResponseBody struct {
	Identity    string `json:"identity"`
	AccessToken string `json:"access_token"`
}

type CertificationCountResponseBody struct {
	Identity           string `json:"identity"`
	CertificationCount int64  `json:"certification_count"`
}

// SetCertifier godoc
// @Summary      Grant or revoke the certifier role
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        authorization  body      SetAuthorizationRequestBody  True  "Authorization"
// @Success      200            {object}  SetAuthorizationResponseBody
// @Failure      400            {object}  responses.ErrorResponse
// @Router       /admin/certifiers [put]
func (controller *AdminController) SetCertifier(c echo.Context) error {
	body, err := controller.bindAuthorizationBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	err = controller.svc.SetCertifierAuthorization(c.Request().Context(), body.Identity, *body.Authorized)
	if err != nil {
		c.Logger().Errorf("Failed to set certifier authorization: identity:%s error: %v", body.Identity, err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, &SetAuthorizationResponseBody{
		Identity:   service.NormalizeAddress(body.Identity),
		Role:       common.RoleCertifier,
		Authorized: *body.Authorized,
	})
}

// SetVaultOperator godoc
// @Summary      Grant or revoke the vault operator role
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        authorization  body      SetAuthorizationRequestBody  True  "Authorization"
// @Success      200            {object}  SetAuthorizationResponseBody
// @Failure      400            {object}  responses.ErrorResponse
// @Router       /admin/vault-operators [put]
func (controller *AdminController) SetVaultOperator(c echo.Context) error {
	body, err := controller.bindAuthorizationBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	err = controller.svc.SetVaultOperatorAuthorization(c.Request().Context(), body.Identity, *body.Authorized)
	if err != nil {
		c.Logger().Errorf("Failed to set vault operator authorization: identity:%s error: %v", body.Identity, err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, &SetAuthorizationResponseBody{
		Identity:   service.NormalizeAddress(body.Identity),
		Role:       common.RoleVaultOperator,
		Authorized: *body.Authorized,
	})
}

func (controller *AdminController) bindAuthorizationBody(c echo.Context) (*SetAuthorizationRequestBody, error) {
	var body SetAuthorizationRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load authorization request body: %v", err)
		return nil, err
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid authorization request body: %v", err)
		return nil, err
	}
	return &body, nil
}

// UpdateTreasury godoc
// @Summary      Update the royalty treasury recipient
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        treasury  body      UpdateTreasuryRequestBody  True  "Treasury"
// @Success      200       {object}  models.Registry
// @Failure      400       {object}  responses.ErrorResponse
// @Router       /admin/treasury [put]
func (controller *AdminController) UpdateTreasury(c echo.Context) error {
	var body UpdateTreasuryRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load treasury request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid treasury request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	registry, err := controller.svc.UpdateTreasury(c.Request().Context(), body.TreasuryAddress)
	if err != nil {
		c.Logger().Errorf("Failed to update treasury: address:%s error: %v", body.TreasuryAddress, err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, registry)
}

// IssueToken godoc
// @Summary      Issue an access token for an identity
// @Description  Returns a signed token certifiers and vault operators use on the secured endpoints
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        identity  body      IssueTokenRequestBody  True  "Identity"
// @Success      200       {object}  IssueTokenResponseBody
// @Failure      400       {object}  responses.ErrorResponse
// @Router       /admin/tokens [post]
func (controller *AdminController) IssueToken(c echo.Context) error {
	var body IssueTokenRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load token request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid token request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if !service.ValidAddress(body.Identity) {
		return c.JSON(responses.InvalidAddressError.HttpStatusCode, responses.InvalidAddressError)
	}

	identity := service.NormalizeAddress(body.Identity)
	accessToken, err := tokens.GenerateIdentityToken(
		controller.svc.Config.JWTSecret,
		controller.svc.Config.JWTAccessTokenExpiry,
		identity,
	)
	if err != nil {
		c.Logger().Errorf("Failed to generate token: identity:%s error: %v", identity, err)
		return err
	}

	return c.JSON(http.StatusOK, &IssueTokenResponseBody{Identity: identity, AccessToken: accessToken})
}

// GetCertificationCount godoc
// @Summary      Count certifications performed by a certifier
// @Produce      json
// @Tags         Admin
// @Param        identity  path      string  true  "Certifier identity"
// @Success      200       {object}  CertificationCountResponseBody
// @Failure      400       {object}  responses.ErrorResponse
// @Router       /admin/certifiers/{identity}/certifications [get]
func (controller *AdminController) GetCertificationCount(c echo.Context) error {
	identity := c.Param("identity")
	if !service.ValidAddress(identity) {
		return c.JSON(responses.InvalidAddressError.HttpStatusCode, responses.InvalidAddressError)
	}

	count, err := controller.svc.GetCertifierCertificationCount(c.Request().Context(), identity)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, &CertificationCountResponseBody{
		Identity:           service.NormalizeAddress(identity),
		CertificationCount: count,
	})
}
