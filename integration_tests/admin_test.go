package integration_tests

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/scrollverse/metalbridge/common"
	"github.com/scrollverse/metalbridge/controllers"
	"github.com/scrollverse/metalbridge/db/models"
	"github.com/scrollverse/metalbridge/lib/service"
	"github.com/scrollverse/metalbridge/lib/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AdminTestSuite struct {
	TestSuite
	service *service.BridgeService
}

func (suite *AdminTestSuite) SetupSuite() {
	svc, err := BridgeTestServiceInit(nil)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	svc.Config.AdminToken = "admintoken"

	suite.echo = newTestEcho()
	adminCtrl := controllers.NewAdminController(svc)
	admin := suite.echo.Group("", tokens.AdminTokenMiddleware(svc.Config.AdminToken))
	admin.PUT("/admin/certifiers", adminCtrl.SetCertifier)
	admin.PUT("/admin/vault-operators", adminCtrl.SetVaultOperator)
	admin.GET("/admin/certifiers/:identity/certifications", adminCtrl.GetCertificationCount)
	admin.PUT("/admin/treasury", adminCtrl.UpdateTreasury)
	admin.POST("/admin/tokens", adminCtrl.IssueToken)
}

func (suite *AdminTestSuite) TearDownSuite() {
	assert.NoError(suite.T(), clearTables(suite.service))
}

func (suite *AdminTestSuite) TestAdminTokenRequired() {
	body := fmt.Sprintf(`{"identity": "%s", "authorized": true}`, testCertifier)
	req := doRequest(&suite.TestSuite, http.MethodPut, "/admin/certifiers", "", &body)
	assert.Equal(suite.T(), http.StatusBadRequest, req.Code)
}

func (suite *AdminTestSuite) TestAdminSeededAsBothRoles() {
	ctx := context.Background()
	for _, role := range []string{common.RoleCertifier, common.RoleVaultOperator} {
		authorized, err := suite.service.IsAuthorized(ctx, testAdminIdentity, role)
		assert.NoError(suite.T(), err)
		assert.True(suite.T(), authorized)
	}
}

func (suite *AdminTestSuite) TestGrantAndRevokeCertifier() {
	ctx := context.Background()

	body := fmt.Sprintf(`{"identity": "%s", "authorized": true}`, testCertifier)
	rec := doRequest(&suite.TestSuite, http.MethodPut, "/admin/certifiers", suite.service.Config.AdminToken, &body)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	authorized, err := suite.service.IsAuthorized(ctx, testCertifier, common.RoleCertifier)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), authorized)

	// granting one role does not grant the other
	authorized, err = suite.service.IsAuthorized(ctx, testCertifier, common.RoleVaultOperator)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), authorized)

	body = fmt.Sprintf(`{"identity": "%s", "authorized": false}`, testCertifier)
	rec = doRequest(&suite.TestSuite, http.MethodPut, "/admin/certifiers", suite.service.Config.AdminToken, &body)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	authorized, err = suite.service.IsAuthorized(ctx, testCertifier, common.RoleCertifier)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), authorized)
}

func (suite *AdminTestSuite) TestGrantInvalidIdentity() {
	for _, identity := range []string{
		"0x0000000000000000000000000000000000000000",
		"not-an-address",
		"0x1234",
	} {
		body := fmt.Sprintf(`{"identity": "%s", "authorized": true}`, identity)
		rec := doRequest(&suite.TestSuite, http.MethodPut, "/admin/certifiers", suite.service.Config.AdminToken, &body)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	}
}

func (suite *AdminTestSuite) TestUpdateTreasury() {
	newTreasury := "0x9999999999999999999999999999999999999999"
	body := fmt.Sprintf(`{"treasury_address": "%s"}`, newTreasury)
	rec := doRequest(&suite.TestSuite, http.MethodPut, "/admin/treasury", suite.service.Config.AdminToken, &body)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	registry := &models.Registry{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(registry))
	assert.Equal(suite.T(), newTreasury, registry.TreasuryAddress)

	// the null address is not a valid treasury
	body = `{"treasury_address": "0x0000000000000000000000000000000000000000"}`
	rec = doRequest(&suite.TestSuite, http.MethodPut, "/admin/treasury", suite.service.Config.AdminToken, &body)
	checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
}

func (suite *AdminTestSuite) TestIssueToken() {
	body := fmt.Sprintf(`{"identity": "%s"}`, testCertifier)
	rec := doRequest(&suite.TestSuite, http.MethodPost, "/admin/tokens", suite.service.Config.AdminToken, &body)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	response := &controllers.IssueTokenResponseBody{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(response))

	identity, err := tokens.ParseIdentity(suite.service.Config.JWTSecret, response.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testCertifier, identity)
}

func (suite *AdminTestSuite) TestCertificationCountUnknownCertifier() {
	rec := doRequest(&suite.TestSuite, http.MethodGet, fmt.Sprintf("/admin/certifiers/%s/certifications", testOutsider), suite.service.Config.AdminToken, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	response := &controllers.CertificationCountResponseBody{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(response))
	assert.Equal(suite.T(), int64(0), response.CertificationCount)
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}
