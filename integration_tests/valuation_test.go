package integration_tests

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/scrollverse/metalbridge/controllers"
	"github.com/scrollverse/metalbridge/db/models"
	"github.com/scrollverse/metalbridge/ledger"
	"github.com/scrollverse/metalbridge/lib/service"
	"github.com/scrollverse/metalbridge/lib/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ValuationTestSuite struct {
	TestSuite
	service       *service.BridgeService
	operatorToken string
	outsiderToken string
}

func (suite *ValuationTestSuite) SetupSuite() {
	svc, err := BridgeTestServiceInit(nil)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	if err = authorizeRoles(svc); err != nil {
		log.Fatalf("Error authorizing test roles: %v", err)
	}
	suite.service = svc

	suite.operatorToken, err = identityToken(svc, testVaultOperator)
	if err != nil {
		log.Fatalf("Error issuing operator token: %v", err)
	}
	suite.outsiderToken, err = identityToken(svc, testOutsider)
	if err != nil {
		log.Fatalf("Error issuing outsider token: %v", err)
	}

	suite.echo = newTestEcho()
	secured := suite.echo.Group("", tokens.Middleware(svc.Config.JWTSecret))
	secured.PUT("/v2/assets/:token_id/valuation", controllers.NewValuationController(svc).UpdateValuation)
	suite.echo.GET("/v2/assets/:token_id/provenance/count", controllers.NewProvenanceController(svc).GetProvenanceCount)
}

func (suite *ValuationTestSuite) SetupTest() {
	for _, tableName := range []string{"provenance_entries", "assets"} {
		_, err := suite.service.DB.Exec(fmt.Sprintf("DELETE FROM %s", tableName))
		assert.NoError(suite.T(), err)
	}
	suite.service.TokenLedger = ledger.NewInMemoryLedger()
}

func (suite *ValuationTestSuite) TearDownSuite() {
	assert.NoError(suite.T(), clearTables(suite.service))
}

func (suite *ValuationTestSuite) TestUpdateValuation() {
	tokenID, err := mintTestAsset(suite.service, testAssetHash)
	assert.NoError(suite.T(), err)

	// 58,000 ETH worth of gold, way past int64 in wei
	body := `{"value_in_wei": "58000000000000000000000"}`
	rec := doRequest(&suite.TestSuite, http.MethodPut, fmt.Sprintf("/v2/assets/%d/valuation", tokenID), suite.operatorToken, &body)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	asset := &models.Asset{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(asset))
	assert.Equal(suite.T(), "58000000000000000000000", asset.ValuationInWei)
	assert.False(suite.T(), asset.ValuationTimestamp.IsZero())

	// the valuation update is part of the provenance trail
	rec = doRequest(&suite.TestSuite, http.MethodGet, fmt.Sprintf("/v2/assets/%d/provenance/count", tokenID), "", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	count := &controllers.GetProvenanceCountResponseBody{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(count))
	assert.Equal(suite.T(), int64(2), count.Count)
}

func (suite *ValuationTestSuite) TestUpdateValuationUnauthorized() {
	tokenID, err := mintTestAsset(suite.service, testAssetHash)
	assert.NoError(suite.T(), err)

	body := `{"value_in_wei": "1000"}`
	rec := doRequest(&suite.TestSuite, http.MethodPut, fmt.Sprintf("/v2/assets/%d/valuation", tokenID), suite.outsiderToken, &body)
	checkErrResponse(&suite.TestSuite, rec, http.StatusForbidden)
}

func (suite *ValuationTestSuite) TestUpdateValuationInvalidValue() {
	tokenID, err := mintTestAsset(suite.service, testAssetHash)
	assert.NoError(suite.T(), err)

	for _, body := range []string{
		`{"value_in_wei": "-1"}`,
		`{"value_in_wei": "not a number"}`,
		`{"value_in_wei": "1.5"}`,
	} {
		b := body
		rec := doRequest(&suite.TestSuite, http.MethodPut, fmt.Sprintf("/v2/assets/%d/valuation", tokenID), suite.operatorToken, &b)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	}
}

func (suite *ValuationTestSuite) TestUpdateValuationUnknownToken() {
	body := `{"value_in_wei": "1000"}`
	rec := doRequest(&suite.TestSuite, http.MethodPut, "/v2/assets/42/valuation", suite.operatorToken, &body)
	checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
}

func TestValuationSuite(t *testing.T) {
	suite.Run(t, new(ValuationTestSuite))
}
