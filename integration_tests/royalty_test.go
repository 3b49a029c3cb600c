package integration_tests

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/scrollverse/metalbridge/controllers"
	"github.com/scrollverse/metalbridge/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RoyaltyTestSuite struct {
	TestSuite
	service *service.BridgeService
	tokenID int64
}

func (suite *RoyaltyTestSuite) SetupSuite() {
	svc, err := BridgeTestServiceInit(nil)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc

	suite.tokenID, err = mintTestAsset(svc, testAssetHash)
	if err != nil {
		log.Fatalf("Error minting test asset: %v", err)
	}

	suite.echo = newTestEcho()
	suite.echo.GET("/v2/assets/:token_id/royalty", controllers.NewRoyaltyController(svc).GetRoyalty)
}

func (suite *RoyaltyTestSuite) TearDownSuite() {
	assert.NoError(suite.T(), clearTables(suite.service))
}

func (suite *RoyaltyTestSuite) TestRoyaltyQuote() {
	// 5% of 1 ETH
	rec := doRequest(&suite.TestSuite, http.MethodGet, fmt.Sprintf("/v2/assets/%d/royalty?sale_price=1000000000000000000", suite.tokenID), "", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	quote := &service.RoyaltyQuote{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(quote))
	assert.Equal(suite.T(), "50000000000000000", quote.Amount)
	assert.Equal(suite.T(), testTreasury, quote.Treasury)
	assert.Equal(suite.T(), int64(500), quote.BasisPoints)
}

func (suite *RoyaltyTestSuite) TestRoyaltyRoundsDown() {
	rec := doRequest(&suite.TestSuite, http.MethodGet, fmt.Sprintf("/v2/assets/%d/royalty?sale_price=19", suite.tokenID), "", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	quote := &service.RoyaltyQuote{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(quote))
	// 19 * 500 / 10000 = 0.95, floored
	assert.Equal(suite.T(), "0", quote.Amount)
}

func (suite *RoyaltyTestSuite) TestRoyaltyBadSalePrice() {
	rec := doRequest(&suite.TestSuite, http.MethodGet, fmt.Sprintf("/v2/assets/%d/royalty?sale_price=banana", suite.tokenID), "", nil)
	checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
}

func (suite *RoyaltyTestSuite) TestRoyaltyUnknownToken() {
	rec := doRequest(&suite.TestSuite, http.MethodGet, "/v2/assets/42/royalty?sale_price=1000", "", nil)
	checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
}

func TestRoyaltySuite(t *testing.T) {
	suite.Run(t, new(RoyaltyTestSuite))
}
