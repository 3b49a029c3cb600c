package service

import (
	"math"
	"testing"

	"github.com/scrollverse/metalbridge/common"
	"github.com/stretchr/testify/assert"
)

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	// mixed case is normalized before matching
	assert.True(t, ValidAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"))

	for _, invalid := range []string{
		"",
		"0x0000000000000000000000000000000000000000", // the null address is never a valid identity
		"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",  // 39 chars
		"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"0xzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
	} {
		assert.False(t, ValidAddress(invalid), invalid)
	}
}

func TestValidAssetHash(t *testing.T) {
	assert.True(t, ValidAssetHash("0x1111111111111111111111111111111111111111111111111111111111111111"))
	assert.False(t, ValidAssetHash("0x1111"))
	assert.False(t, ValidAssetHash("1111111111111111111111111111111111111111111111111111111111111111"))
	// an identity-length value is not an asset hash
	assert.False(t, ValidAssetHash("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "0xabcdef", NormalizeAddress("  0xABCDef "))
}

func TestMintWeightBounds(t *testing.T) {
	params := MintParams{
		Owner:               "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee",
		PhysicalAssetHash:   "0x1111111111111111111111111111111111111111111111111111111111111111",
		SerialNumberHash:    "0x2222222222222222222222222222222222222222222222222222222222222222",
		MetalType:           common.MetalTypeGold,
		PurityInThousandths: 999,
		MetadataURI:         "ipfs://asset",
		StorageType:         common.StorageTypeIPFS,
		VaultLocation:       common.VaultLocationZurich,
	}

	params.WeightInGrams = common.MaxWeightInGrams
	assert.NoError(t, params.validate())
	// the cap keeps weight*purity inside int64
	assert.True(t, params.WeightInGrams <= math.MaxInt64/common.PurityDivisor)

	params.WeightInGrams = common.MaxWeightInGrams + 1
	assert.ErrorIs(t, params.validate(), ErrInvalidWeight)

	params.WeightInGrams = 0
	assert.ErrorIs(t, params.validate(), ErrInvalidWeight)
}
