package service

import (
	"context"
	"math/big"

	"github.com/scrollverse/metalbridge/common"
)

// RoyaltyQuote reports where and how much royalty a sale owes. The registry
// only quotes, it does not enforce settlement.
type RoyaltyQuote struct {
	Treasury    string `json:"treasury"`
	Amount      string `json:"royalty_amount"`
	BasisPoints int64  `json:"royalty_basis_points"`
}

// CalculateRoyalty is floor(salePrice * bps / 10000) over big integers so
// wei-denominated sale prices cannot overflow.
func CalculateRoyalty(salePrice *big.Int, basisPoints int64) *big.Int {
	amount := new(big.Int).Mul(salePrice, big.NewInt(basisPoints))
	return amount.Div(amount, big.NewInt(common.RoyaltyBasisPointDivisor))
}

// RoyaltyInfo fails for unknown token ids, for known ones it is a pure
// function of the sale price, the registry's fixed rate and the current
// treasury identity.
func (svc *BridgeService) RoyaltyInfo(ctx context.Context, tokenID int64, salePrice string) (*RoyaltyQuote, error) {
	if _, err := svc.GetPreciousAsset(ctx, tokenID); err != nil {
		return nil, err
	}

	price, err := ParseWeiValue(salePrice)
	if err != nil {
		return nil, err
	}

	registry, err := svc.GetRegistry(ctx)
	if err != nil {
		return nil, err
	}

	return &RoyaltyQuote{
		Treasury:    registry.TreasuryAddress,
		Amount:      CalculateRoyalty(price, registry.RoyaltyBasisPoints).String(),
		BasisPoints: registry.RoyaltyBasisPoints,
	}, nil
}
