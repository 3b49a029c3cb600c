package service

import (
	"context"
	"database/sql"
	"math/big"
	"time"

	"github.com/scrollverse/metalbridge/common"
	"github.com/scrollverse/metalbridge/db/models"
	"github.com/uptrace/bun"
)

// ParseWeiValue validates a decimal string as a non-negative integer amount
// in the smallest unit. Valuations are ETH-scale, they do not fit int64.
func ParseWeiValue(value string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(value, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidValue
	}
	return v, nil
}

// UpdateValuation records an externally supplied valuation. There is no
// status restriction: suspended and revoked assets keep getting revalued for
// audit purposes.
func (svc *BridgeService) UpdateValuation(ctx context.Context, operator string, tokenID int64, valueInWei string) (*models.Asset, error) {
	operator = NormalizeAddress(operator)
	authorized, err := svc.IsAuthorized(ctx, operator, common.RoleVaultOperator)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, ErrNotAuthorizedVaultOperator
	}

	value, err := ParseWeiValue(valueInWei)
	if err != nil {
		return nil, err
	}

	asset, err := svc.GetPreciousAsset(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	oldValuation := asset.ValuationInWei
	asset.ValuationInWei = value.String()
	asset.ValuationTimestamp = bun.NullTime{Time: time.Now()}

	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	_, err = tx.NewUpdate().
		Model(asset).
		Column("valuation_in_wei", "valuation_timestamp", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = appendProvenance(ctx, &tx, tokenID, operator, common.ProvenanceValuationUpdate); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	svc.Logger.Infof("Token %d valuation %s -> %s by %s", tokenID, oldValuation, asset.ValuationInWei, operator)
	svc.publishEvent(common.RegistryEvent{
		Type:    common.EventTypeValuationUpdated,
		TokenID: tokenIDPtr(tokenID),
		Actor:   operator,
		Payload: map[string]interface{}{
			"old_valuation_in_wei": oldValuation,
			"new_valuation_in_wei": asset.ValuationInWei,
			"valuation_timestamp":  asset.ValuationTimestamp.Time,
		},
	})

	return asset, nil
}

// ComputePureMetalWeight is floor(weight * purity / 1000). Pure read, no
// authorization.
func (svc *BridgeService) ComputePureMetalWeight(ctx context.Context, tokenID int64) (int64, error) {
	asset, err := svc.GetPreciousAsset(ctx, tokenID)
	if err != nil {
		return 0, err
	}
	return asset.PureMetalWeight(), nil
}
