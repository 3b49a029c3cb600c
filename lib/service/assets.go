package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/scrollverse/metalbridge/common"
	"github.com/scrollverse/metalbridge/db/models"
)

type MintParams struct {
	Owner               string
	PhysicalAssetHash   string
	SerialNumberHash    string
	MetalType           string
	WeightInGrams       int64
	PurityInThousandths int64
	MetadataURI         string
	StorageType         string
	VaultLocation       string
}

func (params *MintParams) validate() error {
	if !ValidAddress(params.Owner) {
		return ErrInvalidAddress
	}
	if !ValidAssetHash(params.PhysicalAssetHash) || !ValidAssetHash(params.SerialNumberHash) {
		return ErrInvalidHash
	}
	if params.WeightInGrams <= 0 || params.WeightInGrams > common.MaxWeightInGrams {
		return ErrInvalidWeight
	}
	if params.PurityInThousandths < 0 || params.PurityInThousandths > common.PurityDivisor {
		return ErrInvalidPurity
	}
	if !common.IsValidMetalType(params.MetalType) ||
		!common.IsValidStorageType(params.StorageType) ||
		!common.IsValidVaultLocation(params.VaultLocation) {
		return ErrInvalidEnum
	}
	return nil
}

// MintPreciousMetal creates the asset record, the reverse hash index entry
// (the unique column), the ownership-token and the first provenance entry as
// one unit. Any failure rolls the whole mint back, a half-minted asset is
// never observable.
func (svc *BridgeService) MintPreciousMetal(ctx context.Context, params MintParams) (*models.Asset, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	registry, err := svc.GetRegistry(ctx)
	if err != nil {
		return nil, err
	}

	assetHash := NormalizeAddress(params.PhysicalAssetHash)
	tokenized, err := svc.IsAssetTokenized(ctx, assetHash)
	if err != nil {
		return nil, err
	}
	if tokenized {
		return nil, ErrDuplicateAsset
	}

	asset := &models.Asset{
		Owner:               NormalizeAddress(params.Owner),
		PhysicalAssetHash:   assetHash,
		SerialNumberHash:    NormalizeAddress(params.SerialNumberHash),
		MetalType:           params.MetalType,
		WeightInGrams:       params.WeightInGrams,
		PurityInThousandths: params.PurityInThousandths,
		MetadataURI:         params.MetadataURI,
		StorageType:         params.StorageType,
		VaultLocation:       params.VaultLocation,
		Status:              common.CertificationStatusPending,
		ValuationInWei:      "0",
	}

	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}

	// Token ids are dense and sequential from 0. The unique constraint on
	// token_id backstops the allocation, the one on physical_asset_hash
	// backstops the duplicate pre-check.
	var nextTokenID int64
	err = tx.NewSelect().
		Model((*models.Asset)(nil)).
		ColumnExpr("COALESCE(MAX(token_id) + 1, 0)").
		Scan(ctx, &nextTokenID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	asset.TokenID = nextTokenID

	if _, err = tx.NewInsert().Model(asset).Exec(ctx); err != nil {
		tx.Rollback()
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "duplicate key") {
			return nil, ErrDuplicateAsset
		}
		return nil, err
	}

	if err = appendProvenance(ctx, &tx, asset.TokenID, registry.AdminIdentity, common.ProvenanceMint); err != nil {
		tx.Rollback()
		return nil, err
	}

	// The ownership-token ledger mint participates in the same atomic unit:
	// if the ledger rejects the token, nothing of the asset survives.
	if err = svc.TokenLedger.Mint(ctx, asset.Owner, asset.TokenID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	svc.Logger.Infof("Minted token %d for asset hash %s", asset.TokenID, asset.PhysicalAssetHash)
	svc.publishEvent(common.RegistryEvent{
		Type:    common.EventTypeMinted,
		TokenID: tokenIDPtr(asset.TokenID),
		Actor:   registry.AdminIdentity,
		Payload: map[string]interface{}{
			"owner":                 asset.Owner,
			"metal_type":            asset.MetalType,
			"weight_in_grams":       asset.WeightInGrams,
			"purity_in_thousandths": asset.PurityInThousandths,
			"vault_location":        asset.VaultLocation,
		},
	})

	return asset, nil
}

func (svc *BridgeService) GetPreciousAsset(ctx context.Context, tokenID int64) (*models.Asset, error) {
	asset := &models.Asset{}
	err := svc.DB.NewSelect().Model(asset).Where("token_id = ?", tokenID).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}

func (svc *BridgeService) IsAssetTokenized(ctx context.Context, assetHash string) (bool, error) {
	count, err := svc.DB.NewSelect().
		Model((*models.Asset)(nil)).
		Where("physical_asset_hash = ?", NormalizeAddress(assetHash)).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetTokenIdByAssetHash returns models.NoTokenID for fingerprints that were
// never tokenized. Token id 0 is valid, absence needs the sentinel.
func (svc *BridgeService) GetTokenIdByAssetHash(ctx context.Context, assetHash string) (int64, error) {
	asset := &models.Asset{}
	err := svc.DB.NewSelect().
		Model(asset).
		Column("token_id").
		Where("physical_asset_hash = ?", NormalizeAddress(assetHash)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NoTokenID, nil
		}
		return models.NoTokenID, err
	}
	return asset.TokenID, nil
}

func (svc *BridgeService) TotalSupply(ctx context.Context) (int64, error) {
	count, err := svc.DB.NewSelect().Model((*models.Asset)(nil)).Count(ctx)
	return int64(count), err
}

// Exists consults the ownership-token ledger, which owns token existence.
func (svc *BridgeService) Exists(ctx context.Context, tokenID int64) (bool, error) {
	return svc.TokenLedger.Exists(ctx, tokenID)
}
