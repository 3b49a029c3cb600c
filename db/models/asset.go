package models

import (
	"context"
	"math"
	"time"

	"github.com/scrollverse/metalbridge/common"
	"github.com/uptrace/bun"
)

// NoTokenID is returned by hash lookups for fingerprints that were never
// tokenized. Token id 0 is a valid id, so absence needs an out-of-range marker.
const NoTokenID = int64(math.MaxInt64)

// Asset : Asset Model
//
// One row per tokenized physical unit. PhysicalAssetHash is the registry-wide
// duplicate-prevention key; the unique index on it is what makes a concurrent
// double-mint impossible even if the service-level check races.
type Asset struct {
	ID                  int64        `json:"-" bun:",pk,autoincrement"`
	TokenID             int64        `json:"token_id" bun:",unique,notnull"`
	Owner               string       `json:"owner" bun:",notnull"`
	PhysicalAssetHash   string       `json:"physical_asset_hash" bun:",unique,notnull"`
	SerialNumberHash    string       `json:"serial_number_hash" bun:",notnull"`
	MetalType           string       `json:"metal_type" bun:",notnull"`
	WeightInGrams       int64        `json:"weight_in_grams" bun:",notnull"`
	PurityInThousandths int64        `json:"purity_in_thousandths" bun:",notnull"`
	MetadataURI         string       `json:"metadata_uri" bun:",notnull"`
	StorageType         string       `json:"storage_type" bun:",notnull"`
	VaultLocation       string       `json:"vault_location" bun:",notnull"`
	Status              string       `json:"status" bun:",notnull,default:'PENDING'"`
	Certifier           string       `json:"certifier,omitempty" bun:",nullzero"`
	CertificationProof  string       `json:"certification_proof,omitempty" bun:",nullzero"`
	ValuationInWei      string       `json:"valuation_in_wei" bun:"type:numeric(78,0),default:0"`
	ValuationTimestamp  bun.NullTime `json:"valuation_timestamp"`
	CreatedAt           time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt           bun.NullTime `json:"updated_at"`
}

func (a *Asset) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

// PureMetalWeight is floor(weight * purity / 1000), in milligrams like the
// weight itself.
func (a *Asset) PureMetalWeight() int64 {
	return a.WeightInGrams * a.PurityInThousandths / common.PurityDivisor
}

var _ bun.BeforeAppendModelHook = (*Asset)(nil)
