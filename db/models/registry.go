package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Registry : Registry Settings Model
//
// Single row seeded at first startup. DeployedAt is immutable, it anchors the
// elapsed-time reporting on the info endpoint.
type Registry struct {
	ID                 int64        `json:"-" bun:",pk,autoincrement"`
	Name               string       `json:"name" bun:",notnull"`
	Symbol             string       `json:"symbol" bun:",notnull"`
	AdminIdentity      string       `json:"admin_identity" bun:",notnull"`
	TreasuryAddress    string       `json:"treasury_address" bun:",notnull"`
	RoyaltyBasisPoints int64        `json:"royalty_basis_points" bun:",notnull"`
	DeployedAt         time.Time    `json:"deployed_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt          bun.NullTime `json:"updated_at"`
}

func (r *Registry) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		r.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Registry)(nil)
