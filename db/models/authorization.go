package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Authorization : Role Authorization Model
//
// One row per (identity, role) pair, upserted by the admin surface. Rows are
// never deleted so the certification counter survives deauthorization.
type Authorization struct {
	ID                 int64        `json:"-" bun:",pk,autoincrement"`
	Identity           string       `json:"identity" bun:",notnull,unique:identity_role"`
	Role               string       `json:"role" bun:",notnull,unique:identity_role"`
	Authorized         bool         `json:"authorized" bun:",notnull"`
	CertificationCount int64        `json:"certification_count"`
	CreatedAt          time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt          bun.NullTime `json:"updated_at"`
}

func (a *Authorization) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Authorization)(nil)
