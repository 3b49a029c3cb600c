package models

import (
	"time"
)

// ProvenanceEntry : Provenance Entry Model
//
// Append-only. Rows are only ever inserted, ordering is the insertion order
// (the autoincrement pk). Entry 0 for every asset is the mint event.
type ProvenanceEntry struct {
	ID          int64     `json:"-" bun:",pk,autoincrement"`
	TokenID     int64     `json:"token_id" bun:",notnull"`
	Timestamp   time.Time `json:"timestamp" bun:",nullzero,notnull,default:current_timestamp"`
	Actor       string    `json:"actor" bun:",notnull"`
	Description string    `json:"description" bun:",notnull"`
}
