package service

import (
	"context"
	"time"

	"github.com/scrollverse/metalbridge/db/models"
	"github.com/uptrace/bun"
)

// appendProvenance joins the caller's transaction so the audit entry commits
// with the mutation it records, or not at all. Nothing outside this package
// appends provenance.
func appendProvenance(ctx context.Context, tx *bun.Tx, tokenID int64, actor, description string) error {
	entry := &models.ProvenanceEntry{
		TokenID:     tokenID,
		Timestamp:   time.Now(),
		Actor:       actor,
		Description: description,
	}
	_, err := tx.NewInsert().Model(entry).Exec(ctx)
	return err
}

func (svc *BridgeService) GetProvenanceHistory(ctx context.Context, tokenID int64) ([]models.ProvenanceEntry, error) {
	if _, err := svc.GetPreciousAsset(ctx, tokenID); err != nil {
		return nil, err
	}
	entries := []models.ProvenanceEntry{}
	err := svc.DB.NewSelect().
		Model(&entries).
		Where("token_id = ?", tokenID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (svc *BridgeService) GetProvenanceCount(ctx context.Context, tokenID int64) (int64, error) {
	if _, err := svc.GetPreciousAsset(ctx, tokenID); err != nil {
		return 0, err
	}
	count, err := svc.DB.NewSelect().
		Model((*models.ProvenanceEntry)(nil)).
		Where("token_id = ?", tokenID).
		Count(ctx)
	return int64(count), err
}
