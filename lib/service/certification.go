package service

import (
	"context"
	"database/sql"

	"github.com/scrollverse/metalbridge/common"
	"github.com/scrollverse/metalbridge/db/models"
)

// ValidStatusTransition is the certification state machine. PENDING is only
// ever left through CertifyAsset and never re-entered; REVOKED is terminal.
// SUSPENDED assets can be re-certified, suspension is a reversible hold, not
// a revocation.
func ValidStatusTransition(oldStatus, newStatus string) bool {
	if newStatus == common.CertificationStatusPending {
		return false
	}
	if oldStatus == newStatus {
		return false
	}
	switch oldStatus {
	case common.CertificationStatusCertified:
		return newStatus == common.CertificationStatusSuspended ||
			newStatus == common.CertificationStatusRevoked
	case common.CertificationStatusSuspended:
		return newStatus == common.CertificationStatusCertified ||
			newStatus == common.CertificationStatusRevoked
	default:
		// PENDING (certify-only) and REVOKED (terminal)
		return false
	}
}

// CertifyAsset moves a PENDING asset to CERTIFIED and records who attested
// it. Certifier and proof are write-once: they survive later suspensions and
// revocations, they record who certified, not current standing.
func (svc *BridgeService) CertifyAsset(ctx context.Context, certifier string, tokenID int64, proof string) (*models.Asset, error) {
	certifier = NormalizeAddress(certifier)
	authorized, err := svc.IsAuthorized(ctx, certifier, common.RoleCertifier)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, ErrNotAuthorizedCertifier
	}
	if !ValidAssetHash(proof) {
		return nil, ErrInvalidHash
	}

	asset, err := svc.GetPreciousAsset(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if asset.Status != common.CertificationStatusPending {
		return nil, ErrAssetNotPending
	}
	if asset.Certifier != "" || asset.CertificationProof != "" {
		// write-once guard, independent of the status check above
		return nil, ErrAssetNotPending
	}

	asset.Status = common.CertificationStatusCertified
	asset.Certifier = certifier
	asset.CertificationProof = NormalizeAddress(proof)

	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	_, err = tx.NewUpdate().
		Model(asset).
		Column("status", "certifier", "certification_proof", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	_, err = tx.NewUpdate().
		Model((*models.Authorization)(nil)).
		Set("certification_count = certification_count + 1").
		Where("identity = ? AND role = ?", certifier, common.RoleCertifier).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = appendProvenance(ctx, &tx, tokenID, certifier, common.ProvenanceCertified); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	svc.Logger.Infof("Token %d certified by %s", tokenID, certifier)
	svc.publishEvent(common.RegistryEvent{
		Type:    common.EventTypeCertified,
		TokenID: tokenIDPtr(tokenID),
		Actor:   certifier,
		Payload: map[string]interface{}{
			"certification_proof": asset.CertificationProof,
		},
	})

	return asset, nil
}

// UpdateCertificationStatus applies one edge of the state machine. Any
// transition targeting PENDING is rejected before the edge check so the
// reason stays stable even if the edges ever change.
func (svc *BridgeService) UpdateCertificationStatus(ctx context.Context, certifier string, tokenID int64, newStatus string) (*models.Asset, error) {
	certifier = NormalizeAddress(certifier)
	authorized, err := svc.IsAuthorized(ctx, certifier, common.RoleCertifier)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, ErrNotAuthorizedCertifier
	}
	if !common.IsValidCertificationStatus(newStatus) {
		return nil, ErrInvalidEnum
	}

	asset, err := svc.GetPreciousAsset(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if newStatus == common.CertificationStatusPending {
		return nil, ErrCannotRevertToPending
	}
	if !ValidStatusTransition(asset.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	oldStatus := asset.Status
	asset.Status = newStatus

	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	_, err = tx.NewUpdate().
		Model(asset).
		Column("status", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = appendProvenance(ctx, &tx, tokenID, certifier, common.ProvenanceStatusChanged); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	svc.Logger.Infof("Token %d status %s -> %s by %s", tokenID, oldStatus, newStatus, certifier)
	svc.publishEvent(common.RegistryEvent{
		Type:    common.EventTypeStatusChanged,
		TokenID: tokenIDPtr(tokenID),
		Actor:   certifier,
		Payload: map[string]interface{}{
			"old_status": oldStatus,
			"new_status": newStatus,
		},
	})

	return asset, nil
}
