package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/scrollverse/metalbridge/common"
	"github.com/scrollverse/metalbridge/db/models"
	"github.com/uptrace/bun"
)

func (svc *BridgeService) IsAuthorized(ctx context.Context, identity, role string) (bool, error) {
	auth := &models.Authorization{}
	err := svc.DB.NewSelect().
		Model(auth).
		Where("identity = ? AND role = ?", NormalizeAddress(identity), role).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return auth.Authorized, nil
}

func upsertAuthorization(ctx context.Context, tx *bun.Tx, identity, role string, authorized bool) error {
	auth := &models.Authorization{
		Identity:   identity,
		Role:       role,
		Authorized: authorized,
	}
	_, err := tx.NewInsert().
		Model(auth).
		On("CONFLICT (identity, role) DO UPDATE").
		Set("authorized = EXCLUDED.authorized").
		Exec(ctx)
	return err
}

// setAuthorization is idempotent and always emits the change event, even when
// the stored value did not change. Observers rely on the event stream being a
// superset of the admin's calls.
func (svc *BridgeService) setAuthorization(ctx context.Context, identity, role, eventType string, authorized bool) error {
	identity = NormalizeAddress(identity)
	if !ValidAddress(identity) {
		return ErrInvalidAddress
	}

	registry, err := svc.GetRegistry(ctx)
	if err != nil {
		return err
	}

	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err = upsertAuthorization(ctx, &tx, identity, role, authorized); err != nil {
		tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	svc.Logger.Infof("Set %s authorization for %s to %t", role, identity, authorized)
	svc.publishEvent(common.RegistryEvent{
		Type:  eventType,
		Actor: registry.AdminIdentity,
		Payload: map[string]interface{}{
			"identity":   identity,
			"authorized": authorized,
		},
	})
	return nil
}

func (svc *BridgeService) SetCertifierAuthorization(ctx context.Context, identity string, authorized bool) error {
	return svc.setAuthorization(ctx, identity, common.RoleCertifier, common.EventTypeCertifierAuthorized, authorized)
}

func (svc *BridgeService) SetVaultOperatorAuthorization(ctx context.Context, identity string, authorized bool) error {
	return svc.setAuthorization(ctx, identity, common.RoleVaultOperator, common.EventTypeVaultOperatorAuthorized, authorized)
}

func (svc *BridgeService) UpdateTreasury(ctx context.Context, identity string) (*models.Registry, error) {
	identity = NormalizeAddress(identity)
	if !ValidAddress(identity) {
		return nil, ErrInvalidTreasury
	}

	registry, err := svc.GetRegistry(ctx)
	if err != nil {
		return nil, err
	}
	oldTreasury := registry.TreasuryAddress
	registry.TreasuryAddress = identity

	_, err = svc.DB.NewUpdate().
		Model(registry).
		Column("treasury_address", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	svc.Logger.Infof("Treasury updated %s -> %s", oldTreasury, identity)
	svc.publishEvent(common.RegistryEvent{
		Type:  common.EventTypeTreasuryUpdated,
		Actor: registry.AdminIdentity,
		Payload: map[string]interface{}{
			"old_treasury": oldTreasury,
			"new_treasury": identity,
		},
	})
	return registry, nil
}

// GetCertifierCertificationCount reports lifetime certifications, surviving
// deauthorization of the certifier.
func (svc *BridgeService) GetCertifierCertificationCount(ctx context.Context, identity string) (int64, error) {
	auth := &models.Authorization{}
	err := svc.DB.NewSelect().
		Model(auth).
		Where("identity = ? AND role = ?", NormalizeAddress(identity), common.RoleCertifier).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return auth.CertificationCount, nil
}
