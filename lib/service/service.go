package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/scrollverse/metalbridge/common"
	"github.com/scrollverse/metalbridge/db/models"
	"github.com/scrollverse/metalbridge/ledger"
	"github.com/scrollverse/metalbridge/rabbitmq"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// Stable failure reasons. Controllers branch on these with errors.Is, the
// strings themselves mirror the registry's public revert reasons.
var (
	ErrInvalidAddress             = errors.New("Invalid identity address")
	ErrInvalidTreasury            = errors.New("Invalid treasury address")
	ErrInvalidWeight              = errors.New("Weight must be between 1 gram and 1000000 tonnes")
	ErrInvalidPurity              = errors.New("Invalid purity")
	ErrInvalidEnum                = errors.New("Value outside closed enumeration")
	ErrInvalidHash                = errors.New("Invalid asset fingerprint")
	ErrInvalidValue               = errors.New("Invalid monetary value")
	ErrDuplicateAsset             = errors.New("Asset already tokenized")
	ErrAssetNotPending            = errors.New("Asset not pending certification")
	ErrCannotRevertToPending      = errors.New("Cannot revert to pending")
	ErrInvalidStatusTransition    = errors.New("Invalid status transition")
	ErrNotAuthorizedCertifier     = errors.New("Not authorized certifier")
	ErrNotAuthorizedVaultOperator = errors.New("Not authorized vault operator")
	ErrAssetNotFound              = errors.New("Asset does not exist")
)

type BridgeService struct {
	Config         *Config
	DB             *bun.DB
	TokenLedger    ledger.TokenLedgerWrapper
	Logger         *lecho.Logger
	EventPubSub    *Pubsub
	RabbitMQClient rabbitmq.Client
}

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-f]{40}$`)
	hashRegex    = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
)

const nullAddress = "0x0000000000000000000000000000000000000000"

// NormalizeAddress lowercases an identity so role lookups and uniqueness
// checks are case-insensitive, the way address comparison is on-ledger.
func NormalizeAddress(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

func ValidAddress(identity string) bool {
	identity = NormalizeAddress(identity)
	return addressRegex.MatchString(identity) && identity != nullAddress
}

func ValidAssetHash(hash string) bool {
	return hashRegex.MatchString(NormalizeAddress(hash))
}

// InitRegistry seeds the singleton settings row on first startup and
// authorizes the admin identity as both certifier and vault operator, the
// same grants the registry's deploying identity receives.
func (svc *BridgeService) InitRegistry(ctx context.Context) (*models.Registry, error) {
	registry := &models.Registry{}
	err := svc.DB.NewSelect().Model(registry).Limit(1).Scan(ctx)
	if err == nil {
		return registry, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	admin := NormalizeAddress(svc.Config.AdminIdentity)
	treasury := NormalizeAddress(svc.Config.TreasuryAddress)
	if !ValidAddress(admin) {
		return nil, ErrInvalidAddress
	}
	if !ValidAddress(treasury) {
		return nil, ErrInvalidTreasury
	}

	registry = &models.Registry{
		Name:               svc.Config.Branding.Name,
		Symbol:             svc.Config.Branding.Symbol,
		AdminIdentity:      admin,
		TreasuryAddress:    treasury,
		RoyaltyBasisPoints: svc.Config.RoyaltyBasisPoints,
	}

	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	if _, err = tx.NewInsert().Model(registry).Exec(ctx); err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, role := range []string{common.RoleCertifier, common.RoleVaultOperator} {
		if err = upsertAuthorization(ctx, &tx, admin, role, true); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	svc.Logger.Infof("Initialized registry %s (%s), admin %s", registry.Name, registry.Symbol, admin)
	return registry, nil
}

func (svc *BridgeService) GetRegistry(ctx context.Context) (*models.Registry, error) {
	registry := &models.Registry{}
	err := svc.DB.NewSelect().Model(registry).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return registry, nil
}

// publishEvent fans a committed mutation out to the event topic and the
// wildcard topic. Mutations call this only after their transaction commits.
func (svc *BridgeService) publishEvent(event common.RegistryEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if svc.EventPubSub == nil {
		return
	}
	svc.EventPubSub.Publish(event.Type, event)
	svc.EventPubSub.Publish(common.EventTopicAll, event)
}

// SubscribeRegistryEvents hands the rabbitmq publisher a channel fed with
// every registry event.
func (svc *BridgeService) SubscribeRegistryEvents() (events chan common.RegistryEvent, err error) {
	events = make(chan common.RegistryEvent)
	_, err = svc.EventPubSub.Subscribe(common.EventTopicAll, events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func tokenIDPtr(tokenID int64) *int64 {
	return &tokenID
}
