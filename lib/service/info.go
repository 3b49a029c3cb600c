package service

import (
	"context"
	"time"
)

type RegistryInfo struct {
	Name               string    `json:"name"`
	Symbol             string    `json:"symbol"`
	TreasuryAddress    string    `json:"treasury_address"`
	RoyaltyBasisPoints int64     `json:"royalty_basis_points"`
	DeployedAt         time.Time `json:"deployed_at"`
	ElapsedSeconds     int64     `json:"elapsed_seconds"`
	TotalSupply        int64     `json:"total_supply"`
}

func (svc *BridgeService) GetInfo(ctx context.Context) (*RegistryInfo, error) {
	registry, err := svc.GetRegistry(ctx)
	if err != nil {
		return nil, err
	}
	supply, err := svc.TotalSupply(ctx)
	if err != nil {
		return nil, err
	}
	return &RegistryInfo{
		Name:               registry.Name,
		Symbol:             registry.Symbol,
		TreasuryAddress:    registry.TreasuryAddress,
		RoyaltyBasisPoints: registry.RoyaltyBasisPoints,
		DeployedAt:         registry.DeployedAt,
		ElapsedSeconds:     int64(time.Since(registry.DeployedAt).Seconds()),
		TotalSupply:        supply,
	}, nil
}
