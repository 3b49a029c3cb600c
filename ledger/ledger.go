package ledger

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// TokenLedgerWrapper is the boundary to the ownership-token ledger that holds
// current ownership of the minted tokens. The registry only describes assets,
// it never moves tokens.
type TokenLedgerWrapper interface {
	Mint(ctx context.Context, owner string, tokenID int64) error
	OwnerOf(ctx context.Context, tokenID int64) (string, error)
	Exists(ctx context.Context, tokenID int64) (bool, error)
}

type Config struct {
	LedgerType string `envconfig:"LEDGER_TYPE" default:"memory"`
}

func LoadConfig() (*Config, error) {
	c := &Config{}
	err := envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func InitTokenLedger(c *Config) (TokenLedgerWrapper, error) {
	switch c.LedgerType {
	case "memory":
		return NewInMemoryLedger(), nil
	default:
		return nil, fmt.Errorf("unrecognized ledger type %s", c.LedgerType)
	}
}
