package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryLedgerMint(t *testing.T) {
	ctx := context.Background()
	l := NewInMemoryLedger()

	exists, err := l.Exists(ctx, 0)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, l.Mint(ctx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 0))

	exists, err = l.Exists(ctx, 0)
	assert.NoError(t, err)
	assert.True(t, exists)

	owner, err := l.OwnerOf(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", owner)

	// a token id is minted at most once
	assert.Error(t, l.Mint(ctx, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", 0))

	_, err = l.OwnerOf(ctx, 42)
	assert.Error(t, err)
}

func TestInMemoryLedgerFailNextMint(t *testing.T) {
	ctx := context.Background()
	l := NewInMemoryLedger()

	l.FailNextMint = true
	assert.Error(t, l.Mint(ctx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 0))

	// the failure is one-shot
	assert.NoError(t, l.Mint(ctx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 0))
}
