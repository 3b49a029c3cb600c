package ledger

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryLedger keeps token ownership in process memory. It backs local
// development and tests; a production deployment points LEDGER_TYPE at a real
// ledger implementation.
type InMemoryLedger struct {
	mu     sync.RWMutex
	owners map[int64]string

	// FailNextMint makes the next Mint call fail, so callers can exercise
	// their rollback paths.
	FailNextMint bool
}

func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{
		owners: make(map[int64]string),
	}
}

func (l *InMemoryLedger) Mint(ctx context.Context, owner string, tokenID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailNextMint {
		l.FailNextMint = false
		return fmt.Errorf("ledger mint rejected for token %d", tokenID)
	}
	if _, ok := l.owners[tokenID]; ok {
		return fmt.Errorf("token %d already minted", tokenID)
	}
	l.owners[tokenID] = owner
	return nil
}

func (l *InMemoryLedger) OwnerOf(ctx context.Context, tokenID int64) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	owner, ok := l.owners[tokenID]
	if !ok {
		return "", fmt.Errorf("token %d does not exist", tokenID)
	}
	return owner, nil
}

func (l *InMemoryLedger) Exists(ctx context.Context, tokenID int64) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.owners[tokenID]
	return ok, nil
}
