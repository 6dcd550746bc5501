// Package token connects the artwork to an ownership ledger. Token ids are
// assigned by the ledger; the low 64 bits of an id seed the simulation.
package token

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"golart/pkg/art"
)

const (
	Name   = "Game of Life"
	Symbol = "GOL"
)

var (
	// ErrInvalidID is returned for nil or negative token ids.
	ErrInvalidID = errors.New("token: invalid token id")
	// ErrNotMinted is returned by ledgers for ids they do not know.
	ErrNotMinted = errors.New("token: not minted")
)

var low64 = new(big.Int).SetUint64(^uint64(0))

// Ledger records token ownership. Implementations live outside this module.
type Ledger interface {
	Mint(ctx context.Context, to string) (*big.Int, error)
	Transfer(ctx context.Context, from, to string, id *big.Int) error
	OwnerOf(ctx context.Context, id *big.Int) (string, error)
}

// SeedFromID returns the low 64 bits of id.
func SeedFromID(id *big.Int) (uint64, error) {
	if id == nil || id.Sign() < 0 {
		return 0, ErrInvalidID
	}
	return new(big.Int).And(id, low64).Uint64(), nil
}

// ParseID parses a decimal or 0x-prefixed hexadecimal token id.
func ParseID(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 0)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// Collection serves metadata for the tokens held in a ledger.
type Collection struct {
	ledger Ledger
}

// NewCollection wraps ledger.
func NewCollection(ledger Ledger) *Collection {
	return &Collection{ledger: ledger}
}

// Name returns the collection name.
func (c *Collection) Name() string { return Name }

// Symbol returns the collection symbol.
func (c *Collection) Symbol() string { return Symbol }

// TokenURI returns the SVG document for a minted token.
func (c *Collection) TokenURI(ctx context.Context, id *big.Int) (string, error) {
	seed, err := SeedFromID(id)
	if err != nil {
		return "", err
	}
	if _, err := c.ledger.OwnerOf(ctx, id); err != nil {
		return "", fmt.Errorf("token %s: %w", id, err)
	}
	return art.Render(seed), nil
}

// Render returns the SVG document for id without consulting a ledger.
func Render(id *big.Int) (string, error) {
	seed, err := SeedFromID(id)
	if err != nil {
		return "", err
	}
	return art.Render(seed), nil
}
