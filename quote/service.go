// Package quote reads token metadata and Uniswap V2 style prices from chain.
package quote

import (
	"context"
	"errors"
	"math/big"
)

var (
	ErrSameToken       = errors.New("token in and token out are the same")
	ErrNotERC20        = errors.New("address is not an ERC20 token")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint64 `json:"decimals"`
}

// Service is what the commands need from the chain.
type Service interface {
	GetToken(ctx context.Context, address string) (Token, error)
	// GetTokens returns the tokens in the order of addresses.
	GetTokens(ctx context.Context, addresses []string) ([]Token, error)
	// GetQuote returns how many raw units of tokenIn are needed to buy
	// quantity raw units of tokenOut.
	GetQuote(ctx context.Context, tokenIn, tokenOut string, quantity *big.Int) (*big.Int, error)
}

// Cache stores token metadata between runs.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
