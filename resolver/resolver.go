// Package resolver turns user supplied token identifiers, either a shorthand
// symbol or a hex address, into checksummed token addresses.
package resolver

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const maxSuggestions = 3

// SymbolTable is the shorthand table a Resolver consults. Lookup receives
// uppercase symbols.
type SymbolTable interface {
	Lookup(symbol string) (string, bool)
	Suggest(input string, max int) []string
}

type Resolver struct {
	table  SymbolTable
	logger *zap.Logger
}

func New(table SymbolTable, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{table: table, logger: logger}
}

// Resolve returns the checksummed address for input.
//
// Inputs without the lowercase 0x prefix are shorthands and are looked up
// in the table case-insensitively. Inputs with the prefix, and addresses
// found in the table, must be 40 hex digits. A correctly checksummed input is returned unchanged, any other
// valid address is returned in its checksummed form.
func (r *Resolver) Resolve(input string) (string, error) {
	if input == "" {
		return "", &ResolutionError{Input: input, Kind: ErrMalformedAddress}
	}

	addr := input
	if !strings.HasPrefix(input, "0x") {
		var found bool
		addr, found = r.table.Lookup(strings.ToUpper(input))
		if !found {
			return "", &ResolutionError{
				Input:       input,
				Kind:        ErrUnknownShorthand,
				Suggestions: r.table.Suggest(input, maxSuggestions),
			}
		}
	}
	return r.checksum(input, addr)
}

// checksum validates addr and returns its EIP-55 form. input is what the
// user typed and is only used for errors and logs.
func (r *Resolver) checksum(input, addr string) (string, error) {
	if !isHexAddress(addr) {
		return "", &ResolutionError{Input: input, Kind: ErrMalformedAddress}
	}

	checksummed := common.HexToAddress(addr).Hex()
	if checksummed != addr {
		r.logger.Info("address is not checksummed, using the checksummed form",
			zap.String("input", input),
			zap.String("address", checksummed),
		)
	}
	return checksummed, nil
}

func isHexAddress(s string) bool {
	if len(s) != 2+2*common.AddressLength {
		return false
	}
	for _, c := range []byte(s[2:]) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Result is the outcome of resolving one input. Exactly one of Address and
// Err is set.
type Result struct {
	Input   string
	Address string
	Err     error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Validate is Resolve returning a Result instead of a pair.
func (r *Resolver) Validate(input string) Result {
	addr, err := r.Resolve(input)
	return Result{Input: input, Address: addr, Err: err}
}
