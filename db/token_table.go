// Package db holds the shorthand token tables mapping uppercase symbols to
// token contract addresses.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrDuplicateSymbol = errors.New("duplicate symbol")

type TokenEntry struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
}

// Table is an immutable symbol to address mapping. Symbols are unique after
// uppercasing and addresses are kept checksummed.
type Table struct {
	tokens map[string]string
}

// NewTable builds a table from entries. Symbols are uppercased, a collision
// after uppercasing is an error and so is an address that is not 20 bytes
// of hex.
func NewTable(entries []TokenEntry) (*Table, error) {
	tokens := make(map[string]string, len(entries))
	for _, e := range entries {
		symbol := strings.ToUpper(strings.TrimSpace(e.Symbol))
		if symbol == "" {
			return nil, fmt.Errorf("empty symbol for address %s", e.Address)
		}
		if _, found := tokens[symbol]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, symbol)
		}
		if !strings.HasPrefix(e.Address, "0x") || !common.IsHexAddress(e.Address) {
			return nil, fmt.Errorf("invalid address %q for %s", e.Address, symbol)
		}
		tokens[symbol] = common.HexToAddress(e.Address).Hex()
	}
	return &Table{tokens: tokens}, nil
}

// LoadTable returns the built-in table of chainID merged with the user
// file at path. The user file is a json object of symbol to address and its
// entries win over the built-in ones. A missing file is not an error, an
// invalid one is logged and ignored.
func LoadTable(chainID uint64, path string, logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultTable(chainID)
	if path == "" {
		return defaults
	}

	user, err := readUserTable(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignore invalid token file, using built-in tokens", zap.String("file", path), zap.Error(err))
		}
		return defaults
	}

	merged := make(map[string]string, defaults.Len()+user.Len())
	for symbol, addr := range defaults.tokens {
		merged[symbol] = addr
	}
	for symbol, addr := range user.tokens {
		if old, found := merged[symbol]; found && old != addr {
			logger.Info("user token overrides built-in", zap.String("symbol", symbol), zap.String("address", addr))
		}
		merged[symbol] = addr
	}
	return &Table{tokens: merged}
}

func readUserTable(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := map[string]string{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	entries := make([]TokenEntry, 0, len(raw))
	for symbol, addr := range raw {
		entries = append(entries, TokenEntry{Symbol: symbol, Address: addr})
	}
	return NewTable(entries)
}

// Lookup expects an uppercase symbol.
func (t *Table) Lookup(symbol string) (string, bool) {
	addr, found := t.tokens[symbol]
	return addr, found
}

func (t *Table) Len() int {
	return len(t.tokens)
}

// Entries returns every entry ordered by symbol.
func (t *Table) Entries() []TokenEntry {
	result := make([]TokenEntry, 0, len(t.tokens))
	for symbol, addr := range t.tokens {
		result = append(result, TokenEntry{Symbol: symbol, Address: addr})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Symbol < result[j].Symbol
	})
	return result
}

// Suggest returns up to max symbols close to input, best match first.
func (t *Table) Suggest(input string, max int) []string {
	matches := getSymbolMatches(input, FuzzySource(t.Entries()), max)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.Symbol)
	}
	return result
}
