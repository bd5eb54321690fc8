package resolver

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tranvictor/uniquote/db"
)

const weth = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

func newTestResolver() *Resolver {
	return New(db.DefaultTable(1), nil)
}

func TestResolveShorthand(t *testing.T) {
	r := newTestResolver()
	for _, e := range db.DefaultTable(1).Entries() {
		want, err := r.Resolve(e.Symbol)
		require.NoError(t, err, e.Symbol)
		require.Equal(t, e.Address, want)

		for _, input := range []string{strings.ToLower(e.Symbol), strings.ToUpper(e.Symbol)} {
			addr, err := r.Resolve(input)
			require.NoError(t, err, input)
			require.Equal(t, want, addr, input)
		}
	}

	addr, err := r.Resolve("WeTh")
	require.NoError(t, err)
	require.Equal(t, weth, addr)
}

// mapTable is a SymbolTable that keeps addresses as given.
type mapTable map[string]string

func (m mapTable) Lookup(symbol string) (string, bool) {
	addr, found := m[symbol]
	return addr, found
}

func (m mapTable) Suggest(string, int) []string {
	return nil
}

func TestResolveShorthandChecksumsTableAddress(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(mapTable{
		"WETH":   strings.ToLower(weth),
		"BROKEN": "0x1234",
	}, zap.New(core))

	addr, err := r.Resolve("weth")
	require.NoError(t, err)
	require.Equal(t, weth, addr)
	require.Equal(t, 1, logs.Len())

	_, err = r.Resolve("broken")
	require.ErrorIs(t, err, ErrMalformedAddress)
	var rerr *ResolutionError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "broken", rerr.Input)
}

func TestResolveUnknownShorthand(t *testing.T) {
	r := newTestResolver()
	_, err := r.Resolve("WTH")
	require.ErrorIs(t, err, ErrUnknownShorthand)
	require.NotErrorIs(t, err, ErrMalformedAddress)

	var rerr *ResolutionError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "WTH", rerr.Input)
	require.Contains(t, rerr.Suggestions, "WETH")
	require.LessOrEqual(t, len(rerr.Suggestions), maxSuggestions)
	require.Contains(t, err.Error(), "did you mean")

	// uppercase prefix is not an address prefix
	_, err = r.Resolve("0XC02AAA39B223FE8D0A0E5C4F27EAD9083C756CC2")
	require.ErrorIs(t, err, ErrUnknownShorthand)
}

func TestResolveChecksummedIsIdentity(t *testing.T) {
	r := newTestResolver()
	for _, e := range db.DefaultTable(1).Entries() {
		addr, err := r.Resolve(e.Address)
		require.NoError(t, err)
		require.Equal(t, e.Address, addr)
	}
}

func TestResolveCoercesCase(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(db.DefaultTable(1), zap.New(core))

	lower := strings.ToLower(weth)
	upper := "0x" + strings.ToUpper(weth[2:])
	for _, input := range []string{lower, upper} {
		addr, err := r.Resolve(input)
		require.NoError(t, err)
		require.Equal(t, weth, addr)
	}
	require.Equal(t, 2, logs.Len())

	// a random address with a broken checksum is still accepted
	input := "0x52908400098527886e0f7030069857d2e4169ee7"
	addr, err := r.Resolve(input)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(input).Hex(), addr)
}

func TestResolveMalformed(t *testing.T) {
	r := newTestResolver()
	testcases := []string{
		"",
		"0x",
		"0xZZZZ",
		"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc",
		"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc22",
		"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756CgG",
	}
	for _, input := range testcases {
		_, err := r.Resolve(input)
		require.ErrorIs(t, err, ErrMalformedAddress, input)
		require.NotErrorIs(t, err, ErrUnknownShorthand, input)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := newTestResolver()
	for _, input := range []string{"weth", strings.ToLower(weth), weth, "usdt"} {
		first, err := r.Resolve(input)
		require.NoError(t, err)
		second, err := r.Resolve(first)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestValidate(t *testing.T) {
	r := newTestResolver()
	res := r.Validate("weth")
	require.True(t, res.OK())
	require.Equal(t, weth, res.Address)

	res = r.Validate("0xZZ")
	require.False(t, res.OK())
	require.Empty(t, res.Address)
	require.ErrorIs(t, res.Err, ErrMalformedAddress)
}
