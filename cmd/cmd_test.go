package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/uniquote/common"
	"github.com/tranvictor/uniquote/db"
	"github.com/tranvictor/uniquote/networks"
	"github.com/tranvictor/uniquote/quote"
	"github.com/tranvictor/uniquote/resolver"
	"github.com/tranvictor/uniquote/ui"
	"github.com/tranvictor/uniquote/util/reader"
)

const (
	weth = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	usdc = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	dai  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
)

type fakeService struct {
	tokens     map[string]quote.Token
	price      *big.Int
	quoteErr   error
	quantities []*big.Int
}

func newFakeService() *fakeService {
	return &fakeService{
		tokens: map[string]quote.Token{
			weth: {Address: weth, Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18},
			usdc: {Address: usdc, Symbol: "USDC", Name: "USD Coin", Decimals: 6},
			dai:  {Address: dai, Symbol: "DAI", Name: "Dai Stablecoin", Decimals: 18},
		},
		price: big.NewInt(2512345678),
	}
}

func (f *fakeService) GetToken(ctx context.Context, address string) (quote.Token, error) {
	token, found := f.tokens[address]
	if !found {
		return quote.Token{}, quote.ErrNotERC20
	}
	return token, nil
}

func (f *fakeService) GetTokens(ctx context.Context, addresses []string) ([]quote.Token, error) {
	result := []quote.Token{}
	for _, addr := range addresses {
		token, err := f.GetToken(ctx, addr)
		if err != nil {
			return nil, err
		}
		result = append(result, token)
	}
	return result, nil
}

func (f *fakeService) GetQuote(ctx context.Context, tokenIn, tokenOut string, quantity *big.Int) (*big.Int, error) {
	f.quantities = append(f.quantities, quantity)
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	return f.price, nil
}

func TestResolveTokens(t *testing.T) {
	r := resolver.New(db.DefaultTable(1), nil)

	addresses, err := resolveTokens(r, []string{"usdc", strings.ToLower(weth)})
	require.NoError(t, err)
	require.Equal(t, []string{usdc, weth}, addresses)

	_, err = resolveTokens(r, []string{"notatoken", "0x1234", "weth"})
	require.ErrorIs(t, err, resolver.ErrUnknownShorthand)
	require.ErrorIs(t, err, resolver.ErrMalformedAddress)
}

func TestRunPriceDefaultQuantity(t *testing.T) {
	svc := newFakeService()
	u := ui.NewRecordingUI()

	require.NoError(t, runPrice(context.Background(), u, svc, usdc, weth, priceOptions{}))
	require.Equal(t, []string{"2512.345678"}, u.Values("Critical"))
	require.Equal(t, 0, common.OneUnit(18).Cmp(svc.quantities[0]))
}

func TestRunPriceRaw(t *testing.T) {
	svc := newFakeService()
	u := ui.NewRecordingUI()

	require.NoError(t, runPrice(context.Background(), u, svc, usdc, weth, priceOptions{Raw: true}))
	require.Equal(t, []string{"2512345678"}, u.Values("Critical"))
}

func TestRunPriceQuantityAndAmount(t *testing.T) {
	svc := newFakeService()

	require.NoError(t, runPrice(context.Background(), ui.NewRecordingUI(), svc, weth, usdc, priceOptions{Quantity: "1000"}))
	require.Equal(t, "1000", svc.quantities[0].String())

	require.NoError(t, runPrice(context.Background(), ui.NewRecordingUI(), svc, usdc, weth, priceOptions{Amount: "0.5"}))
	require.Equal(t, "500000000000000000", svc.quantities[1].String())

	err := runPrice(context.Background(), ui.NewRecordingUI(), svc, usdc, weth, priceOptions{Quantity: "1", Amount: "1"})
	require.Error(t, err)

	err = runPrice(context.Background(), ui.NewRecordingUI(), svc, usdc, weth, priceOptions{Quantity: "0"})
	require.ErrorIs(t, err, quote.ErrInvalidQuantity)

	err = runPrice(context.Background(), ui.NewRecordingUI(), svc, usdc, weth, priceOptions{Quantity: "abc"})
	require.Error(t, err)

	err = runPrice(context.Background(), ui.NewRecordingUI(), svc, usdc, weth, priceOptions{Amount: "1e100000000"})
	require.Error(t, err)
	require.Len(t, svc.quantities, 2)
}

func TestRunPriceErrors(t *testing.T) {
	svc := newFakeService()
	svc.quoteErr = errors.New("couldn't read from any nodes")
	err := runPrice(context.Background(), ui.NewRecordingUI(), svc, usdc, weth, priceOptions{})
	require.ErrorIs(t, err, svc.quoteErr)

	err = runPrice(context.Background(), ui.NewRecordingUI(), newFakeService(), usdc, "0x0000000000000000000000000000000000000001", priceOptions{})
	require.ErrorIs(t, err, quote.ErrNotERC20)
}

func TestRunToken(t *testing.T) {
	u := ui.NewRecordingUI()
	require.NoError(t, runToken(context.Background(), u, newFakeService(), dai, false))
	require.Equal(t, []string{
		"Address | " + dai,
		"Symbol | DAI",
		"Name | Dai Stablecoin",
		"Decimals | 18",
	}, u.Values("KeyValue"))

	u = ui.NewRecordingUI()
	require.NoError(t, runToken(context.Background(), u, newFakeService(), usdc, true))
	token := quote.Token{}
	require.NoError(t, json.Unmarshal([]byte(u.Output()), &token))
	require.Equal(t, uint64(6), token.Decimals)
}

func TestRunTokenDB(t *testing.T) {
	entries := []db.TokenEntry{
		{Symbol: "DAI", Address: dai},
		{Symbol: "USDC", Address: usdc},
	}

	u := ui.NewRecordingUI()
	require.NoError(t, runTokenDB(context.Background(), u, nil, entries, false, false))
	require.Equal(t, []string{"DAI | " + dai, "USDC | " + usdc}, u.Values("Table"))

	u = ui.NewRecordingUI()
	require.NoError(t, runTokenDB(context.Background(), u, newFakeService(), entries, true, false))
	require.Equal(t, []string{"Symbol | Address | Name | Decimals"}, u.Values("TableHeader"))
	require.Equal(t, "USDC | "+usdc+" | USD Coin | 6", u.Values("Table")[1])

	u = ui.NewRecordingUI()
	require.NoError(t, runTokenDB(context.Background(), u, newFakeService(), entries, true, true))
	lines := strings.Split(strings.TrimSpace(u.Output()), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"symbol":"DAI","address":"`+dai+`","name":"Dai Stablecoin","decimals":18}`, lines[0])
}

func TestRunTokenDBSymbolMismatch(t *testing.T) {
	entries := []db.TokenEntry{
		{Symbol: "USDT", Address: usdc},
		{Symbol: "DAI", Address: dai},
		{Symbol: "WBTC", Address: weth},
	}
	u := ui.NewRecordingUI()
	err := runTokenDB(context.Background(), u, newFakeService(), entries, true, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 token db entries")

	errs := u.ErrorMessages()
	require.Len(t, errs, 2)
	require.Contains(t, errs[0], "USDT")
	require.Contains(t, errs[1], "WBTC")
	require.Empty(t, u.Values("Table"))
}

const testNetworkJSON = `{
	"name": "localnet",
	"alternative_names": ["local"],
	"chain_id": 31337,
	"native_token_symbol": "ETH",
	"node_variable_name": "LOCALNET_NODE",
	"default_nodes": {"anvil": "http://127.0.0.1:8545"},
	"router_address": "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
	"wrapped_native_address": "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
}`

func TestRunAddNetwork(t *testing.T) {
	dir := t.TempDir()
	registry := networks.NewRegistry(dir, nil)
	u := ui.NewRecordingUI()

	require.NoError(t, runAddNetwork(u, registry, testNetworkJSON, false))
	n, err := registry.GetNetwork("local")
	require.NoError(t, err)
	require.Equal(t, uint64(31337), n.GetChainID())
	require.FileExists(t, filepath.Join(dir, "localnet.json"))

	err = runAddNetwork(u, registry, testNetworkJSON, false)
	require.Error(t, err)

	require.NoError(t, runAddNetwork(u, registry, filepath.Join(dir, "localnet.json"), true))
	require.NotEmpty(t, u.Values("Warn"))

	require.Error(t, runAddNetwork(u, registry, "", false))
	require.Error(t, runAddNetwork(u, registry, `{"name": "broken"}`, false))
}

func TestRunListNetworks(t *testing.T) {
	t.Setenv("ETHEREUM_MAINNET_NODE", "")
	u := ui.NewRecordingUI()
	runListNetworks(u, networks.NewRegistry("", nil), "https://provider.example")

	sections := u.Values("Section")
	require.Equal(t, "1. mainnet", sections[0])
	require.True(t, u.HasMessage("Router | "+networks.EthereumMainnet.GetRouterAddress()))
	require.True(t, u.HasMessage("provider | https://provider.example"))
	require.True(t, u.HasMessage("Native token | ETH (18 decimals)"))
	require.True(t, u.HasMessage("Block time | 12s"))
}

type fakeNode struct {
	name  string
	block uint64
	err   error
}

func (n *fakeNode) NodeName() string { return n.name }
func (n *fakeNode) NodeURL() string  { return "http://" + n.name }

func (n *fakeNode) ReadContractToBytes(ctx context.Context, from, caddr string, a *abi.ABI, method string, args ...interface{}) ([]byte, error) {
	return nil, errors.New("not supported")
}

func (n *fakeNode) CurrentBlock(ctx context.Context) (uint64, error) {
	return n.block, n.err
}

func TestRunNetworkStatus(t *testing.T) {
	r := reader.NewEthReaderWithNodes(
		&fakeNode{name: "a", block: 100},
		&fakeNode{name: "b", err: errors.New("connection refused")},
	)
	u := ui.NewRecordingUI()
	require.NoError(t, runNetworkStatus(context.Background(), u, networks.BSCMainnet, r))
	require.Equal(t, []string{"Latest block: 100"}, u.Values("Critical"))
	require.Equal(t, []string{
		"a | http://a | 100",
		"b | http://b | connection refused",
	}, u.Values("Table"))
	require.True(t, u.HasMessage("Block time | 3s"))
	require.Empty(t, u.ErrorMessages())

	down := reader.NewEthReaderWithNodes(&fakeNode{name: "b", err: errors.New("connection refused")})
	u = ui.NewRecordingUI()
	err := runNetworkStatus(context.Background(), u, networks.BSCMainnet, down)
	require.Error(t, err)
	require.Len(t, u.ErrorMessages(), 1)
	require.Empty(t, u.Values("Critical"))
}

func executeRoot(t *testing.T, args ...string) error {
	home := t.TempDir()
	t.Setenv("UNIQUOTE_HOME", home)
	t.Setenv("UNIQUOTE_NETWORK", "")
	rootCmd.SetArgs(append(args, "--env-file", filepath.Join(home, "none.env")))
	return rootCmd.Execute()
}

func TestPriceRejectsUnknownTokensBeforeQuerying(t *testing.T) {
	err := executeRoot(t, "price", "-k", "mainnet", "notatoken", "weth")
	require.ErrorIs(t, err, resolver.ErrUnknownShorthand)
}

func TestUnknownNetwork(t *testing.T) {
	err := executeRoot(t, "tokendb", "-k", "ropsten")
	require.ErrorIs(t, err, networks.ErrNetworkNotFound)
}

func TestTokenDBCommand(t *testing.T) {
	require.NoError(t, executeRoot(t, "tokendb", "-k", "bsc"))
	require.Equal(t, "bsc", app.network.GetName())
	require.Equal(t, db.DefaultTable(56).Len(), app.table.Len())
}
