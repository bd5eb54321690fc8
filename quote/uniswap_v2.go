package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/tranvictor/uniquote/common"
	"github.com/tranvictor/uniquote/networks"
	"github.com/tranvictor/uniquote/util/reader"
)

const memoSize = 256

// UniswapV2 quotes through the router of the network's V2 style exchange.
type UniswapV2 struct {
	reader  reader.ContractReader
	network networks.Network
	cache   Cache
	// tokens already seen by this process, keyed by lowercased address
	memo   *lru.Cache[string, Token]
	logger *zap.Logger
}

// NewUniswapV2 returns a Service reading through r. cache and logger may be
// nil.
func NewUniswapV2(r reader.ContractReader, network networks.Network, cache Cache, logger *zap.Logger) *UniswapV2 {
	if logger == nil {
		logger = zap.NewNop()
	}
	// only fails on a non-positive size
	memo, _ := lru.New[string, Token](memoSize)
	return &UniswapV2{
		reader:  r,
		network: network,
		cache:   cache,
		memo:    memo,
		logger:  logger,
	}
}

func (u *UniswapV2) cacheKey(address string) string {
	return fmt.Sprintf("%d_%s_token", u.network.GetChainID(), address)
}

func (u *UniswapV2) cachedToken(address string) (Token, bool) {
	if token, found := u.memo.Get(strings.ToLower(address)); found {
		return token, true
	}
	if u.cache == nil {
		return Token{}, false
	}
	content, found := u.cache.Get(u.cacheKey(address))
	if !found {
		return Token{}, false
	}
	token := Token{}
	if err := json.Unmarshal([]byte(content), &token); err != nil {
		u.logger.Debug("ignore broken cache entry", zap.String("address", address), zap.Error(err))
		return Token{}, false
	}
	u.memo.Add(strings.ToLower(address), token)
	return token, true
}

func (u *UniswapV2) storeToken(token Token) {
	u.memo.Add(strings.ToLower(token.Address), token)
	if u.cache == nil {
		return
	}
	content, err := json.Marshal(token)
	if err != nil {
		return
	}
	if err := u.cache.Set(u.cacheKey(token.Address), string(content)); err != nil {
		u.logger.Warn("failed to cache token", zap.String("address", token.Address), zap.Error(err))
	}
}

func (u *UniswapV2) GetToken(ctx context.Context, address string) (Token, error) {
	if token, found := u.cachedToken(address); found {
		return token, nil
	}

	token, err := u.readToken(ctx, address)
	if err != nil {
		return Token{}, err
	}
	u.storeToken(token)
	return token, nil
}

func (u *UniswapV2) readToken(ctx context.Context, address string) (Token, error) {
	token := Token{Address: address}

	decimals, err := u.readDecimals(ctx, address)
	if err != nil {
		return Token{}, err
	}
	token.Decimals = decimals

	err = common.RunParallel(
		func() (err error) {
			token.Symbol, err = u.readString(ctx, address, "symbol")
			return err
		},
		func() (err error) {
			token.Name, err = u.readString(ctx, address, "name")
			return err
		},
	)
	if err != nil {
		return Token{}, err
	}
	return token, nil
}

func (u *UniswapV2) readDecimals(ctx context.Context, address string) (uint64, error) {
	erc20 := common.GetERC20ABI()
	data, err := u.reader.ReadContractToBytes(ctx, address, erc20, "decimals")
	if err != nil {
		return 0, fmt.Errorf("reading decimals of %s failed: %w", address, err)
	}
	// calls to accounts without code succeed with no data
	if len(data) == 0 {
		return 0, fmt.Errorf("%s: %w", address, ErrNotERC20)
	}
	var decimals uint8
	if err := erc20.UnpackIntoInterface(&decimals, "decimals", data); err != nil {
		return 0, fmt.Errorf("unpacking decimals of %s failed: %w", address, err)
	}
	return uint64(decimals), nil
}

// readString reads method as a string, falling back to bytes32 for legacy
// tokens.
func (u *UniswapV2) readString(ctx context.Context, address string, method string) (string, error) {
	erc20 := common.GetERC20ABI()
	data, err := u.reader.ReadContractToBytes(ctx, address, erc20, method)
	if err != nil {
		return "", fmt.Errorf("reading %s of %s failed: %w", method, address, err)
	}
	if len(data) == 0 {
		return "", nil
	}
	var result string
	if err := erc20.UnpackIntoInterface(&result, method, data); err == nil {
		return result, nil
	}

	var raw [32]byte
	if err := common.GetERC20Bytes32ABI().UnpackIntoInterface(&raw, method, data); err != nil {
		return "", fmt.Errorf("unpacking %s of %s failed: %w", method, address, err)
	}
	return bytes32ToString(raw), nil
}

func bytes32ToString(raw [32]byte) string {
	return string(bytes.TrimRight(raw[:], "\x00"))
}

// GetTokens reads the uncached tokens in one multicall when the network has
// a multicall contract. When the batch fails, or there is no multicall, the
// tokens are read one by one.
func (u *UniswapV2) GetTokens(ctx context.Context, addresses []string) ([]Token, error) {
	result := make([]Token, len(addresses))
	missing := []int{}
	for i, addr := range addresses {
		if token, found := u.cachedToken(addr); found {
			result[i] = token
			continue
		}
		missing = append(missing, i)
	}
	if len(missing) == 0 {
		return result, nil
	}

	if mcContract := u.network.GetMultiCallContract(); mcContract != "" {
		tokens, err := u.multicallTokens(ctx, mcContract, addresses, missing)
		if err == nil {
			for j, i := range missing {
				result[i] = tokens[j]
				u.storeToken(tokens[j])
			}
			return result, nil
		}
		u.logger.Info("batched token read failed, reading tokens one by one", zap.Error(err))
	}

	for _, i := range missing {
		token, err := u.GetToken(ctx, addresses[i])
		if err != nil {
			return nil, err
		}
		result[i] = token
	}
	return result, nil
}

func (u *UniswapV2) multicallTokens(ctx context.Context, mcContract string, addresses []string, indexes []int) ([]Token, error) {
	erc20 := common.GetERC20ABI()
	decimals := make([]uint8, len(indexes))
	tokens := make([]Token, len(indexes))

	mc := reader.NewMultiCall(u.reader, mcContract)
	for j, i := range indexes {
		token := &tokens[j]
		token.Address = addresses[i]
		mc.RegisterWithHook(&decimals[j], func(result interface{}) error {
			token.Decimals = uint64(*result.(*uint8))
			return nil
		}, addresses[i], erc20, "decimals").
			Register(&token.Symbol, addresses[i], erc20, "symbol").
			Register(&token.Name, addresses[i], erc20, "name")
	}

	block, err := mc.Do(ctx)
	if err != nil {
		return nil, err
	}
	u.logger.Info("read tokens in one batch", zap.Int("tokens", len(tokens)), zap.Uint64("block", block))
	return tokens, nil
}

// Route returns the swap path from tokenIn to tokenOut. Pairs not including
// the wrapped native token are routed through it.
func (u *UniswapV2) Route(tokenIn, tokenOut string) []string {
	wrapped := u.network.GetWrappedNativeAddress()
	if common.SameAddress(tokenIn, wrapped) || common.SameAddress(tokenOut, wrapped) {
		return []string{tokenIn, tokenOut}
	}
	return []string{tokenIn, wrapped, tokenOut}
}

func (u *UniswapV2) GetQuote(ctx context.Context, tokenIn, tokenOut string, quantity *big.Int) (*big.Int, error) {
	if common.SameAddress(tokenIn, tokenOut) {
		return nil, ErrSameToken
	}
	if quantity == nil || quantity.Sign() <= 0 {
		return nil, ErrInvalidQuantity
	}

	route := u.Route(tokenIn, tokenOut)
	u.logger.Info("querying router",
		zap.String("exchange", u.network.GetExchangeName()),
		zap.String("router", u.network.GetRouterAddress()),
		zap.String("route", strings.Join(route, " -> ")),
		zap.String("quantity", quantity.String()),
	)

	var amounts []*big.Int
	err := reader.ReadContractWithABI(
		ctx,
		u.reader,
		&amounts,
		u.network.GetRouterAddress(),
		common.GetUniswapV2RouterABI(),
		"getAmountsIn",
		quantity,
		common.HexToAddresses(route),
	)
	if err != nil {
		return nil, fmt.Errorf("getAmountsIn failed: %w", err)
	}
	if len(amounts) != len(route) {
		return nil, errors.New("router returned an unexpected number of amounts")
	}
	return amounts[0], nil
}
