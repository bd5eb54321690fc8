package networks

import (
	"time"
)

// Network describes an EVM chain together with the Uniswap V2 style exchange
// deployed on it.
type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64
	GetBlockTime() time.Duration

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// exchange deployment
	GetExchangeName() string
	GetRouterAddress() string
	GetWrappedNativeAddress() string
	// empty when the chain has no multicall contract, reads then fall back
	// to one call per value
	GetMultiCallContract() string

	MarshalJSON() ([]byte, error)
}
