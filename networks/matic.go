package networks

import (
	"github.com/ethereum/go-ethereum/common"
)

var Matic Network = NewMatic()

func NewMatic() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "matic",
		AlternativeNames:   []string{"polygon"},
		ChainID:            137,
		NativeTokenSymbol:  "MATIC",
		NativeTokenDecimal: 18,
		BlockTime:          2,
		NodeVariableName:   "MATIC_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"matic-official":   "https://polygon-rpc.com",
			"matic-publicnode": "https://polygon-bor-rpc.publicnode.com",
		},
		ExchangeName:             "quickswap",
		RouterAddress:            common.HexToAddress("0xa5E0829CaCEd8fFDD4De3c43696c57F7D7A678ff"),
		WrappedNativeAddress:     common.HexToAddress("0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270"),
		MultiCallContractAddress: addressPtr(multicall3Address),
	})
}
