package networks

import (
	"github.com/ethereum/go-ethereum/common"
)

var EthereumMainnet Network = NewEthereumMainnet()

func NewEthereumMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "mainnet",
		AlternativeNames:   []string{"ethereum", "eth"},
		ChainID:            1,
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		BlockTime:          12,
		NodeVariableName:   "ETHEREUM_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"mainnet-llamarpc":   "https://eth.llamarpc.com",
			"mainnet-publicnode": "https://ethereum-rpc.publicnode.com",
		},
		ExchangeName:             "uniswap-v2",
		RouterAddress:            common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"),
		WrappedNativeAddress:     common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
		MultiCallContractAddress: addressPtr(multicall3Address),
	})
}
