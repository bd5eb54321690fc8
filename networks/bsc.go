package networks

import (
	"github.com/ethereum/go-ethereum/common"
)

var BSCMainnet Network = NewBSCMainnet()

func NewBSCMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               "bsc",
		AlternativeNames:   []string{"bnb"},
		ChainID:            56,
		NativeTokenSymbol:  "BNB",
		NativeTokenDecimal: 18,
		BlockTime:          3,
		NodeVariableName:   "BSC_MAINNET_NODE",
		DefaultNodes: map[string]string{
			"binance": "https://bsc-dataseed.binance.org",
			"defibit": "https://bsc-dataseed1.defibit.io",
		},
		ExchangeName:             "pancakeswap-v2",
		RouterAddress:            common.HexToAddress("0x10ED43C718714eb63d5aA57B78B54704E256024E"),
		WrappedNativeAddress:     common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"),
		MultiCallContractAddress: addressPtr(multicall3Address),
	})
}
