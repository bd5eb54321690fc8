package db

// defaultTokens holds the built-in shorthand tables keyed by chain id.
// Addresses are stored in their EIP-55 checksummed form.
var defaultTokens = map[uint64]map[string]string{
	// ethereum mainnet
	1: {
		"WETH": "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		"DAI":  "0x6B175474E89094C44Da98b954EedeAC495271d0F",
		"USDC": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		"USDT": "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		"WBTC": "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
		"UNI":  "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
		"BAT":  "0x0D8775F648430679A709E98d2b0Cb6250d2887EF",
		"LINK": "0x514910771AF9Ca656af840dff83E8264EcF986CA",
		"MKR":  "0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2",
	},
	// bsc
	56: {
		"WBNB": "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c",
		"BUSD": "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56",
		"USDT": "0x55d398326f99059fF775485246999027B3197955",
		"CAKE": "0x0E09FaBB73Bd3Ade0a17ECC321fD13a19e81cE82",
		"ETH":  "0x2170Ed0880ac9A755fd29B2688956BD959F933F8",
		"BTCB": "0x7130d2A12B9BCbFAe4f2634d864A1Ee1Ce3Ead9c",
	},
	// polygon
	137: {
		"WMATIC": "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270",
		"USDC":   "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
		"USDT":   "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
		"WETH":   "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619",
		"DAI":    "0x8f3Cf7ad23Cd3CaDbD9735AFf958023239c6A063",
	},
}

// DefaultTable returns the built-in table of chainID. Unknown chains get an
// empty table.
func DefaultTable(chainID uint64) *Table {
	entries := []TokenEntry{}
	for symbol, addr := range defaultTokens[chainID] {
		entries = append(entries, TokenEntry{Symbol: symbol, Address: addr})
	}
	table, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return table
}
