package networks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type GenericNetworkConfig struct {
	Name                     string            `json:"name"`
	AlternativeNames         []string          `json:"alternative_names"`
	ChainID                  uint64            `json:"chain_id"`
	NativeTokenSymbol        string            `json:"native_token_symbol"`
	NativeTokenDecimal       uint64            `json:"native_token_decimal"`
	BlockTime                uint64            `json:"block_time"`
	NodeVariableName         string            `json:"node_variable_name"`
	DefaultNodes             map[string]string `json:"default_nodes"`
	ExchangeName             string            `json:"exchange_name"`
	RouterAddress            common.Address    `json:"router_address"`
	WrappedNativeAddress     common.Address    `json:"wrapped_native_address"`
	MultiCallContractAddress *common.Address   `json:"multi_call_contract_address,omitempty"`
}

func (c GenericNetworkConfig) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.ChainID == 0 {
		return fmt.Errorf("chain_id is required")
	}
	if c.RouterAddress == (common.Address{}) {
		return fmt.Errorf("router_address is required")
	}
	if c.WrappedNativeAddress == (common.Address{}) {
		return fmt.Errorf("wrapped_native_address is required")
	}
	return nil
}

// GenericNetwork is a Network fully described by its config, it is used for
// the built-in networks as well as the custom ones loaded from json files.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	if config.AlternativeNames == nil {
		config.AlternativeNames = []string{}
	}
	if config.DefaultNodes == nil {
		config.DefaultNodes = map[string]string{}
	}
	if config.NativeTokenDecimal == 0 {
		config.NativeTokenDecimal = 18
	}
	if config.ExchangeName == "" {
		config.ExchangeName = "uniswap-v2"
	}
	return &GenericNetwork{config: config}
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if err := networkConfig.validate(); err != nil {
		return nil, fmt.Errorf("invalid network config: %w", err)
	}
	return NewGenericNetwork(networkConfig), nil
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetNativeTokenDecimal() uint64 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericNetwork) GetBlockTime() time.Duration {
	return time.Duration(gn.config.BlockTime) * time.Second
}

func (gn *GenericNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericNetwork) GetExchangeName() string {
	return gn.config.ExchangeName
}

func (gn *GenericNetwork) GetRouterAddress() string {
	return gn.config.RouterAddress.Hex()
}

func (gn *GenericNetwork) GetWrappedNativeAddress() string {
	return gn.config.WrappedNativeAddress.Hex()
}

func (gn *GenericNetwork) GetMultiCallContract() string {
	if gn.config.MultiCallContractAddress == nil {
		return ""
	}
	return gn.config.MultiCallContractAddress.Hex()
}

func (gn *GenericNetwork) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(gn.config, "", "  ")
}

func addressPtr(hex string) *common.Address {
	addr := common.HexToAddress(hex)
	return &addr
}
