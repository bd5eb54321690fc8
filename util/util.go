package util

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/tranvictor/uniquote/common"
	"github.com/tranvictor/uniquote/networks"
	"github.com/tranvictor/uniquote/util/reader"
)

const (
	CUSTOM_NODE_NAME   string = "custom-node"
	PROVIDER_NODE_NAME string = "provider"
)

// GetNodes returns the node set of network: its default nodes, the node in
// the network's node variable and provider when it is not empty.
func GetNodes(network networks.Network, provider string) map[string]string {
	nodes := map[string]string{}
	for name, url := range network.GetDefaultNodes() {
		nodes[name] = url
	}
	if network.GetNodeVariableName() != "" {
		customNode := strings.TrimSpace(os.Getenv(network.GetNodeVariableName()))
		if customNode != "" {
			nodes[CUSTOM_NODE_NAME] = customNode
		}
	}
	if provider = strings.TrimSpace(provider); provider != "" {
		nodes[PROVIDER_NODE_NAME] = provider
	}
	return nodes
}

func EthReader(network networks.Network, provider string) (*reader.EthReader, error) {
	nodes := GetNodes(network, provider)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no node configured for %s, set %s or PROVIDER", network.GetName(), network.GetNodeVariableName())
	}
	return reader.NewEthReaderGeneric(nodes), nil
}

// ParamToBigInt parses a non negative integer written in decimal or in hex
// with the 0x prefix.
func ParamToBigInt(param string) (*big.Int, error) {
	param = strings.TrimSpace(param)
	if len(param) > 2 && param[0:2] == "0x" {
		result, ok := new(big.Int).SetString(param[2:], 16)
		if !ok {
			return nil, fmt.Errorf("%q is not a valid hex number", param)
		}
		return result, nil
	}
	return common.StringToBigInt(param)
}
