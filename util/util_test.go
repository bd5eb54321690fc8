package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tranvictor/uniquote/networks"
)

func TestGetNodes(t *testing.T) {
	t.Setenv(networks.EthereumMainnet.GetNodeVariableName(), " https://my-node.example ")

	nodes := GetNodes(networks.EthereumMainnet, "https://provider.example")
	for name, url := range networks.EthereumMainnet.GetDefaultNodes() {
		require.Equal(t, url, nodes[name])
	}
	require.Equal(t, "https://my-node.example", nodes[CUSTOM_NODE_NAME])
	require.Equal(t, "https://provider.example", nodes[PROVIDER_NODE_NAME])

	// defaults of the network are not modified
	_, found := networks.EthereumMainnet.GetDefaultNodes()[CUSTOM_NODE_NAME]
	require.False(t, found)
}

func TestGetNodesWithoutOverrides(t *testing.T) {
	t.Setenv(networks.BSCMainnet.GetNodeVariableName(), "")
	nodes := GetNodes(networks.BSCMainnet, "")
	require.Equal(t, networks.BSCMainnet.GetDefaultNodes(), nodes)
}

func TestEthReader(t *testing.T) {
	t.Setenv(networks.Matic.GetNodeVariableName(), "")
	r, err := EthReader(networks.Matic, "http://localhost:8545")
	require.NoError(t, err)
	require.Len(t, r.Nodes(), len(networks.Matic.GetDefaultNodes())+1)
}

func TestParamToBigInt(t *testing.T) {
	testcases := []struct {
		param    string
		expected *big.Int
	}{
		{"1000000", big.NewInt(1000000)},
		{" 42 ", big.NewInt(42)},
		{"0xff", big.NewInt(255)},
	}
	for _, tt := range testcases {
		got, err := ParamToBigInt(tt.param)
		require.NoError(t, err, tt.param)
		require.Equal(t, 0, tt.expected.Cmp(got), tt.param)
	}

	for _, bad := range []string{"", "1.5", "0xzz", "ten"} {
		_, err := ParamToBigInt(bad)
		require.Error(t, err, bad)
	}
}
