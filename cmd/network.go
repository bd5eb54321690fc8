package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/uniquote/common"
	"github.com/tranvictor/uniquote/networks"
	"github.com/tranvictor/uniquote/ui"
	"github.com/tranvictor/uniquote/util"
	"github.com/tranvictor/uniquote/util/reader"
)

var (
	NetworkConfig string
	NetworkForce  bool
)

// readNetworkConfig accepts either a json document or a path to one.
func readNetworkConfig(config string) (networks.Network, error) {
	config = strings.TrimSpace(config)
	if config == "" {
		return nil, fmt.Errorf("--config is required")
	}
	if strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}") {
		newNetwork, err := networks.NewNetworkFromJSON([]byte(config))
		if err != nil {
			return nil, fmt.Errorf("the provided json is not valid: %w", err)
		}
		return newNetwork, nil
	}

	jsonBytes, err := os.ReadFile(config)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the provided json file: %w", err)
	}
	newNetwork, err := networks.NewNetworkFromJSON(jsonBytes)
	if err != nil {
		return nil, fmt.Errorf("the provided json is not a valid network config: %w", err)
	}
	return newNetwork, nil
}

func runAddNetwork(u ui.UI, registry *networks.Registry, config string, force bool) error {
	newNetwork, err := readNetworkConfig(config)
	if err != nil {
		return err
	}

	allNames := append([]string{newNetwork.GetName()}, newNetwork.GetAlternativeNames()...)
	for _, name := range allNames {
		if _, err := registry.GetNetwork(name); err == nil {
			if !force {
				return fmt.Errorf("network with name %s already exists, use --force to replace it", name)
			}
			u.Warn("Network with name %s already exists. It will be replaced.", name)
		}
	}
	if existing, err := registry.GetNetworkByID(newNetwork.GetChainID()); err == nil {
		if !force {
			return fmt.Errorf("network %s already has chain id %d, use --force to replace it", existing.GetName(), newNetwork.GetChainID())
		}
		u.Warn("Network %s with chain id %d will be replaced.", existing.GetName(), newNetwork.GetChainID())
	}

	if err := registry.AddNetwork(newNetwork); err != nil {
		return fmt.Errorf("failed to add the new network: %w", err)
	}
	u.Success("Network %s with chain id %d added.", newNetwork.GetName(), newNetwork.GetChainID())
	return nil
}

func blockTimeString(n networks.Network) string {
	if n.GetBlockTime() == 0 {
		return "-"
	}
	return n.GetBlockTime().String()
}

func nativeTokenString(n networks.Network) string {
	return fmt.Sprintf("%s (%d decimals)", n.GetNativeTokenSymbol(), n.GetNativeTokenDecimal())
}

func runListNetworks(u ui.UI, registry *networks.Registry, provider string) {
	for i, n := range registry.GetSupportedNetworks() {
		u.Section(fmt.Sprintf("%d. %s", i+1, n.GetName()))
		aliases := strings.Join(n.GetAlternativeNames(), ", ")
		if aliases == "" {
			aliases = "-"
		}
		multicall := n.GetMultiCallContract()
		if multicall == "" {
			multicall = "-"
		}
		u.KeyValue([][2]string{
			{"Chain ID", fmt.Sprintf("%d", n.GetChainID())},
			{"Aliases", aliases},
			{"Native token", nativeTokenString(n)},
			{"Block time", blockTimeString(n)},
			{"Exchange", n.GetExchangeName()},
			{"Router", n.GetRouterAddress()},
			{"Wrapped native", n.GetWrappedNativeAddress()},
			{"Multicall", multicall},
			{"Node env var", n.GetNodeVariableName()},
		})

		nodes := util.GetNodes(n, provider)
		names := make([]string, 0, len(nodes))
		for name := range nodes {
			names = append(names, name)
		}
		sort.Strings(names)
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, nodes[name]})
		}
		u.Indent().Table([]string{"Node", "URL"}, rows)
	}
}

// blockReader is what network status needs from reader.EthReader.
type blockReader interface {
	Nodes() []reader.EthereumNode
	CurrentBlock(ctx context.Context) (uint64, error)
}

// runNetworkStatus prints the latest block seen by any node, then the block
// of every node on its own. It fails only when no node answers.
func runNetworkStatus(ctx context.Context, u ui.UI, n networks.Network, r blockReader) error {
	u.Section(n.GetName())
	u.KeyValue([][2]string{
		{"Chain ID", fmt.Sprintf("%d", n.GetChainID())},
		{"Native token", nativeTokenString(n)},
		{"Block time", blockTimeString(n)},
	})

	stop := u.Spinner("Reading the latest block...")
	latest, err := r.CurrentBlock(ctx)

	nodes := r.Nodes()
	rows := make([][]string, len(nodes))
	calls := make([]func() error, len(nodes))
	for i, node := range nodes {
		calls[i] = func() error {
			var cell string
			block, nodeErr := node.CurrentBlock(ctx)
			if nodeErr != nil {
				cell = u.Style(ui.StyledText{Text: nodeErr.Error(), Severity: ui.SeverityError})
			} else {
				cell = u.Style(ui.StyledText{Text: fmt.Sprintf("%d", block), Severity: ui.SeveritySuccess})
			}
			rows[i] = []string{node.NodeName(), node.NodeURL(), cell}
			return nil
		}
	}
	// per node failures are shown in the table
	_ = common.RunParallel(calls...)
	stop()

	u.Indent().Table([]string{"Node", "URL", "Block"}, rows)
	if err != nil {
		u.Error("None of the %d nodes of %s answered.", len(nodes), n.GetName())
		return err
	}
	u.Critical("Latest block: %d", latest)
	return nil
}

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config takes a network config json file path OR a json string. The json
should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1"],
		"chain_id": 1,
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"block_time": 12,
		"node_variable_name": "NETWORK_NAME_NODE",
		"default_nodes": {
			"node_name_1": "node_url_1"
		},
		"exchange_name": "uniswap-v2",
		"router_address": "0x...",
		"wrapped_native_address": "0x...",
		"multi_call_contract_address": "0xcA11bde05977b3631167028862bE2a173976CA11"
	}
The network is stored in ~/.uniquote/networks/<name>.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddNetwork(app.ui, app.registry, NetworkConfig, NetworkForce)
	},
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runListNetworks(app.ui, app.registry, app.config.Provider)
	},
}

var statusNetworkCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest block of the selected network on each of its nodes",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := util.EthReader(app.network, app.config.Provider)
		if err != nil {
			return err
		}
		return runNetworkStatus(cmd.Context(), app.ui, app.network, r)
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage all networks that uniquote supports",
	Long:  ``,
}

func init() {
	addNetworkCmd.Flags().StringVarP(&NetworkConfig, "config", "c", "", "Path to the network config json file or the json itself")
	addNetworkCmd.Flags().BoolVarP(&NetworkForce, "force", "f", false, "Replace existing networks with the same name or chain id")

	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(addNetworkCmd)
	networkCmd.AddCommand(statusNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
