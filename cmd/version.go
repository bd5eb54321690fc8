package cmd

import (
	"github.com/spf13/cobra"
)

const (
	VERSION string = "0.1.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show uniquote version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		app.ui.Info("Version: %s", VERSION)
		app.ui.Info("Network: %s (chain id %d), %s router at %s",
			app.network.GetName(),
			app.network.GetChainID(),
			app.network.GetExchangeName(),
			app.network.GetRouterAddress(),
		)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
