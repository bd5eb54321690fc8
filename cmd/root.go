// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tranvictor/uniquote/config"
	"github.com/tranvictor/uniquote/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uniquote",
	Short: "Quote token prices on Uniswap V2 style exchanges",
	Long: `Uniquote resolves token shorthands like WETH or DAI to their contract
addresses and asks the exchange router of the selected network how much of
one token it takes to buy another.

Tokens can be given as a shorthand from the network's token table (see
"uniquote tokendb") or as a hex address. Addresses are accepted in any case
and are turned into their checksummed form.

By default uniquote supports ethereum mainnet, bsc and polygon with public
nodes. You can add your own node per network with its env var (see
"uniquote network list") or for any network with PROVIDER. Both can also be
put in a .env file in the working directory.

Extra tokens can be listed per network in ~/.uniquote/tokens/<network>.json
as a json object of symbol to address.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		app, err = newAppContext(cmd)
		return err
	},
}

func init() {
	config.AddFlags(rootCmd.PersistentFlags())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		stderr := term.IsTerminal(int(os.Stderr.Fd()))
		ui.NewTerminalUIWithWriters(os.Stderr, os.Stderr, stderr, stderr).Error("Error: %s", err)
		os.Exit(1)
	}
}
