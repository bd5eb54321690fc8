package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tranvictor/uniquote/config"
	"github.com/tranvictor/uniquote/db"
	uqlog "github.com/tranvictor/uniquote/log"
	"github.com/tranvictor/uniquote/networks"
	"github.com/tranvictor/uniquote/quote"
	"github.com/tranvictor/uniquote/resolver"
	"github.com/tranvictor/uniquote/ui"
	"github.com/tranvictor/uniquote/util"
	"github.com/tranvictor/uniquote/util/cache"
)

// appContext holds everything a command needs for one run. Chain access is
// set up lazily so commands that never query a node never dial one.
type appContext struct {
	config   config.Config
	logger   *zap.Logger
	ui       ui.UI
	registry *networks.Registry
	network  networks.Network
	table    *db.Table
	resolver *resolver.Resolver

	once    sync.Once
	service quote.Service
	err     error
}

var app *appContext

func newAppContext(cmd *cobra.Command) (*appContext, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := uqlog.NewLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	registry := networks.NewRegistry(cfg.NetworksDir(), logger)
	network, err := registry.GetNetwork(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("%w. Supported networks: %v", err, registry.GetSupportedNetworkNames())
	}

	table := db.LoadTable(network.GetChainID(), cfg.TokensFile(network.GetName()), logger)
	logger.Info("loaded token table",
		zap.String("network", network.GetName()),
		zap.Int("tokens", table.Len()),
	)

	return &appContext{
		config:   cfg,
		logger:   logger,
		ui:       ui.NewTerminalUI(),
		registry: registry,
		network:  network,
		table:    table,
		resolver: resolver.New(table, logger),
	}, nil
}

// quoteService connects to the nodes of the selected network on first use.
func (a *appContext) quoteService() (quote.Service, error) {
	a.once.Do(func() {
		r, err := util.EthReader(a.network, a.config.Provider)
		if err != nil {
			a.err = err
			return
		}
		a.service = quote.NewUniswapV2(r, a.network, cache.New(a.config.CachePath()), a.logger)
	})
	return a.service, a.err
}
