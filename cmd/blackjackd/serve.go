package main

import (
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cardtable/blackjack/cmd/blackjackd/shared"
	"github.com/cardtable/blackjack/internal/game"
	"github.com/cardtable/blackjack/internal/server"
)

// ServeCmd contains the server configuration
type ServeCmd struct {
	Addr   string `kong:"help='Listen address (overrides config file)'"`
	Config string `kong:"default='blackjackd.hcl',help='HCL config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	Seed   *int64 `kong:"help='Deterministic shuffle seed (optional)'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !c.Debug {
		shared.ParseLevel(logger, cfg.Server.LogLevel)
	}

	addr := cfg.ListenAddr()
	if c.Addr != "" {
		addr = c.Addr
	}

	regOpts := []game.RegistryOption{game.WithRegistryRules(cfg.Rules())}
	if c.Seed != nil {
		logger.Info("using deterministic shuffle seed", "seed", *c.Seed)
		regOpts = append(regOpts, game.WithSeed(*c.Seed))
	}
	registry := game.NewRegistry(logger, regOpts...)
	srv := server.NewServer(registry, logger)

	logger.Info("starting blackjack table server",
		"addr", addr,
		"min_players_to_start", cfg.Table.MinPlayersToStart,
		"dealer_hits_soft_17", cfg.Table.DealerHitsSoft17,
	)

	ctx := shared.SetupSignalHandler(logger)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Ops heartbeat: active room count once a minute at debug level.
	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				logger.Debug("registry heartbeat", "rooms", registry.Len())
			case <-ctx.Done():
				return nil
			}
		}
	})

	return g.Wait()
}
