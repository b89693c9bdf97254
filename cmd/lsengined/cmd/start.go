package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/productscience/liquidstaking/apiconfig"
	"github.com/productscience/liquidstaking/internal/journal"
	"github.com/productscience/liquidstaking/internal/metrics"
	natsclient "github.com/productscience/liquidstaking/internal/nats/client"
	natsserver "github.com/productscience/liquidstaking/internal/nats/server"
	"github.com/productscience/liquidstaking/internal/relay"
	adminserver "github.com/productscience/liquidstaking/internal/server/admin"
	pserver "github.com/productscience/liquidstaking/internal/server/public"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const shutdownTimeout = 10 * time.Second

func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the engine with its relay and HTTP APIs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return start(ctx, config)
		},
	}
}

func start(ctx context.Context, config apiconfig.Config) error {
	e, err := openEngine(config)
	if err != nil {
		return err
	}
	defer e.Close()

	if !e.Initialized() {
		genesis, err := loadGenesis(config.GenesisFile)
		if err != nil {
			return err
		}
		if err := e.InitGenesis(genesis); err != nil {
			return errors.Wrap(err, "failed to init genesis")
		}
	}

	m := metrics.New()
	m.Track(e)

	j, err := journal.Open(ctx, config.JournalPath())
	if err != nil {
		return err
	}
	defer j.Close()

	natsURL := natsclient.URL(config.Nats)
	if config.Nats.Embedded {
		ns := natsserver.NewServer(config.Nats, config.NatsStoreDir())
		if err := ns.Start(); err != nil {
			return errors.Wrap(err, "failed to start nats")
		}
		defer ns.Shutdown()
		natsURL = ns.ClientURL()
	}
	nc, err := natsclient.ConnectToNats(natsURL, "lsengined")
	if err != nil {
		return err
	}
	defer nc.Close()
	js, err := nc.JetStream()
	if err != nil {
		return errors.Wrap(err, "failed to open jetstream")
	}
	if err := relay.EnsureStream(js, config.Relay); err != nil {
		return err
	}

	r := relay.New(e, js, config.Relay, j, m)
	relayDone := make(chan error, 1)
	go func() { relayDone <- r.Run(ctx) }()

	publicServer := pserver.NewServer(e)
	publicServer.Start(fmt.Sprintf(":%d", config.Api.PublicPort))
	adminServer := adminserver.NewServer(e, j, m)
	adminServer.Start(fmt.Sprintf(":%d", config.Api.AdminPort))

	logging.Info("engine started", types.System,
		"version", e.Version(),
		"public_port", config.Api.PublicPort,
		"admin_port", config.Api.AdminPort,
		"nats", natsURL)

	select {
	case <-ctx.Done():
	case err = <-relayDone:
		logging.Error("relay stopped", types.Messages, "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := publicServer.Shutdown(shutdownCtx); serr != nil {
		logging.Warn("public server shutdown", types.Server, "error", serr)
	}
	if serr := adminServer.Shutdown(shutdownCtx); serr != nil {
		logging.Warn("admin server shutdown", types.Server, "error", serr)
	}
	logging.Info("engine stopped", types.System, "version", e.Version())
	return err
}
