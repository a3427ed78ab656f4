// Copyright 2025 OpenBackbone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// bbrd runs a backbone router gateway daemon on a loopback mesh stack.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/openbackbone/backbone/bbr"
	"github.com/openbackbone/backbone/bbr/config"
	"github.com/openbackbone/backbone/pkg/addr"
	"github.com/openbackbone/backbone/pkg/log"
	"github.com/openbackbone/backbone/pkg/serrors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bbrd",
		Short:         "Backbone router gateway daemon",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(
		newRunCmd(),
		newSampleCmd(),
	)
	return cmd
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print a sample configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.Sample())
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the gateway daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := log.Setup(cfg.Logging); err != nil {
				return serrors.Wrap("setting up logging", err)
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "bbrd.toml", "Configuration file")
	return cmd
}

func run(cfg *config.Config) error {
	logger := log.Root()
	meshLocal, err := netip.ParsePrefix(cfg.Gateway.MeshLocalPrefix)
	if err != nil {
		return serrors.Wrap("parsing mesh-local prefix", err)
	}

	// Until a real mesh stack is attached, the daemon runs against an
	// in-process loopback stack.
	lo := bbr.NewLoopback(logger, addr.ShortAddr(cfg.Gateway.ShortAddr), meshLocal)
	g := &bbr.Gateway{
		Mesh:        lo,
		Leader:      lo,
		NetworkData: lo,
		Multicast:   lo,
		Addresses:   lo,
		Notifier:    lo,
		Config:      cfg.Gateway,
		Logger:      logger,
		Metrics:     bbr.NewControllerMetrics(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil {
		return serrors.Wrap("starting gateway", err)
	}
	logger.Info("Gateway started", "role", g.State())

	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Metrics.Prometheus != "" {
		server := &http.Server{
			Addr:    cfg.Metrics.Prometheus,
			Handler: observabilityHandler(g),
		}
		eg.Go(func() error {
			defer log.HandlePanic()
			logger.Info("Observability endpoint listening", "addr", server.Addr)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return serrors.Wrap("serving observability endpoint", err)
			}
			return nil
		})
		eg.Go(func() error {
			defer log.HandlePanic()
			<-egCtx.Done()
			return server.Shutdown(context.Background())
		})
	}
	// The loopback stack has no leader replication of its own: echo its
	// recorded state back into the controller once per tick interval.
	eg.Go(func() error {
		defer log.HandlePanic()
		ticker := time.NewTicker(cfg.Gateway.TickInterval.Duration)
		defer ticker.Stop()
		for {
			select {
			case <-egCtx.Done():
				return nil
			case <-ticker.C:
				g.HandleLeaderRoleUpdate(lo.CurrentLeaderUpdate())
			}
		}
	})

	err = eg.Wait()
	if closeErr := g.Close(context.Background()); closeErr != nil && err == nil {
		err = closeErr
	}
	logger.Info("Gateway stopped", "err", err)
	return err
}

// observabilityHandler serves prometheus metrics and the status page.
func observabilityHandler(g *bbr.Gateway) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		g.Status(w)
	})
	return mux
}
