// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-04-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"staticd/internal/config"
	"staticd/internal/server"
	"staticd/internal/tooling"
	"staticd/internal/watch"
)

func newServeCmd() *cobra.Command {
	var (
		cfgFile string
		bind    string
		port    int
		root    string
		entry   string
		logFile string
		reqRate float64
		burst   int
		dev     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the root directory over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, cfgFile, config.Config{
				Bind:    bind,
				Port:    port,
				Root:    root,
				Entry:   entry,
				LogFile: logFile,
				Rate:    reqRate,
				Burst:   burst,
				Dev:     dev,
			})
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	def := config.Default()
	cmd.Flags().StringVar(&cfgFile, "config", "", "JSON config file")
	cmd.Flags().StringVar(&bind, "bind", def.Bind, "bind address")
	cmd.Flags().IntVar(&port, "port", def.Port, "listen port")
	cmd.Flags().StringVar(&root, "root", def.Root, "directory to serve")
	cmd.Flags().StringVar(&entry, "entry", def.Entry, "file served for /")
	cmd.Flags().StringVar(&logFile, "log-file", def.LogFile, "access log file")
	cmd.Flags().Float64Var(&reqRate, "rate", def.Rate, "requests per second, 0 disables limiting")
	cmd.Flags().IntVar(&burst, "burst", def.Burst, "rate limiter burst size")
	cmd.Flags().BoolVar(&dev, "dev", def.Dev, "enable developer mode")
	return cmd
}

// resolveConfig layers flag values over the config file over the
// defaults. Only flags the user actually set override the file.
func resolveConfig(cmd *cobra.Command, cfgFile string, flags config.Config) (config.Config, error) {
	if cfgFile == "" {
		return flags, nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}
	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("bind") {
		cfg.Bind = flags.Bind
	}
	if set("port") {
		cfg.Port = flags.Port
	}
	if set("root") {
		cfg.Root = flags.Root
	}
	if set("entry") {
		cfg.Entry = flags.Entry
	}
	if set("log-file") {
		cfg.LogFile = flags.LogFile
	}
	if set("rate") {
		cfg.Rate = flags.Rate
	}
	if set("burst") {
		cfg.Burst = flags.Burst
	}
	if set("dev") {
		cfg.Dev = flags.Dev
	}
	return cfg, nil
}

func runServe(ctx context.Context, cfg config.Config) error {
	if cfg.Dev {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	srv, err := server.New(server.Config{
		Bind:    cfg.Bind,
		Port:    cfg.Port,
		Root:    cfg.Root,
		Entry:   cfg.Entry,
		LogFile: cfg.LogFile,
		Rate:    rate.Limit(cfg.Rate),
		Burst:   cfg.Burst,
		Dev:     cfg.Dev,
		Logger:  log.Default(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := newSignalContext(ctx)
	defer cancel()

	if cfg.Dev {
		w, err := watch.New(cfg.Root, log.Default())
		if err != nil {
			log.Printf("warning: dev watcher unavailable: %v", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	if err := srv.Start(ctx); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func init() {
	tooling.AddCommand(newServeCmd())
}
