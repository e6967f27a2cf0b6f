package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	brandtokens "github.com/kataras/brand-tokens"
	"github.com/kataras/brand-tokens/internal/server"
	"github.com/kataras/brand-tokens/pkg/document"
	"github.com/kataras/brand-tokens/pkg/tool"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the brand tools over stdio (JSON-RPC) and/or HTTP",
		Long: "Serve the brand tools over line-delimited JSON-RPC on stdin/stdout, over HTTP, or both. " +
			"Stdio is on by default unless --http is given.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().BoolVar(&stdioMode, "stdio", true, "Serve line-delimited JSON-RPC on stdin/stdout (default off with --http)")
	cmd.Flags().BoolVar(&httpMode, "http", false, "Serve the HTTP API")
	cmd.Flags().StringVar(&httpAddr, "addr", ":8080", "HTTP listen address")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	stdio, http := serveModes(cmd.Flags().Changed("stdio"), stdioMode, httpMode)
	if !stdio && !http {
		return fmt.Errorf("%w: enable --stdio and/or --http", tool.ErrInvalidParams)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := tool.NewHandler(document.NewFileDecoder(),
		tool.WithLogger(logger),
		tool.WithObserver(server.NewMetrics(reg)),
	)

	var serveStdio, serveHTTP func(context.Context) error

	if stdio {
		info := tool.ServerInfo{Name: "brand-tokens", Version: brandtokens.Version}
		serveStdio = func(ctx context.Context) error {
			logger.Infof("Serving tools on stdio")
			return tool.ServeStdio(ctx, h, info, os.Stdin, os.Stdout)
		}
	}

	if http {
		srv := server.New(h,
			server.WithLogger(logger),
			server.WithGatherer(reg),
			server.WithDebug(cfg.Log.Level == "debug"),
		)
		serveHTTP = func(ctx context.Context) error {
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		}
	}

	return runTransports(cmd.Context(), serveStdio, serveHTTP)
}

// serveModes resolves which transports run. Unless set explicitly, stdio is
// enabled only when HTTP is not.
func serveModes(stdioSet, stdio, http bool) (bool, bool) {
	if !stdioSet {
		stdio = !http
	}
	return stdio, http
}

// runTransports runs the non-nil transports until ctx is done. The end of
// stdin ends the session only when stdio is the sole transport; next to HTTP
// it ends just the stdio side.
func runTransports(ctx context.Context, stdio, http func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if stdio != nil {
		// The stdin reader cannot be interrupted; on shutdown it is abandoned.
		stdioDone := make(chan error, 1)
		go func() { stdioDone <- stdio(gctx) }()

		g.Go(func() error {
			select {
			case err := <-stdioDone:
				if http == nil {
					cancel()
				} else if err == nil {
					logger.Infof("stdin closed; HTTP keeps serving")
				}
				return err
			case <-gctx.Done():
				return nil
			}
		})
	}

	if http != nil {
		g.Go(func() error { return http(gctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
