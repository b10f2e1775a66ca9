package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/evaluator"
)

func newRunCmd() *cobra.Command {
	var (
		o        options
		showGrid bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every algorithm on one grid and report the best",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			g, label, err := s.grid(o.random)
			if err != nil {
				return err
			}

			opts := []evaluator.Option{evaluator.WithLogger(s.logger)}
			var reg *prometheus.Registry
			if s.cfg.MetricsAddr != "" {
				reg = prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector())
				opts = append(opts, evaluator.WithMetrics(reg))
			}
			e, err := evaluator.New(opts...)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out, err := e.Evaluate(ctx, g, s.order)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			styled := isTerminal(w)
			fmt.Fprintf(w, "%s, priority %s, batch %s\n", label, s.order, out.BatchID)
			fmt.Fprintln(w, renderResults(out, styled))
			fmt.Fprintln(w, bestLine(out.Best))
			if showGrid {
				fmt.Fprintln(w, renderGrid(g, out.Best, styled))
			}

			if reg == nil {
				return nil
			}
			return serveMetrics(ctx, s.cfg.MetricsAddr, reg, s)
		},
	}
	o.bind(cmd.Flags())
	cmd.Flags().BoolVar(&showGrid, "show-grid", false, "draw the grid with the best path")
	cmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address until interrupted")
	return cmd
}

// serveMetrics exposes reg until ctx is done or SIGINT/SIGTERM arrives.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, s *session) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("serving metrics", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
