package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/hooks/internal/demo"
	"github.com/vango-dev/hooks/pkg/layout"
	"github.com/vango-dev/hooks/pkg/metrics"
)

func demoCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a demo component",
	}

	cmd.PersistentFlags().String("theme", "light", "Value provided through the Theme context")

	cmd.AddCommand(
		demoCounterCmd(g),
		demoClockCmd(g),
	)
	return cmd
}

func demoCounterCmd(g *globalFlags) *cobra.Command {
	var clicks int

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Click a counter and print its effect log",
		Long: `Mount a counter whose effect depends on the count, click it
--clicks times and unmount it. Every click stops the previous effect
run before the next one starts, so the log alternates between
"mounted N" and "cleaned N".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, _ := cmd.Flags().GetString("theme")
			ctx := cmd.Context()

			log := &demo.Log{}
			counter := demo.NewCounter(log)

			l := layout.New(demo.App(theme, counter.Component()),
				layout.WithLogger(g.logger),
				layout.WithDebug(g.cfg.Debug),
			)
			if err := l.Start(ctx); err != nil {
				return err
			}

			for i := 0; i < clicks; i++ {
				counter.Click()
				if _, err := l.Render(ctx); err != nil {
					l.Close(context.WithoutCancel(ctx))
					return err
				}
				info(cmd, "%s", l.Text())
			}
			l.Close(context.WithoutCancel(ctx))

			for _, line := range log.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			success(cmd, "counter unmounted after %d clicks", clicks)
			return nil
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 2, "Number of clicks")

	return cmd
}

func demoClockCmd(g *globalFlags) *cobra.Command {
	var (
		ticks       int
		interval    time.Duration
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Run a ticking clock on the layout loop",
		Long: `Mount a clock whose async effect ticks its state, and run the
layout loop until --ticks ticks were rendered or the process is
interrupted. With --metrics-addr the Prometheus metrics of the run
are served on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, _ := cmd.Flags().GetString("theme")
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
			}
			if metricsAddr == "" {
				metricsAddr = g.cfg.Metrics.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			reg := prometheus.NewRegistry()
			collector := metrics.New(
				metrics.WithRegistry(reg),
				metrics.WithNamespace(g.cfg.Metrics.Namespace),
			)

			if metricsAddr != "" {
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           metricsRouter(reg),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
						g.logger.Error("metrics server failed", "addr", metricsAddr, "error", err)
						cancel()
					}
				}()
				defer func() {
					shutdownCtx, done := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
					defer done()
					_ = srv.Shutdown(shutdownCtx)
				}()
				info(cmd, "metrics on http://%s/metrics", metricsAddr)
			}

			clock := &demo.Clock{
				Interval: interval,
				OnTick: func(n int) {
					info(cmd, "tick %d", n)
					if ticks > 0 && n >= ticks {
						cancel()
					}
				},
			}

			l := layout.New(demo.App(theme, clock.Component()),
				layout.WithLogger(g.logger),
				layout.WithObserver(collector),
				layout.WithDebug(g.cfg.Debug),
			)
			if err := l.Run(ctx); err != nil {
				return err
			}
			success(cmd, "clock stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 5, "Stop after this many ticks; 0 runs until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Tick interval")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	return cmd
}

func metricsRouter(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}).ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}
