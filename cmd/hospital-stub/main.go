// Command hospital-stub serves an in-memory hospital API for local runs of
// the desktop client.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/carepoint/hospital-desk/internal/config"
	"github.com/carepoint/hospital-desk/internal/stubapi"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr    string
		secret  string
		seed    bool
		envFile string
	)

	cmd := &cobra.Command{
		Use:          "hospital-stub",
		Short:        "Serve an in-memory hospital API",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(envFile); err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = env("STUB_ADDR", addr)
			}
			if !cmd.Flags().Changed("secret") {
				secret = env("STUB_JWT_SECRET", secret)
			}
			if secret == "" {
				return errors.New("a token secret is required (--secret or STUB_JWT_SECRET)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(addr, secret, seed)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8001", "listen address")
	cmd.Flags().StringVar(&secret, "secret", "", "HMAC secret for access tokens")
	cmd.Flags().BoolVar(&seed, "seed", true, "load the sample admin and doctors at start-up")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "file with KEY=VALUE defaults")
	return cmd
}

func serve(addr, secret string, seed bool) error {
	srv, err := stubapi.New(stubapi.Config{
		Secret:  secret,
		Seed:    seed,
		Limiter: stubapi.NewRateLimiter(5, 10),
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("hospital stub on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-ch:
	}
	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
