package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hashvatar/internal/server"
	"github.com/matzehuels/hashvatar/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	cacheSize int    // max cached responses, 0 disables caching
}

// newServeCmd creates the serve command, which runs the avatar HTTP
// server until interrupted.
func newServeCmd() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve avatars over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&opts.cacheSize, "cache", 512, "max cached responses (0 disables caching)")

	return cmd
}

func runServe(cmd *cobra.Command, opts serveOpts) error {
	logger := loggerFromContext(cmd.Context())

	var c cache.Cache = cache.NewNull()
	if opts.cacheSize > 0 {
		c = cache.NewMemory(opts.cacheSize)
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.New(logger, c).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-cmd.Context().Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
