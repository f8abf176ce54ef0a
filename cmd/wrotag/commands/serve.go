package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/wrotag/internal/adapters/server"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the groups as a read-only JSON API",
		Args:    cobra.NoArgs,
		PreRunE: c.configure,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			cache, err := c.app.GroupCache()
			if err != nil {
				return err
			}
			// A failed load is reported here and answered with 503 by the API.
			if err := cache.Init(cmd.Context()); err != nil {
				c.logger.Error(err)
			}

			srv := server.New(cache, c.logger)
			c.logger.Info("listening on " + addr)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return srv.Start(addr)
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().String("addr", server.DefaultAddr, "Listen address")
	return cmd
}
