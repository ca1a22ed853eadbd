package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mental-health-mirror/mood-core/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, log, err := setup()
			if err != nil {
				return err
			}
			if addr != "" {
				c.Server.Addr = addr
			}
			if log.GetLevel() < logrus.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}

			p, err := newPipeline(c, log)
			if err != nil {
				return err
			}
			sel, err := newSelector(c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.WithFields(logrus.Fields{
				"name":        c.Pipeline.Name,
				"version":     c.Pipeline.Version,
				"transcriber": c.Services.Transcriber.Backend,
			}).Info("mood service starting")
			return server.New(c, p, sel, log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "override server.addr")
	return cmd
}
