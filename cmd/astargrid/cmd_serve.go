package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/astarkit/internal/vizweb"
)

var serveAddr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the step-by-step visualisation API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr())
			if !verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			logger.Info("Serving visualisation API", "addr", serveAddr)
			return vizweb.NewServer(logger).Router().Run(serveAddr)
		},
	}
	cmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	return cmd
}
