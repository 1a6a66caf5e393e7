package main

import (
	"os"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globalOpts struct {
	backendURL string
	token      string
	timeout    time.Duration
	verbose    bool
}

func (o *globalOpts) client() (*backend.Client, error) {
	logger := zap.NewNop()
	if o.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		logger = l
	}
	return backend.New(o.backendURL, o.timeout, logger), nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Inspect and update hotel records over the REST backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	defaultURL := os.Getenv("HOTELHUB_BACKEND_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	cmd.PersistentFlags().StringVar(&opts.backendURL, "backend", defaultURL, "Hotel REST backend origin (env HOTELHUB_BACKEND_URL)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("HOTELCTL_TOKEN"), "Bearer token (env HOTELCTL_TOKEN)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", backend.DefaultTimeout, "Timeout for one backend request")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log backend requests to stderr")

	cmd.AddCommand(
		newLoginCmd(opts),
		newListCmd(opts),
		newGetCmd(opts),
		newSetStatusCmd(opts),
		newResourcesCmd(),
	)
	return cmd
}
