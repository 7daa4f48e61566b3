package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/skilllink-dev/skilllink/internal/config"
	apperrors "github.com/skilllink-dev/skilllink/internal/errors"
	"github.com/skilllink-dev/skilllink/internal/gateway"
	"github.com/skilllink-dev/skilllink/pkg/avatar"
	"github.com/skilllink-dev/skilllink/pkg/jobs"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SkillLink gateway",
		Long: `Start the HTTP/WebSocket gateway.

The gateway serves the job feed API, avatar uploads, the chat
WebSocket, and optionally Prometheus metrics.

Examples:
  skilllink serve
  skilllink serve --port=9090
  skilllink serve --host=0.0.0.0 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, metrics)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from skilllink.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from skilllink.json)")
	cmd.Flags().BoolVarP(&metrics, "metrics", "m", false, "Expose Prometheus metrics on /metrics")

	return cmd
}

func runServe(port int, host string, metrics bool) error {
	if port < 0 || port > 65535 {
		return apperrors.New("E160").
			WithDetail(fmt.Sprintf("--port %d is outside 1-65535", port)).
			WithSuggestion("Pass a port between 1 and 65535")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Gateway.Port = port
	}
	if host != "" {
		cfg.Gateway.Host = host
	}
	if metrics {
		cfg.Gateway.MetricsEnabled = true
	}

	opts := gateway.Options{Config: cfg}

	// A configured source URL makes the gateway proxy an upstream feed
	// instead of serving the built-in fixtures.
	if cfg.Jobs.SourceURL != "" {
		opts.Jobs = &jobs.HTTPSource{BaseURL: cfg.Jobs.SourceURL}
	}

	// An S3 bucket in the config switches avatar storage to S3.
	if cfg.Avatar.S3Bucket != "" {
		client := s3.New(s3.Options{Region: os.Getenv("AWS_REGION")})
		opts.Avatars = avatar.NewS3Store(client, cfg.Avatar.S3Bucket, cfg.Avatar.S3Prefix,
			int64(cfg.Avatar.MaxSizeMB)<<20)
	}

	g, err := gateway.New(opts)
	if err != nil {
		return err
	}

	printBanner()
	info("Gateway listening on http://%s", cfg.Gateway.Addr())
	if cfg.Gateway.MetricsEnabled {
		info("Metrics on http://%s/metrics", cfg.Gateway.Addr())
	}

	return g.Run()
}

// loadConfig reads skilllink.json from the working directory, falling back
// to defaults when the file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(".")
	if err == nil {
		return cfg, nil
	}

	var ae *apperrors.AppError
	if stderrors.As(err, &ae) && ae.Code == "E100" {
		return config.New(), nil
	}
	return nil, err
}
