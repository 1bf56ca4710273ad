package cmd

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/louisbranch/lazyseq/internal/platform/otel"
)

// ServiceSequences names the sequences command in telemetry.
const ServiceSequences = "sequences"

// RunWithTelemetry configures tracing from the environment and runs run.
//
// Telemetry is flushed after run returns, bounded by the configured shutdown
// timeout. Flush failures are logged, not returned.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}

	cfg, err := otel.LoadConfig()
	if err != nil {
		return err
	}
	shutdown, err := otel.Setup(ctx, service, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
