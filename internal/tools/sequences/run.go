package sequences

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/louisbranch/lazyseq/internal/sequence"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/lazyseq/internal/tools/sequences"

// Run prints the pairwise chain and then the nested sequences selected by cfg,
// one value per line.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	formatter, err := sequence.NewFormatter(cfg.Locale)
	if err != nil {
		return err
	}
	tracer := otel.Tracer(tracerName)

	if cfg.runs(DriverPairwise) {
		ctx, span := tracer.Start(ctx, "sequences.pairwise", trace.WithAttributes(
			attribute.Int("sequences.seed", cfg.Seed),
			attribute.IntSlice("sequences.increments", cfg.Increments),
		))
		err := emit(ctx, span, sequence.PairwiseAccumulate(cfg.Seed, cfg.Increments), cfg.Limit, formatter.Int, out)
		span.End()
		if err != nil {
			return fmt.Errorf("pairwise: %w", err)
		}
	}

	if cfg.runs(DriverNested) {
		ctx, span := tracer.Start(ctx, "sequences.nested", trace.WithAttributes(
			attribute.Int("sequences.depth", cfg.Depth),
		))
		err := emit(ctx, span, sequence.NestedSequences(cfg.Depth), cfg.Limit, formatter.Sequence, out)
		span.End()
		if err != nil {
			return fmt.Errorf("nested: %w", err)
		}
	}
	return nil
}

// emit writes each value of seq on its own line, stopping after limit values
// when limit > 0. The number written is recorded on span.
func emit[T any](ctx context.Context, span trace.Span, seq iter.Seq[T], limit int, render func(T) string, out io.Writer) error {
	emitted := 0
	defer func() {
		span.SetAttributes(attribute.Int("sequences.emitted", emitted))
	}()

	for v := range seq {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return err
		}
		if _, err := fmt.Fprintln(out, render(v)); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "write failed")
			return fmt.Errorf("write value: %w", err)
		}
		emitted++
		if limit > 0 && emitted >= limit {
			break
		}
	}
	return nil
}
