package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/creatorflow/internal/metrics"
)

const DefaultTimeout = 10 * time.Second

// Task names, used in logs and metrics.
const (
	TaskPlan       = "plan"
	TaskImprove    = "improve"
	TaskEngaging   = "engaging"
	TaskRegenerate = "regenerate"
	TaskRate       = "rate"
)

// Generator is the entry point for every generation task. It tries the
// primary strategy and substitutes the fallback on any failure, so its
// methods always return a usable result.
type Generator struct {
	primary  Strategy
	fallback Strategy
	timeout  time.Duration
}

type Option func(*Generator)

// WithPrimary sets the strategy tried first. A nil strategy disables it.
func WithPrimary(s Strategy) Option {
	return func(g *Generator) { g.primary = s }
}

func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

func New(fallback *FallbackStrategy, opts ...Option) *Generator {
	if fallback == nil {
		fallback = NewFallbackStrategy(nil)
	}
	g := &Generator{fallback: fallback, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AIEnabled reports whether a primary strategy is configured.
func (g *Generator) AIEnabled() bool {
	return g.primary != nil
}

func (g *Generator) GeneratePlan(ctx context.Context, p Profile) []Draft {
	return run(ctx, g, TaskPlan, func(ctx context.Context, s Strategy) ([]Draft, error) {
		return s.Plan(ctx, p)
	})
}

func (g *Generator) Improve(ctx context.Context, d Draft, p Profile) Patch {
	return run(ctx, g, TaskImprove, func(ctx context.Context, s Strategy) (Patch, error) {
		return s.Improve(ctx, d, p)
	})
}

func (g *Generator) MakeEngaging(ctx context.Context, d Draft, p Profile) Patch {
	return run(ctx, g, TaskEngaging, func(ctx context.Context, s Strategy) (Patch, error) {
		return s.Engaging(ctx, d, p)
	})
}

// RegenerateDay returns fresh content for the day. The patch never carries
// day or platform.
func (g *Generator) RegenerateDay(ctx context.Context, day int, platform Platform, p Profile) Patch {
	if _, ok := ParsePlatform(string(platform)); !ok {
		platform = PlatformInstagram
	}
	return run(ctx, g, TaskRegenerate, func(ctx context.Context, s Strategy) (Patch, error) {
		return s.Regenerate(ctx, day, platform, p)
	})
}

func (g *Generator) RatePost(ctx context.Context, req RateRequest) Rating {
	return run(ctx, g, TaskRate, func(ctx context.Context, s Strategy) (Rating, error) {
		return s.Rate(ctx, req)
	})
}

func run[T any](ctx context.Context, g *Generator, task string, call func(context.Context, Strategy) (T, error)) T {
	if g.primary != nil {
		out, err := attempt(ctx, g, task, call)
		if err == nil {
			metrics.ObserveGeneration(task, g.primary.Name())
			return out
		}
		metrics.ObserveFailure(task, failureKind(err))
		slog.Warn("generation fell back to templates",
			slog.String("task", task),
			slog.String("error", err.Error()),
		)
	}

	// The fallback strategy does not fail; a background context keeps a
	// cancelled request from affecting it.
	out, _ := call(context.WithoutCancel(ctx), g.fallback)
	metrics.ObserveGeneration(task, g.fallback.Name())
	return out
}

func attempt[T any](ctx context.Context, g *Generator, task string, call func(context.Context, Strategy) (T, error)) (out T, err error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	defer metrics.ObserveAIRequest(task, start)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s strategy: %v", g.primary.Name(), r)
		}
	}()

	out, err = call(ctx, g.primary)
	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("%w: %v", ErrGenerationUnavailable, ctx.Err())
	}
	return out, err
}
