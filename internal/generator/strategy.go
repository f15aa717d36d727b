package generator

import "context"

// Strategy is one way of producing content. Implementations share one
// output contract so callers cannot tell which one ran.
type Strategy interface {
	Name() string
	Plan(ctx context.Context, p Profile) ([]Draft, error)
	Improve(ctx context.Context, d Draft, p Profile) (Patch, error)
	Engaging(ctx context.Context, d Draft, p Profile) (Patch, error)
	Regenerate(ctx context.Context, day int, platform Platform, p Profile) (Patch, error)
	Rate(ctx context.Context, req RateRequest) (Rating, error)
}

// AIStrategy renders a prompt, sends it to a TextGenerator and parses the
// reply. It never falls back on its own.
type AIStrategy struct {
	client TextGenerator
}

func NewAIStrategy(client TextGenerator) *AIStrategy {
	return &AIStrategy{client: client}
}

func (s *AIStrategy) Name() string { return "ai" }

func (s *AIStrategy) Plan(ctx context.Context, p Profile) ([]Draft, error) {
	prompt, err := PlanPrompt(p, PlanDays)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Generate(ctx, PlanSystem, prompt)
	if err != nil {
		return nil, err
	}
	return ParsePlan(raw)
}

func (s *AIStrategy) Improve(ctx context.Context, d Draft, p Profile) (Patch, error) {
	prompt, err := ImprovePrompt(d, p)
	if err != nil {
		return nil, err
	}
	return s.patch(ctx, ImproveSystem, prompt)
}

func (s *AIStrategy) Engaging(ctx context.Context, d Draft, p Profile) (Patch, error) {
	prompt, err := EngagingPrompt(d, p)
	if err != nil {
		return nil, err
	}
	return s.patch(ctx, EngagingSystem, prompt)
}

func (s *AIStrategy) Regenerate(ctx context.Context, day int, platform Platform, p Profile) (Patch, error) {
	prompt, err := RegeneratePrompt(day, platform, p)
	if err != nil {
		return nil, err
	}
	return s.patch(ctx, RegenerateSystem, prompt)
}

func (s *AIStrategy) Rate(ctx context.Context, req RateRequest) (Rating, error) {
	prompt, err := RatePrompt(req)
	if err != nil {
		return Rating{}, err
	}
	raw, err := s.client.Generate(ctx, RateSystem, prompt)
	if err != nil {
		return Rating{}, err
	}
	return ParseRating(raw)
}

func (s *AIStrategy) patch(ctx context.Context, system, prompt string) (Patch, error) {
	raw, err := s.client.Generate(ctx, system, prompt)
	if err != nil {
		return nil, err
	}
	return ParsePatch(raw)
}

// FallbackStrategy adapts the template generator to Strategy. Its error
// results are always nil.
type FallbackStrategy struct {
	gen *Fallback
}

func NewFallbackStrategy(gen *Fallback) *FallbackStrategy {
	if gen == nil {
		gen = NewFallback(nil)
	}
	return &FallbackStrategy{gen: gen}
}

func (s *FallbackStrategy) Name() string { return "fallback" }

func (s *FallbackStrategy) Plan(_ context.Context, p Profile) ([]Draft, error) {
	return s.gen.Plan(p), nil
}

func (s *FallbackStrategy) Improve(_ context.Context, d Draft, _ Profile) (Patch, error) {
	return s.gen.Improve(d), nil
}

func (s *FallbackStrategy) Engaging(_ context.Context, d Draft, _ Profile) (Patch, error) {
	return s.gen.Engaging(d), nil
}

func (s *FallbackStrategy) Regenerate(_ context.Context, day int, platform Platform, p Profile) (Patch, error) {
	return s.gen.Regenerate(day, platform, p), nil
}

func (s *FallbackStrategy) Rate(_ context.Context, req RateRequest) (Rating, error) {
	return s.gen.Rate(req), nil
}
