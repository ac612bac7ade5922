package services

//go:generate mockgen -source=seed.go -destination=mock_seed.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-glossary/internal/logger"
)

// TermCounter counts stored terms.
type TermCounter interface {
	Count(ctx context.Context) (int, error)
}

// SeedResult reports what a seeding run found and did.
type SeedResult struct {
	Existing int // Terms present before the run
	Inserted int // Terms inserted by the run
}

// SeedService fills an empty glossary with the default terms.
type SeedService struct {
	counter TermCounter
	writer  TermWriter
	terms   []SeedTerm
}

// NewSeedService creates a SeedService that seeds DefaultTerms.
func NewSeedService(counter TermCounter, writer TermWriter) *SeedService {
	return &SeedService{
		counter: counter,
		writer:  writer,
		terms:   DefaultTerms,
	}
}

// Run inserts the seed terms when the store is empty and does nothing otherwise,
// so it is safe to call on every start.
func (s *SeedService) Run(ctx context.Context) (SeedResult, error) {
	existing, err := s.counter.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count terms", "error", err)
		return SeedResult{}, err
	}

	if existing > 0 {
		logger.Log.Infow("glossary already seeded, skipping", "existing", existing)
		return SeedResult{Existing: existing}, nil
	}

	for _, t := range s.terms {
		if _, err := s.writer.Save(ctx, t.Keyword, t.Description); err != nil {
			logger.Log.Errorw("failed to seed term", "keyword", t.Keyword, "error", err)
			return SeedResult{}, err
		}
	}

	logger.Log.Infow("glossary seeded", "inserted", len(s.terms))
	return SeedResult{Inserted: len(s.terms)}, nil
}
