package flashcard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Statistics returns the pool-wide statistics view: total questions, and
// the percentages of questions answered and answered correctly by anyone.
// All counters come from one consistent read.
func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	counts, err := s.answers.PoolCounts(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("pool counts: %w", err)
	}

	return domain.StatisticsFromCounts(counts), nil
}
