package flashcard

import (
	"context"
	"log/slog"
	"testing"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

func TestService_Statistics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts domain.PoolCounts
		want   domain.Statistics
	}{
		{
			// Two questions, both touched by someone, one ever answered
			// correctly by anyone.
			name:   "two questions one correct",
			counts: domain.PoolCounts{TotalQuestions: 2, AnsweredQuestions: 2, CorrectQuestions: 1},
			want:   domain.Statistics{TotalQuestions: 2, AnsweredPercent: 100, CorrectPercent: 50},
		},
		{
			name:   "empty pool yields all zeros",
			counts: domain.PoolCounts{},
			want:   domain.Statistics{},
		},
		{
			name:   "untouched catalog",
			counts: domain.PoolCounts{TotalQuestions: 3},
			want:   domain.Statistics{TotalQuestions: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockAnswers := &answerRepoMock{
				PoolCountsFunc: func(ctx context.Context) (domain.PoolCounts, error) {
					return tt.counts, nil
				},
			}

			svc := &Service{answers: mockAnswers, log: slog.Default()}

			got, err := svc.Statistics(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Statistics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
