package domain

import "math"

// PoolCounts holds the raw pool-wide counters behind the statistics view.
// All three are distinct-question counts across every user: a question is
// answered if any user submitted anything for it, correct if any user
// answered it correctly.
type PoolCounts struct {
	TotalQuestions    int
	AnsweredQuestions int
	CorrectQuestions  int
}

// Statistics is the pool-wide statistics view shown to the user.
type Statistics struct {
	TotalQuestions  int
	AnsweredPercent int
	CorrectPercent  int
}

// StatisticsFromCounts derives the percentage view from raw counts.
func StatisticsFromCounts(c PoolCounts) Statistics {
	return Statistics{
		TotalQuestions:  c.TotalQuestions,
		AnsweredPercent: Percent(c.AnsweredQuestions, c.TotalQuestions),
		CorrectPercent:  Percent(c.CorrectQuestions, c.TotalQuestions),
	}
}

// Percent returns round(100*part/total) as an integer in [0,100].
// A zero total yields 0 rather than a division error. Rounding is
// half-up via math.Round, which rounds half away from zero; identical
// for the non-negative ratios used here.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
