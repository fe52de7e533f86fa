package service

import (
	"math"

	"github.com/logicash/logicash-api/internal/model"
)

// StudentStatistics are the aggregates achievement criteria are checked
// against. Derived on demand from the full result set, never cached.
type StudentStatistics struct {
	CompletedQuizzes int
	TotalCorrect     int
	TotalQuestions   int
	AccuracyPercent  float64
}

type StatisticsService interface {
	Derive(results []model.Result) StudentStatistics
}

type statisticsServiceImpl struct{}

func NewStatisticsService() StatisticsService {
	return &statisticsServiceImpl{}
}

// Derive folds the student's results into aggregate statistics. Only completed
// results count toward the quiz total; correct/question sums include abandoned
// attempts as well. Accuracy is a percentage rounded to one decimal place,
// zero when no questions were attempted.
func (s *statisticsServiceImpl) Derive(results []model.Result) StudentStatistics {
	var stats StudentStatistics
	for _, res := range results {
		if res.Completed {
			stats.CompletedQuizzes++
		}
		stats.TotalCorrect += res.CorrectAnswers
		stats.TotalQuestions += res.TotalQuestions
	}

	if stats.TotalQuestions > 0 {
		accuracy := 100 * float64(stats.TotalCorrect) / float64(stats.TotalQuestions)
		stats.AccuracyPercent = math.Round(accuracy*10) / 10
	}
	return stats
}
