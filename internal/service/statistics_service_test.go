package service

import (
	"testing"

	"github.com/logicash/logicash-api/internal/model"
)

func TestDeriveStatistics(t *testing.T) {
	svc := NewStatisticsService()

	tests := []struct {
		name    string
		results []model.Result
		want    StudentStatistics
	}{
		{
			name:    "no results",
			results: nil,
			want:    StudentStatistics{},
		},
		{
			name: "single perfect result",
			results: []model.Result{
				{Completed: true, CorrectAnswers: 5, TotalQuestions: 5},
			},
			want: StudentStatistics{CompletedQuizzes: 1, TotalCorrect: 5, TotalQuestions: 5, AccuracyPercent: 100},
		},
		{
			name: "nine of ten",
			results: []model.Result{
				{Completed: true, CorrectAnswers: 9, TotalQuestions: 10},
			},
			want: StudentStatistics{CompletedQuizzes: 1, TotalCorrect: 9, TotalQuestions: 10, AccuracyPercent: 90},
		},
		{
			name: "accuracy rounds to one decimal",
			results: []model.Result{
				{Completed: true, CorrectAnswers: 1, TotalQuestions: 3},
			},
			want: StudentStatistics{CompletedQuizzes: 1, TotalCorrect: 1, TotalQuestions: 3, AccuracyPercent: 33.3},
		},
		{
			name: "incomplete results counted in sums but not quiz total",
			results: []model.Result{
				{Completed: true, CorrectAnswers: 4, TotalQuestions: 5},
				{Completed: false, CorrectAnswers: 2, TotalQuestions: 5},
			},
			want: StudentStatistics{CompletedQuizzes: 1, TotalCorrect: 6, TotalQuestions: 10, AccuracyPercent: 60},
		},
		{
			name: "zero questions means zero accuracy",
			results: []model.Result{
				{Completed: true, CorrectAnswers: 0, TotalQuestions: 0},
			},
			want: StudentStatistics{CompletedQuizzes: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Derive(tt.results)
			if got != tt.want {
				t.Errorf("Derive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
