package service

import (
	"testing"

	"github.com/logicash/logicash-api/internal/repository"
)

func TestGetActiveQuizzes(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))

	seedQuiz(t, db, "Visible")
	retired := seedQuiz(t, db, "Retired")
	if err := db.Model(retired).Update("active", false).Error; err != nil {
		t.Fatalf("failed to deactivate quiz: %v", err)
	}

	quizzes, err := svc.GetActiveQuizzes()
	if err != nil {
		t.Fatalf("GetActiveQuizzes error: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("len(quizzes) = %d, want 1 (inactive quizzes hidden)", len(quizzes))
	}
	if quizzes[0].Title != "Visible" {
		t.Errorf("Title = %q, want %q", quizzes[0].Title, "Visible")
	}
	if quizzes[0].QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", quizzes[0].QuestionCount)
	}
}

func TestGetQuizDetailsHidesCorrectness(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))
	quiz := seedQuiz(t, db, "Details")

	detail, err := svc.GetQuizDetails(quiz.ID)
	if err != nil {
		t.Fatalf("GetQuizDetails error: %v", err)
	}
	if len(detail.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(detail.Questions))
	}
	for i, q := range detail.Questions {
		if q.OrderInQuiz != i+1 {
			t.Errorf("question %d OrderInQuiz = %d, want %d (ordered by position)", i, q.OrderInQuiz, i+1)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		for j, opt := range q.Options {
			if opt.Order != j+1 {
				t.Errorf("question %d option %d Order = %d, want %d", i, j, opt.Order, j+1)
			}
		}
	}
}

func TestGetQuizDetailsInactiveHidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))

	quiz := seedQuiz(t, db, "Hidden")
	if err := db.Model(quiz).Update("active", false).Error; err != nil {
		t.Fatalf("failed to deactivate quiz: %v", err)
	}

	if _, err := svc.GetQuizDetails(quiz.ID); err == nil {
		t.Fatal("GetQuizDetails returned an inactive quiz")
	}
}

func TestGetQuizDetailsUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))

	if _, err := svc.GetQuizDetails(999); err == nil {
		t.Fatal("GetQuizDetails returned a quiz for an unknown ID")
	}
}
