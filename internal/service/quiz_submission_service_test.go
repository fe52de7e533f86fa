package service

import (
	"sync"
	"testing"

	"github.com/logicash/logicash-api/internal/dto"
	"github.com/logicash/logicash-api/internal/model"
	"github.com/logicash/logicash-api/internal/repository"
	"gorm.io/gorm"
)

func newSubmissionService(db *gorm.DB) QuizSubmissionService {
	return NewQuizSubmissionService(
		repository.NewQuizRepository(db),
		repository.NewResultRepository(db),
		repository.NewScoreRepository(db),
		NewLevelService(),
		NewStatisticsService(),
		NewAchievementService(repository.NewAchievementRepository(db)),
		db,
	)
}

// seedQuiz creates a quiz with two questions worth 5 points each, four
// options per question, the first option being the correct one.
func seedQuiz(t *testing.T, db *gorm.DB, title string) *model.Quiz {
	t.Helper()

	quiz := model.Quiz{
		Title:      title,
		Difficulty: 1,
		Theme:      "Savings",
		BasePoints: 10,
		Active:     true,
	}
	for q := 1; q <= 2; q++ {
		question := model.Question{
			Text:        "question text",
			OrderInQuiz: q,
			Points:      5,
		}
		for o := 1; o <= 4; o++ {
			question.Options = append(question.Options, model.AnswerOption{
				Text:     "option text",
				Correct:  o == 1,
				OrderInQ: o,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to seed quiz %q: %v", title, err)
	}
	return &quiz
}

// answersFor picks one option per question: the correct one for the first
// `correct` questions, a wrong one for the rest.
func answersFor(quiz *model.Quiz, correct int) []dto.AnswerSubmissionDTO {
	answers := make([]dto.AnswerSubmissionDTO, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		opt := q.Options[0]
		if i >= correct {
			opt = q.Options[1]
		}
		answers = append(answers, dto.AnswerSubmissionDTO{QuestionID: q.ID, AnswerOptionID: opt.ID})
	}
	return answers
}

func TestSubmitQuizFirstAttempt(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "firstattempt")
	quiz := seedQuiz(t, db, "Budget Basics")
	seedAchievement(t, db, model.Achievement{Name: "Getting Started", Description: "Earn 10 points", MinPoints: intPtr(10), Active: true})
	seedAchievement(t, db, model.Achievement{Name: "Centurion", Description: "Earn 100 points", MinPoints: intPtr(100), Active: true})
	svc := newSubmissionService(db)

	detail, err := svc.SubmitQuiz(student.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: answersFor(quiz, 2)})
	if err != nil {
		t.Fatalf("SubmitQuiz error: %v", err)
	}

	// 10 base + 2 correct questions worth 5 each.
	if detail.Result.PointsEarned != 20 {
		t.Errorf("PointsEarned = %d, want 20", detail.Result.PointsEarned)
	}
	if detail.Result.CorrectAnswers != 2 || detail.Result.TotalQuestions != 2 {
		t.Errorf("correct/total = %d/%d, want 2/2", detail.Result.CorrectAnswers, detail.Result.TotalQuestions)
	}
	if detail.Score.TotalPoints != 20 || detail.Score.CurrentLevel != 1 {
		t.Errorf("score = %d points level %d, want 20 points level 1", detail.Score.TotalPoints, detail.Score.CurrentLevel)
	}
	if len(detail.NewAchievements) != 1 || detail.NewAchievements[0].Name != "Getting Started" {
		t.Fatalf("NewAchievements = %v, want exactly Getting Started", detail.NewAchievements)
	}

	var record model.ScoreRecord
	if err := db.Where("student_id = ?", student.ID).First(&record).Error; err != nil {
		t.Fatalf("score record not persisted: %v", err)
	}
	if record.TotalPoints != 20 || record.CurrentLevel != 1 {
		t.Errorf("persisted score = %d points level %d, want 20 points level 1", record.TotalPoints, record.CurrentLevel)
	}
}

func TestSubmitQuizPartialAnswers(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "partial")
	quiz := seedQuiz(t, db, "Credit Cards")
	svc := newSubmissionService(db)

	// Answer only the first question; the unanswered one counts as incorrect.
	answers := answersFor(quiz, 1)[:1]
	detail, err := svc.SubmitQuiz(student.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: answers})
	if err != nil {
		t.Fatalf("SubmitQuiz error: %v", err)
	}
	if detail.Result.CorrectAnswers != 1 || detail.Result.TotalQuestions != 2 {
		t.Errorf("correct/total = %d/%d, want 1/2", detail.Result.CorrectAnswers, detail.Result.TotalQuestions)
	}
	if detail.Result.PointsEarned != 15 {
		t.Errorf("PointsEarned = %d, want 15", detail.Result.PointsEarned)
	}
}

func TestSubmitQuizLevelThreshold(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "leveler")
	quiz := seedQuiz(t, db, "Investments")
	svc := newSubmissionService(db)

	if err := db.Create(&model.ScoreRecord{StudentID: student.ID, TotalPoints: 90, CurrentLevel: 1}).Error; err != nil {
		t.Fatalf("failed to seed score record: %v", err)
	}

	detail, err := svc.SubmitQuiz(student.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: answersFor(quiz, 2)})
	if err != nil {
		t.Fatalf("SubmitQuiz error: %v", err)
	}
	if detail.Score.TotalPoints != 110 || detail.Score.CurrentLevel != 2 {
		t.Errorf("score = %d points level %d, want 110 points level 2", detail.Score.TotalPoints, detail.Score.CurrentLevel)
	}
}

func TestSubmitQuizRejectsInvalidAnswers(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "invalid")
	quiz := seedQuiz(t, db, "Interest Rates")
	other := seedQuiz(t, db, "Taxes")
	svc := newSubmissionService(db)

	tests := []struct {
		name    string
		answers []dto.AnswerSubmissionDTO
	}{
		{
			name: "question from another quiz",
			answers: []dto.AnswerSubmissionDTO{
				{QuestionID: other.Questions[0].ID, AnswerOptionID: other.Questions[0].Options[0].ID},
			},
		},
		{
			name: "option from another question",
			answers: []dto.AnswerSubmissionDTO{
				{QuestionID: quiz.Questions[0].ID, AnswerOptionID: quiz.Questions[1].Options[0].ID},
			},
		},
		{
			name: "duplicate answer for one question",
			answers: []dto.AnswerSubmissionDTO{
				{QuestionID: quiz.Questions[0].ID, AnswerOptionID: quiz.Questions[0].Options[0].ID},
				{QuestionID: quiz.Questions[0].ID, AnswerOptionID: quiz.Questions[0].Options[1].ID},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SubmitQuiz(student.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: tt.answers}); err == nil {
				t.Fatal("SubmitQuiz accepted invalid answers")
			}
		})
	}

	// Rejected submissions must leave no trace.
	var results int64
	db.Model(&model.Result{}).Where("student_id = ?", student.ID).Count(&results)
	if results != 0 {
		t.Errorf("result rows after rejections = %d, want 0", results)
	}
}

func TestSubmitQuizRejectsInactiveQuiz(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "inactive")
	quiz := seedQuiz(t, db, "Retired Quiz")
	if err := db.Model(quiz).Update("active", false).Error; err != nil {
		t.Fatalf("failed to deactivate quiz: %v", err)
	}
	svc := newSubmissionService(db)

	if _, err := svc.SubmitQuiz(student.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: answersFor(quiz, 2)}); err == nil {
		t.Fatal("SubmitQuiz accepted an inactive quiz")
	}
}

func TestSubmitQuizConcurrentSubmissionsLoseNoPoints(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "concurrent")
	quiz := seedQuiz(t, db, "Concurrency Drill")
	svc := newSubmissionService(db)

	const submissions = 5
	answers := answersFor(quiz, 2)

	var wg sync.WaitGroup
	errs := make(chan error, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitQuiz(student.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: answers})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent SubmitQuiz error: %v", err)
		}
	}

	record, err := repository.NewScoreRepository(db).FindByStudent(student.ID)
	if err != nil {
		t.Fatalf("failed to load score record: %v", err)
	}
	if want := submissions * 20; record.TotalPoints != want {
		t.Errorf("TotalPoints = %d, want %d (no increment may be lost)", record.TotalPoints, want)
	}
	if record.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2 at 100 points", record.CurrentLevel)
	}
}

func TestGetResultDetailsOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createTestStudent(t, db, "owner")
	stranger := createTestStudent(t, db, "stranger")
	quiz := seedQuiz(t, db, "Ownership")
	svc := newSubmissionService(db)

	detail, err := svc.SubmitQuiz(owner.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: answersFor(quiz, 2)})
	if err != nil {
		t.Fatalf("SubmitQuiz error: %v", err)
	}

	got, err := svc.GetResultDetails(owner.ID, detail.Result.ID)
	if err != nil {
		t.Fatalf("GetResultDetails for owner error: %v", err)
	}
	if got.QuizTitle != "Ownership" {
		t.Errorf("QuizTitle = %q, want %q", got.QuizTitle, "Ownership")
	}

	if _, err := svc.GetResultDetails(stranger.ID, detail.Result.ID); err == nil {
		t.Fatal("GetResultDetails exposed another student's result")
	}
}

func TestGetStudentResults(t *testing.T) {
	db := newTestDB(t)
	student := createTestStudent(t, db, "history")
	quiz := seedQuiz(t, db, "History")
	svc := newSubmissionService(db)

	for i := 0; i < 3; i++ {
		if _, err := svc.SubmitQuiz(student.ID, quiz.ID, dto.QuizSubmissionDTO{Answers: answersFor(quiz, 1)}); err != nil {
			t.Fatalf("SubmitQuiz error: %v", err)
		}
	}

	results, err := svc.GetStudentResults(student.ID)
	if err != nil {
		t.Fatalf("GetStudentResults error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
}
