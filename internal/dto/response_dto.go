package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// --- Auth & profile ---

type StudentProfileDTO struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	School    *string    `json:"school,omitempty"`
	Grade     *string    `json:"grade,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthResponseDTO struct {
	Token   string            `json:"token"`
	Student StudentProfileDTO `json:"student"`
}

// --- Quizzes ---

// QuizSummaryDTO is used for listing quizzes available to students.
type QuizSummaryDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Difficulty       int       `json:"difficulty"`
	Theme            string    `json:"theme"`
	TimeLimitMinutes *int      `json:"time_limit_minutes,omitempty"`
	BasePoints       int       `json:"base_points"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// AnswerOptionDTO deliberately omits the correctness flag; students must not
// see it before submitting.
type AnswerOptionDTO struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type QuestionDTO struct {
	ID          uint              `json:"id"`
	Text        string            `json:"text"`
	OrderInQuiz int               `json:"order_in_quiz"`
	Points      int               `json:"points"`
	Options     []AnswerOptionDTO `json:"options"`
}

type QuizDetailDTO struct {
	ID               uint          `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	Difficulty       int           `json:"difficulty"`
	Theme            string        `json:"theme"`
	TimeLimitMinutes *int          `json:"time_limit_minutes,omitempty"`
	BasePoints       int           `json:"base_points"`
	Questions        []QuestionDTO `json:"questions"`
}

// --- Admin views (include correctness and explanations) ---

type AdminAnswerOptionDTO struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
	Order   int    `json:"order"`
}

type AdminQuestionDTO struct {
	ID          uint                   `json:"id"`
	Text        string                 `json:"text"`
	Explanation string                 `json:"explanation,omitempty"`
	OrderInQuiz int                    `json:"order_in_quiz"`
	Points      int                    `json:"points"`
	Options     []AdminAnswerOptionDTO `json:"options"`
}

type AdminQuizDTO struct {
	ID               uint               `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	Difficulty       int                `json:"difficulty"`
	Theme            string             `json:"theme"`
	TimeLimitMinutes *int               `json:"time_limit_minutes,omitempty"`
	BasePoints       int                `json:"base_points"`
	Active           bool               `json:"active"`
	Questions        []AdminQuestionDTO `json:"questions"`
	CreatedAt        time.Time          `json:"created_at"`
}

// --- Scores, statistics, achievements ---

type ScoreDTO struct {
	TotalPoints  int       `json:"total_points"`
	CurrentLevel int       `json:"current_level"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StatisticsDTO struct {
	CompletedQuizzes int     `json:"completed_quizzes"`
	TotalCorrect     int     `json:"total_correct"`
	TotalQuestions   int     `json:"total_questions"`
	AccuracyPercent  float64 `json:"accuracy_percent"`
}

type AchievementDTO struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	IconURL     *string  `json:"icon_url,omitempty"`
	MinPoints   *int     `json:"min_points,omitempty"`
	MinQuizzes  *int     `json:"min_quizzes,omitempty"`
	MinAccuracy *float64 `json:"min_accuracy,omitempty"`
	Color       string   `json:"color"`
}

type UnlockedAchievementDTO struct {
	Achievement AchievementDTO `json:"achievement"`
	UnlockedAt  time.Time      `json:"unlocked_at"`
}

// --- Results ---

type ResultSummaryDTO struct {
	ID               uint      `json:"id"`
	QuizID           uint      `json:"quiz_id"`
	QuizTitle        string    `json:"quiz_title,omitempty"`
	PointsEarned     int       `json:"points_earned"`
	TotalQuestions   int       `json:"total_questions"`
	CorrectAnswers   int       `json:"correct_answers"`
	TimeSpentSeconds *int      `json:"time_spent_seconds,omitempty"`
	Completed        bool      `json:"completed"`
	TakenAt          time.Time `json:"taken_at"`
}

// ResultDetailDTO is returned after a submission: the recorded result, the
// updated score, and any achievements this very submission unlocked.
type ResultDetailDTO struct {
	Result          ResultSummaryDTO `json:"result"`
	Score           ScoreDTO         `json:"score"`
	NewAchievements []AchievementDTO `json:"new_achievements"`
}

// --- Dashboard ---

type DashboardDTO struct {
	Student              StudentProfileDTO        `json:"student"`
	Score                ScoreDTO                 `json:"score"`
	Statistics           StatisticsDTO            `json:"statistics"`
	UnlockedAchievements []UnlockedAchievementDTO `json:"unlocked_achievements"`
	NextAchievements     []AchievementDTO         `json:"next_achievements"`
	RecentResults        []ResultSummaryDTO       `json:"recent_results"`
}
