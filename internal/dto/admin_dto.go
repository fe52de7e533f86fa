package dto

// AnswerOptionCreateDTO is used within QuestionCreateDTO for admin quiz creation.
type AnswerOptionCreateDTO struct {
	Text    string `json:"text" binding:"required,max=500"`
	Correct bool   `json:"correct"`
	Order   int    `json:"order" binding:"required,min=1"`
}

// QuestionCreateDTO is used within QuizCreateDTO for admin quiz creation.
type QuestionCreateDTO struct {
	Text        string                  `json:"text" binding:"required"`
	Explanation string                  `json:"explanation,omitempty"`
	OrderInQuiz int                     `json:"order_in_quiz" binding:"required,min=1"`
	Points      int                     `json:"points" binding:"required,min=1"`
	Options     []AnswerOptionCreateDTO `json:"options" binding:"required,min=2,dive"`
}

// QuizCreateDTO is for the admin to create a new quiz with all its questions.
type QuizCreateDTO struct {
	Title            string              `json:"title" binding:"required,max=200"`
	Description      string              `json:"description" binding:"required"`
	Difficulty       int                 `json:"difficulty" binding:"required,min=1,max=5"`
	Theme            string              `json:"theme" binding:"required,max=100"`
	TimeLimitMinutes *int                `json:"time_limit_minutes,omitempty" binding:"omitempty,min=1"`
	BasePoints       int                 `json:"base_points" binding:"required,min=0"`
	Active           *bool               `json:"active,omitempty"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// AchievementCreateDTO is for the admin to create a new achievement.
// At least one of the min_* criteria must be set or the badge could never unlock.
type AchievementCreateDTO struct {
	Name             string   `json:"name" binding:"required,max=100"`
	Description      string   `json:"description" binding:"required"`
	Icon             string   `json:"icon" binding:"required,max=100"`
	IconURL          *string  `json:"icon_url,omitempty" binding:"omitempty,url"`
	MinPoints        *int     `json:"min_points,omitempty" binding:"omitempty,min=1"`
	MinQuizzes       *int     `json:"min_quizzes,omitempty" binding:"omitempty,min=1"`
	MinAccuracy      *float64 `json:"min_accuracy,omitempty" binding:"omitempty,gt=0,lte=100"`
	DifficultyFilter *int     `json:"difficulty_filter,omitempty" binding:"omitempty,min=1,max=5"`
	Active           *bool    `json:"active,omitempty"`
	Color            string   `json:"color,omitempty" binding:"omitempty,hexcolor"`
}
