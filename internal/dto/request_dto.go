package dto

// SignupDTO creates a new user plus its student profile and zeroed score record.
type SignupDTO struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required,max=100"`
	School   *string `json:"school,omitempty"`
	Grade    *string `json:"grade,omitempty"`
}

// LoginDTO accepts either the username or the email in the login field.
type LoginDTO struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmDTO struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ProfileUpdateDTO struct {
	Name      string  `json:"name" binding:"required,max=100"`
	BirthDate *string `json:"birth_date,omitempty"` // "2006-01-02"
	School    *string `json:"school,omitempty"`
	Grade     *string `json:"grade,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// AnswerSubmissionDTO is one chosen option for one question of the quiz.
type AnswerSubmissionDTO struct {
	QuestionID     uint `json:"question_id" binding:"required"`
	AnswerOptionID uint `json:"answer_option_id" binding:"required"`
}

// QuizSubmissionDTO is the request body for submitting a completed quiz attempt.
type QuizSubmissionDTO struct {
	TimeSpentSeconds *int                  `json:"time_spent_seconds,omitempty" binding:"omitempty,min=0"`
	Answers          []AnswerSubmissionDTO `json:"answers" binding:"required,min=1,dive"`
}
