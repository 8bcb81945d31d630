package models

type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeAI       Mode = "ai"
	ModeDaily    Mode = "daily_challenge"
	ModeLandmark Mode = "landmark"
	ModeSurvival Mode = "survival"
	ModeBotMatch Mode = "bot_match"
)

var ValidModes = map[Mode]bool{
	ModeClassic:  true,
	ModeAI:       true,
	ModeDaily:    true,
	ModeLandmark: true,
	ModeSurvival: true,
	ModeBotMatch: true,
}

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseFetching   Phase = "fetching_content"
	PhaseActive     Phase = "active"
	PhaseFinalizing Phase = "finalizing"
	PhaseResults    Phase = "results"
	PhaseError      Phase = "error"
)

// Answer records one resolved question. A timeout produces an Answer
// with an empty SelectedAnswer and zero points.
type Answer struct {
	Question       Question `json:"question"`
	SelectedAnswer string   `json:"selectedAnswer"`
	CorrectAnswer  string   `json:"correctAnswer"`
	IsCorrect      bool     `json:"isCorrect"`
	Points         int      `json:"points"`
}

// SessionError is the terminal error surface shown instead of results.
type SessionError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Bot struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Avatar     string     `json:"avatar"`
	Rating     int        `json:"rating"`
	Difficulty Difficulty `json:"difficulty"`
	Accuracy   float64    `json:"accuracy"`
}

// ── Results ────────────────────────────────────────────

type QuizResult struct {
	Mode           Mode       `json:"mode"`
	Score          int        `json:"score"`
	CorrectAnswers int        `json:"correctAnswers"`
	TotalQuestions int        `json:"totalQuestions"`
	Topic          string     `json:"topic"`
	Difficulty     Difficulty `json:"difficulty"`
	Answers        []Answer   `json:"answers"`
	Degraded       bool       `json:"degraded,omitempty"`
}

type LandmarkResult struct {
	Level          int      `json:"level"`
	Score          int      `json:"score"`
	Stars          int      `json:"stars"`
	CorrectAnswers int      `json:"correctAnswers"`
	TotalQuestions int      `json:"totalQuestions"`
	UnlockedNext   bool     `json:"unlockedNext"`
	Answers        []Answer `json:"answers"`
}

type SurvivalResult struct {
	Score          int `json:"score"`
	Wave           int `json:"wave"`
	CorrectAnswers int `json:"correctAnswers"`
	TotalAnswered  int `json:"totalAnswered"`
}

type BotMatchResult struct {
	PlayerScore    int      `json:"playerScore"`
	BotScore       int      `json:"botScore"`
	Opponent       Bot      `json:"opponent"`
	Won            bool     `json:"won"`
	CorrectAnswers int      `json:"correctAnswers"`
	TotalQuestions int      `json:"totalQuestions"`
	Answers        []Answer `json:"answers"`
}
