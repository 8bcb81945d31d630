package models

// ── Request Types ─────────────────────────────────────

type StartSessionRequest struct {
	Mode       Mode       `json:"mode"`
	Category   Category   `json:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Topic      string     `json:"topic,omitempty"`
	Count      int        `json:"count,omitempty"`
	Level      int        `json:"level,omitempty"`
}

type AnswerRequest struct {
	Selected string `json:"selected"`
	TimeLeft int    `json:"timeLeft"`
	HintUsed bool   `json:"hintUsed"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type UpdateSettingsRequest struct {
	Theme        *string `json:"theme,omitempty"`
	ThemeColor   *string `json:"themeColor,omitempty"`
	Wallpaper    *string `json:"wallpaper,omitempty"`
	SoundEnabled *bool   `json:"soundEnabled,omitempty"`
	Onboarded    *bool   `json:"onboarded,omitempty"`
}

// ── Response Types ────────────────────────────────────

type ErrorResponse struct {
	Error string `json:"error"`
}

type SessionStateResponse struct {
	Phase         Phase             `json:"phase"`
	Mode          Mode              `json:"mode,omitempty"`
	Index         int               `json:"index"`
	Total         int               `json:"total"`
	Score         int               `json:"score"`
	Answered      bool              `json:"answered"`
	Question      *Question         `json:"question,omitempty"`
	Landmark      *LandmarkQuestion `json:"landmark,omitempty"`
	Lives         int               `json:"lives,omitempty"`
	Wave          int               `json:"wave,omitempty"`
	Opponent      *Bot              `json:"opponent,omitempty"`
	OpponentScore int               `json:"opponentScore,omitempty"`
	Notice        string            `json:"notice,omitempty"`
	Error         *SessionError     `json:"error,omitempty"`
}

type ResultsResponse struct {
	Quiz     *QuizResult     `json:"quiz,omitempty"`
	Landmark *LandmarkResult `json:"landmark,omitempty"`
	Survival *SurvivalResult `json:"survival,omitempty"`
	BotMatch *BotMatchResult `json:"botMatch,omitempty"`
}

type ProfileResponse struct {
	User                 User               `json:"user"`
	Stats                ProfileStats       `json:"stats"`
	GameHistory          []GameHistoryEntry `json:"gameHistory"`
	UnlockedAchievements []AchievementID    `json:"unlockedAchievements"`
	DailyChallengeDone   bool               `json:"dailyChallengeDone"`
}

type SettingsResponse struct {
	Theme        string `json:"theme"`
	ThemeColor   string `json:"themeColor"`
	Wallpaper    string `json:"wallpaper"`
	SoundEnabled bool   `json:"soundEnabled"`
	Onboarded    bool   `json:"onboarded"`
}
