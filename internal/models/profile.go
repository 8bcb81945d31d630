package models

type AchievementID string

const (
	AchievementFirstQuiz        AchievementID = "firstQuiz"
	AchievementQuizMaster       AchievementID = "quizMaster"
	AchievementPerfectScore     AchievementID = "perfectScore"
	AchievementCategoryExplorer AchievementID = "categoryExplorer"
	AchievementBeatBeginnerBot  AchievementID = "quizBeatBeginnerBot"
	AchievementBeatExpertBot    AchievementID = "quizBeatExpertBot"
	AchievementBotSlayer        AchievementID = "botSlayer"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	JoinDate int64  `json:"joinDate"`
	Rating   int    `json:"rating"`
}

// GameHistoryEntry is one completed classic-family quiz. Timestamps
// are unix milliseconds.
type GameHistoryEntry struct {
	Timestamp      int64      `json:"timestamp"`
	Score          int        `json:"score"`
	CorrectAnswers int        `json:"correctAnswers"`
	TotalQuestions int        `json:"totalQuestions"`
	Topic          string     `json:"topic"`
	Difficulty     Difficulty `json:"difficulty"`
	Answers        []Answer   `json:"answers"`
}

type LevelRecord struct {
	Unlocked  bool `json:"unlocked"`
	Stars     int  `json:"stars"`
	HighScore int  `json:"highScore"`
}

type LevelProgress map[int]LevelRecord

// SavedUserData is the single profile document persisted as one JSON
// value. Missing or malformed fields are replaced with defaults on load.
type SavedUserData struct {
	CurrentUser          User               `json:"currentUser"`
	GameHistory          []GameHistoryEntry `json:"gameHistory"`
	UnlockedAchievements []AchievementID    `json:"unlockedAchievements"`
	LandmarkProgress     LevelProgress      `json:"landmarkProgress"`
	UsedStaticQuestions  []string           `json:"usedStaticQuestions"`
}

type ProfileStats struct {
	TotalQuizzes int     `json:"totalQuizzes"`
	HighScore    int     `json:"highScore"`
	Accuracy     float64 `json:"accuracy"`
}
