package game

import "github.com/quizhero/core/internal/models"

const (
	DefaultQuestionCount = 10
	SurvivalBatchSize    = 5
	StartingLives        = 3

	// LandmarkUnlockThreshold is the correct-answer count that opens
	// the next level. Note 7 of 10 earns two stars but a perfect run
	// is required for three.
	LandmarkUnlockThreshold = 7

	hintPenaltyQuiz     = 25
	hintPenaltyLandmark = 5
)

// QuizPoints scores one classic, AI, daily or survival answer. A wrong
// answer is worth nothing regardless of speed or hints.
func QuizPoints(correct bool, timeLeft int, hintUsed bool) int {
	if !correct {
		return 0
	}
	points := 50 + timeLeft*5
	if hintUsed {
		points -= hintPenaltyQuiz
	}
	if points < 0 {
		points = 0
	}
	return points
}

// LandmarkPoints scores a landmark answer. Flat value, no time bonus.
func LandmarkPoints(correct bool, hintUsed bool) int {
	if !correct {
		return 0
	}
	points := 10
	if hintUsed {
		points -= hintPenaltyLandmark
	}
	if points < 0 {
		points = 0
	}
	return points
}

// Stars rates a finished landmark level.
func Stars(correct, total int) int {
	switch {
	case total > 0 && correct == total:
		return 3
	case correct >= LandmarkUnlockThreshold:
		return 2
	case correct > 0:
		return 1
	default:
		return 0
	}
}

// WaveDifficulty ramps survival waves: the first is easy, the next
// two medium, everything after hard.
func WaveDifficulty(wave int) models.Difficulty {
	switch {
	case wave <= 1:
		return models.DifficultyEasy
	case wave <= 3:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}
