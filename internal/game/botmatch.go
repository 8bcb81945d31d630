package game

import (
	"math/rand"
	"time"

	"github.com/quizhero/core/internal/models"
)

// Bots is the opponent roster, ordered by strength.
var Bots = []models.Bot{
	{ID: "bot-beginner", Name: "Rookie Ravi", Avatar: "🤖", Rating: 800, Difficulty: models.DifficultyEasy, Accuracy: 0.5},
	{ID: "bot-intermediate", Name: "Clever Kiran", Avatar: "🦾", Rating: 1200, Difficulty: models.DifficultyMedium, Accuracy: 0.7},
	{ID: "bot-advanced", Name: "Sharp Shreya", Avatar: "🧠", Rating: 1600, Difficulty: models.DifficultyHard, Accuracy: 0.85},
	{ID: "bot-expert", Name: "Grandmaster Gita", Avatar: "👑", Rating: 2000, Difficulty: models.DifficultyHard, Accuracy: 0.95},
}

// OpponentFor picks the weakest bot playing at the requested
// difficulty. Unknown difficulties get the mid-tier bot.
func OpponentFor(difficulty models.Difficulty) models.Bot {
	for _, b := range Bots {
		if b.Difficulty == difficulty {
			return b
		}
	}
	return Bots[1]
}

type botAnswer struct {
	Selected string
	Correct  bool
	Points   int
	Delay    time.Duration
}

func difficultyMultiplier(d models.Difficulty) float64 {
	switch d {
	case models.DifficultyEasy:
		return 1.0
	case models.DifficultyMedium:
		return 1.2
	case models.DifficultyHard:
		return 1.5
	default:
		return 1.2
	}
}

// simulateBotAnswer rolls the opponent's answer for one question.
// Accuracy is the chance of a correct pick; wrong picks choose a
// random incorrect option. Harder questions slow the bot down.
func simulateBotAnswer(rng *rand.Rand, b models.Bot, q models.Question) botAnswer {
	base := 1500 + (1-b.Accuracy)*3000
	delayMs := base*difficultyMultiplier(q.Difficulty) + rng.Float64()*1500
	delay := time.Duration(delayMs) * time.Millisecond

	if rng.Float64() < b.Accuracy {
		return botAnswer{
			Selected: q.Answer,
			Correct:  true,
			Points:   100 + rng.Intn(5)*5,
			Delay:    delay,
		}
	}

	var wrong []string
	for _, opt := range q.Options {
		if opt != q.Answer {
			wrong = append(wrong, opt)
		}
	}
	selected := ""
	if len(wrong) > 0 {
		selected = wrong[rng.Intn(len(wrong))]
	}
	return botAnswer{Selected: selected, Delay: delay}
}
