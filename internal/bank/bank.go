package bank

import (
	"math/rand"
	"sync"

	"github.com/quizhero/core/internal/models"
)

// Bank holds the built-in question pool. Draws exclude questions a
// player has already seen; the used set is seeded from the profile at
// startup and grows as sessions consume questions.
type Bank struct {
	mu        sync.Mutex
	static    []models.StaticQuestion
	landmarks []models.LandmarkQuestion
	used      map[string]bool
	rng       *rand.Rand
}

func New(static []models.StaticQuestion, landmarks []models.LandmarkQuestion, rng *rand.Rand) *Bank {
	return &Bank{
		static:    static,
		landmarks: landmarks,
		used:      make(map[string]bool),
		rng:       rng,
	}
}

// Default returns a bank backed by the built-in question data.
func Default(rng *rand.Rand) *Bank {
	return New(staticQuestions, landmarkQuestions, rng)
}

func (b *Bank) MarkUsed(keys []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range keys {
		b.used[k] = true
	}
}

func matches(sq models.StaticQuestion, category models.Category, difficulty models.Difficulty) bool {
	if category != "" && category != models.CategoryAll && sq.Category != category {
		return false
	}
	if difficulty != "" && sq.Difficulty != difficulty {
		return false
	}
	return true
}

// CountUnused reports how many unseen questions match the filter.
func (b *Bank) CountUnused(category models.Category, difficulty models.Difficulty) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, sq := range b.static {
		if matches(sq, category, difficulty) && !b.used[sq.Key()] {
			n++
		}
	}
	return n
}

// Draw samples up to count unseen questions, marks them used, and
// returns the localized questions plus their keys for persistence.
func (b *Bank) Draw(category models.Category, difficulty models.Difficulty, loc models.Locale, count int) ([]models.Question, []string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var candidates []models.StaticQuestion
	for _, sq := range b.static {
		if matches(sq, category, difficulty) && !b.used[sq.Key()] {
			candidates = append(candidates, sq)
		}
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	questions := make([]models.Question, 0, len(candidates))
	keys := make([]string, 0, len(candidates))
	for _, sq := range candidates {
		b.used[sq.Key()] = true
		questions = append(questions, sq.Localize(loc))
		keys = append(keys, sq.Key())
	}
	return questions, keys
}

// Sample draws without consulting or updating the used set. Bot
// matches use it so head-to-head games never burn bank inventory.
func (b *Bank) Sample(category models.Category, difficulty models.Difficulty, loc models.Locale, count int) []models.Question {
	b.mu.Lock()
	defer b.mu.Unlock()

	var candidates []models.StaticQuestion
	for _, sq := range b.static {
		if matches(sq, category, difficulty) {
			candidates = append(candidates, sq)
		}
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	questions := make([]models.Question, 0, len(candidates))
	for _, sq := range candidates {
		questions = append(questions, sq.Localize(loc))
	}
	return questions
}

// LevelQuestions returns the landmark questions for a level in their
// fixed authored order.
func (b *Bank) LevelQuestions(level int) []models.LandmarkQuestion {
	var out []models.LandmarkQuestion
	for _, lq := range b.landmarks {
		if lq.Level == level {
			out = append(out, lq)
		}
	}
	return out
}

func (b *Bank) MaxLevel() int {
	max := 0
	for _, lq := range b.landmarks {
		if lq.Level > max {
			max = lq.Level
		}
	}
	return max
}
