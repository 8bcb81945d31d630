package provider

import (
	"fmt"

	"github.com/quizhero/core/internal/models"
)

// DailyChallengeTopic is the fixed topic used for the daily quiz.
const DailyChallengeTopic = "Today's unique and interesting facts about India"

func QuizSystemPrompt() string {
	return `You are a trivia question writer for a quiz game.

You write clear, factually accurate multiple-choice questions. Every question has exactly 4 options, one of which is correct. Wrong options must be plausible but unambiguously incorrect.

Return ONLY a JSON array, no markdown fences, no commentary. Each element:
{
  "question": "the question text",
  "options": ["option 1", "option 2", "option 3", "option 4"],
  "correctAnswer": "the correct option, copied exactly from options",
  "category": "a short category label",
  "difficulty": "Easy" | "Medium" | "Hard"
}`
}

func BuildQuizUserPrompt(topic string, count int, difficulty models.Difficulty) string {
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	return fmt.Sprintf(`Generate %d %s trivia questions about: %s

Requirements:
- Exactly 4 distinct options per question
- The correctAnswer string must appear verbatim in the options array
- Vary the position of the correct answer across questions
- No two questions may cover the same fact
- Keep question text under 200 characters`, count, difficulty, topic)
}
