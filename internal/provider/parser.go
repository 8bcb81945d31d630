package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizhero/core/internal/models"
)

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseQuestions decodes a model response into playable questions.
// Questions missing a category or difficulty inherit the request's
// topic and difficulty. An empty batch is a failure, never a success.
func ParseQuestions(responseBody string, topic string, difficulty models.Difficulty) ([]models.Question, error) {
	cleaned := stripCodeFences(responseBody)

	var questions []models.Question
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	for i := range questions {
		if questions[i].Category == "" {
			questions[i].Category = models.Category(topic)
		}
		if questions[i].Difficulty == "" {
			questions[i].Difficulty = difficulty
		}
	}

	return questions, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func validateQuestions(questions []models.Question) error {
	var errs []string

	if len(questions) == 0 {
		return &ValidationError{Errors: []string{"no questions in batch"}}
	}

	for i, q := range questions {
		qNum := i + 1

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty question text", qNum))
		}

		if len(q.Options) != 4 {
			errs = append(errs, fmt.Sprintf("question %d: expected 4 options, got %d", qNum, len(q.Options)))
			continue
		}

		seen := make(map[string]bool, 4)
		answerFound := false
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, fmt.Sprintf("question %d: option %d is empty", qNum, j+1))
			}
			if seen[opt] {
				errs = append(errs, fmt.Sprintf("question %d: duplicate option %q", qNum, opt))
			}
			seen[opt] = true
			if opt == q.Answer {
				answerFound = true
			}
		}

		if !answerFound {
			errs = append(errs, fmt.Sprintf("question %d: correctAnswer %q not among options", qNum, q.Answer))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
