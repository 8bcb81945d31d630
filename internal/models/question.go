package models

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
	LocaleTelugu  Locale = "te"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

type Category string

const (
	CategoryAll            Category = "All"
	CategoryGK             Category = "GK"
	CategorySports         Category = "Sports"
	CategoryBollywood      Category = "Bollywood"
	CategoryScience        Category = "Science"
	CategoryTechnology     Category = "Technology"
	CategoryHistory        Category = "History"
	CategoryGeography      Category = "Geography"
	CategoryCurrentAffairs Category = "CurrentAffairs"
)

var ValidCategories = map[Category]bool{
	CategoryAll:            true,
	CategoryGK:             true,
	CategorySports:         true,
	CategoryBollywood:      true,
	CategoryScience:        true,
	CategoryTechnology:     true,
	CategoryHistory:        true,
	CategoryGeography:      true,
	CategoryCurrentAffairs: true,
}

// ── Core Structs ───────────────────────────────────────

// Question is the single localized form every mode plays.
type Question struct {
	Prompt     string     `json:"question"`
	Options    []string   `json:"options"`
	Answer     string     `json:"correctAnswer"`
	Category   Category   `json:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// StaticQuestion is a bank entry carrying every supported locale.
// Key() identifies it across sessions for used-question tracking.
type StaticQuestion struct {
	Prompt     map[Locale]string   `json:"question"`
	Options    map[Locale][]string `json:"options"`
	Answer     map[Locale]string   `json:"correctAnswer"`
	Category   Category            `json:"category"`
	Difficulty Difficulty          `json:"difficulty"`
}

func (sq StaticQuestion) Key() string {
	return sq.Prompt[LocaleEnglish]
}

// Localize falls back to English when a locale is missing.
func (sq StaticQuestion) Localize(loc Locale) Question {
	prompt, ok := sq.Prompt[loc]
	if !ok {
		prompt = sq.Prompt[LocaleEnglish]
	}
	options, ok := sq.Options[loc]
	if !ok || len(options) == 0 {
		options = sq.Options[LocaleEnglish]
	}
	answer, ok := sq.Answer[loc]
	if !ok {
		answer = sq.Answer[LocaleEnglish]
	}
	return Question{
		Prompt:     prompt,
		Options:    append([]string(nil), options...),
		Answer:     answer,
		Category:   sq.Category,
		Difficulty: sq.Difficulty,
	}
}

type LandmarkQuestion struct {
	ID          string   `json:"id"`
	Level       int      `json:"level"`
	Name        string   `json:"name"`
	ImageURL    string   `json:"imageUrl"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"correctAnswer"`
	Hint        string   `json:"hint,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (lq LandmarkQuestion) AsQuestion() Question {
	return Question{
		Prompt:     lq.Prompt,
		Options:    append([]string(nil), lq.Options...),
		Answer:     lq.Answer,
		Category:   "Landmarks",
		Difficulty: DifficultyMedium,
	}
}
