package achievements

import "github.com/quizhero/core/internal/models"

type Definition struct {
	ID          models.AchievementID `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
}

var Catalog = []Definition{
	{ID: models.AchievementFirstQuiz, Title: "First Steps", Description: "Complete your first quiz"},
	{ID: models.AchievementQuizMaster, Title: "Quiz Master", Description: "Complete 20 quizzes"},
	{ID: models.AchievementPerfectScore, Title: "Flawless", Description: "Answer every question in a quiz correctly"},
	{ID: models.AchievementCategoryExplorer, Title: "Category Explorer", Description: "Play a quiz in every category"},
	{ID: models.AchievementBeatBeginnerBot, Title: "Warming Up", Description: "Beat an easy opponent"},
	{ID: models.AchievementBeatExpertBot, Title: "Giant Slayer", Description: "Beat an opponent rated 2000 or above"},
	{ID: models.AchievementBotSlayer, Title: "Bot Slayer", Description: "Win 5 matches in a row"},
}

var classicCategories = []models.Category{
	models.CategoryGK,
	models.CategorySports,
	models.CategoryBollywood,
	models.CategoryScience,
	models.CategoryTechnology,
	models.CategoryHistory,
	models.CategoryGeography,
	models.CategoryCurrentAffairs,
}

// CheckQuiz evaluates quiz achievements after a game has been added
// to history. History is newest-first; history[0] is the game that
// just finished. Only achievements not yet unlocked are returned.
func CheckQuiz(stats models.ProfileStats, history []models.GameHistoryEntry, unlocked map[models.AchievementID]bool) []models.AchievementID {
	var newly []models.AchievementID

	if stats.TotalQuizzes >= 1 && !unlocked[models.AchievementFirstQuiz] {
		newly = append(newly, models.AchievementFirstQuiz)
	}

	if stats.TotalQuizzes >= 20 && !unlocked[models.AchievementQuizMaster] {
		newly = append(newly, models.AchievementQuizMaster)
	}

	if len(history) > 0 && !unlocked[models.AchievementPerfectScore] {
		last := history[0]
		if last.TotalQuestions > 0 && last.CorrectAnswers == last.TotalQuestions {
			newly = append(newly, models.AchievementPerfectScore)
		}
	}

	if !unlocked[models.AchievementCategoryExplorer] {
		played := make(map[string]bool, len(history))
		for _, game := range history {
			played[game.Topic] = true
		}
		all := true
		for _, cat := range classicCategories {
			if !played[string(cat)] {
				all = false
				break
			}
		}
		if all {
			newly = append(newly, models.AchievementCategoryExplorer)
		}
	}

	return newly
}

// CheckBotMatch evaluates head-to-head achievements. Losses unlock
// nothing. Bot Slayer needs consecutive-win tracking the profile does
// not record yet, so it stays locked.
func CheckBotMatch(won bool, opponent models.Bot, unlocked map[models.AchievementID]bool) []models.AchievementID {
	if !won {
		return nil
	}

	var newly []models.AchievementID
	if opponent.Difficulty == models.DifficultyEasy && !unlocked[models.AchievementBeatBeginnerBot] {
		newly = append(newly, models.AchievementBeatBeginnerBot)
	}
	if opponent.Rating >= 2000 && !unlocked[models.AchievementBeatExpertBot] {
		newly = append(newly, models.AchievementBeatExpertBot)
	}
	return newly
}
