package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quizhero/core/internal/models"
	"github.com/quizhero/core/internal/storage"
)

const (
	userDataKey    = "quizHeroUserData"
	themeKey       = "quizHeroTheme"
	themeColorKey  = "quizHeroThemeColor"
	wallpaperKey   = "quizHeroWallpaper"
	soundKey       = "quizHeroSoundEnabled"
	onboardingKey  = "quizHeroOnboardingCompleted"
	dailyKeyPrefix = "quizHeroDailyChallenge_"
)

// Store owns the profile document. All reads are served from memory;
// every mutation rewrites the full document to the KV. Persistence
// failures are logged and swallowed so gameplay never blocks on disk.
type Store struct {
	kv  storage.KV
	now func() time.Time

	mu   sync.Mutex
	data models.SavedUserData
}

func NewStore(kv storage.KV) *Store {
	s := &Store{kv: kv, now: time.Now}
	s.load()
	return s
}

// NewStoreWithClock is used by tests that need a fixed clock.
func NewStoreWithClock(kv storage.KV, now func() time.Time) *Store {
	s := &Store{kv: kv, now: now}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := s.kv.Get(userDataKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[profile] WARN: failed to read profile, using defaults: %v", err)
		}
		s.data = s.defaultUserData()
		return
	}

	var data models.SavedUserData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		log.Printf("[profile] WARN: corrupt profile document, resetting to defaults: %v", err)
		s.data = s.defaultUserData()
		return
	}
	s.data = data
	s.normalize()
}

func (s *Store) defaultUserData() models.SavedUserData {
	now := s.now()
	return models.SavedUserData{
		CurrentUser: models.User{
			ID:       fmt.Sprintf("user_%d", now.UnixMilli()),
			Name:     "Player",
			Avatar:   "🦉",
			JoinDate: now.UnixMilli(),
			Rating:   1200,
		},
		GameHistory:          []models.GameHistoryEntry{},
		UnlockedAchievements: []models.AchievementID{},
		LandmarkProgress:     models.LevelProgress{1: {Unlocked: true}},
		UsedStaticQuestions:  []string{},
	}
}

// normalize repairs partially valid documents. Level 1 is always
// unlocked so landmark mode has an entry point.
func (s *Store) normalize() {
	if s.data.CurrentUser.ID == "" {
		s.data.CurrentUser = s.defaultUserData().CurrentUser
	}
	if s.data.LandmarkProgress == nil {
		s.data.LandmarkProgress = models.LevelProgress{}
	}
	rec := s.data.LandmarkProgress[1]
	rec.Unlocked = true
	s.data.LandmarkProgress[1] = rec
	if s.data.GameHistory == nil {
		s.data.GameHistory = []models.GameHistoryEntry{}
	}
	if s.data.UnlockedAchievements == nil {
		s.data.UnlockedAchievements = []models.AchievementID{}
	}
	if s.data.UsedStaticQuestions == nil {
		s.data.UsedStaticQuestions = []string{}
	}
}

func (s *Store) saveLocked() {
	raw, err := json.Marshal(s.data)
	if err != nil {
		log.Printf("[profile] WARN: failed to encode profile: %v", err)
		return
	}
	if err := s.kv.Set(userDataKey, string(raw)); err != nil {
		log.Printf("[profile] WARN: failed to persist profile: %v", err)
	}
}

// ── Profile Document ──────────────────────────────────

func (s *Store) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CurrentUser
}

func (s *Store) UpdateUser(name, avatar string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != "" {
		s.data.CurrentUser.Name = name
	}
	if avatar != "" {
		s.data.CurrentUser.Avatar = avatar
	}
	s.saveLocked()
	return s.data.CurrentUser
}

func (s *Store) History() []models.GameHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.GameHistoryEntry(nil), s.data.GameHistory...)
}

// AppendHistory prepends so the most recent game is first.
func (s *Store) AppendHistory(entry models.GameHistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.GameHistory = append([]models.GameHistoryEntry{entry}, s.data.GameHistory...)
	s.saveLocked()
}

func (s *Store) Stats() models.ProfileStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.ProfileStats{TotalQuizzes: len(s.data.GameHistory)}
	totalCorrect, totalQuestions := 0, 0
	for _, e := range s.data.GameHistory {
		if e.Score > stats.HighScore {
			stats.HighScore = e.Score
		}
		totalCorrect += e.CorrectAnswers
		totalQuestions += e.TotalQuestions
	}
	if totalQuestions > 0 {
		stats.Accuracy = float64(totalCorrect) / float64(totalQuestions) * 100
	}
	return stats
}

func (s *Store) UnlockedAchievements() []models.AchievementID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AchievementID(nil), s.data.UnlockedAchievements...)
}

func (s *Store) UnlockedSet() map[models.AchievementID]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[models.AchievementID]bool, len(s.data.UnlockedAchievements))
	for _, id := range s.data.UnlockedAchievements {
		set[id] = true
	}
	return set
}

func (s *Store) AddAchievements(ids []models.AchievementID) {
	if len(ids) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := make(map[models.AchievementID]bool, len(s.data.UnlockedAchievements))
	for _, id := range s.data.UnlockedAchievements {
		existing[id] = true
	}
	added := false
	for _, id := range ids {
		if !existing[id] {
			s.data.UnlockedAchievements = append(s.data.UnlockedAchievements, id)
			existing[id] = true
			added = true
		}
	}
	if added {
		s.saveLocked()
	}
}

func (s *Store) LandmarkProgress() models.LevelProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(models.LevelProgress, len(s.data.LandmarkProgress))
	for level, rec := range s.data.LandmarkProgress {
		out[level] = rec
	}
	return out
}

// RecordLandmarkResult merges a finished level into progress. Stars
// and high score only ever increase. Replaying never re-locks levels.
func (s *Store) RecordLandmarkResult(level, stars, score int, unlockNext bool) models.LevelRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.data.LandmarkProgress[level]
	rec.Unlocked = true
	if stars > rec.Stars {
		rec.Stars = stars
	}
	if score > rec.HighScore {
		rec.HighScore = score
	}
	s.data.LandmarkProgress[level] = rec

	if unlockNext {
		next := s.data.LandmarkProgress[level+1]
		next.Unlocked = true
		s.data.LandmarkProgress[level+1] = next
	}

	s.saveLocked()
	return rec
}

func (s *Store) UsedQuestionKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.data.UsedStaticQuestions...)
}

func (s *Store) MarkQuestionsUsed(keys []string) {
	if len(keys) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := make(map[string]bool, len(s.data.UsedStaticQuestions))
	for _, k := range s.data.UsedStaticQuestions {
		existing[k] = true
	}
	for _, k := range keys {
		if !existing[k] {
			s.data.UsedStaticQuestions = append(s.data.UsedStaticQuestions, k)
			existing[k] = true
		}
	}
	s.saveLocked()
}

// ── Daily Challenge ───────────────────────────────────

func dailyKey(day time.Time) string {
	return dailyKeyPrefix + day.Format("2006-01-02")
}

func (s *Store) DailyChallengeDone() bool {
	_, err := s.kv.Get(dailyKey(s.now()))
	return err == nil
}

func (s *Store) MarkDailyChallengeDone() {
	if err := s.kv.Set(dailyKey(s.now()), "done"); err != nil {
		log.Printf("[profile] WARN: failed to record daily challenge: %v", err)
	}
}

// ── Settings Flags ────────────────────────────────────

func (s *Store) getFlag(key, fallback string) string {
	value, err := s.kv.Get(key)
	if err != nil {
		return fallback
	}
	return value
}

func (s *Store) setFlag(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		log.Printf("[profile] WARN: failed to persist %s: %v", key, err)
	}
}

func (s *Store) Theme() string          { return s.getFlag(themeKey, "light") }
func (s *Store) SetTheme(v string)      { s.setFlag(themeKey, v) }
func (s *Store) ThemeColor() string     { return s.getFlag(themeColorKey, "default") }
func (s *Store) SetThemeColor(v string) { s.setFlag(themeColorKey, v) }
func (s *Store) Wallpaper() string      { return s.getFlag(wallpaperKey, "") }
func (s *Store) SetWallpaper(v string)  { s.setFlag(wallpaperKey, v) }
func (s *Store) SoundEnabled() bool     { return s.getFlag(soundKey, "true") == "true" }
func (s *Store) SetSoundEnabled(v bool) { s.setFlag(soundKey, fmt.Sprintf("%t", v)) }
func (s *Store) Onboarded() bool        { return s.getFlag(onboardingKey, "false") == "true" }
func (s *Store) MarkOnboarded()         { s.setFlag(onboardingKey, "true") }
