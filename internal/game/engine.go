package game

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/quizhero/core/internal/achievements"
	"github.com/quizhero/core/internal/bank"
	"github.com/quizhero/core/internal/models"
	"github.com/quizhero/core/internal/profile"
	"github.com/quizhero/core/internal/provider"
)

// ContentSource produces generated question batches.
type ContentSource interface {
	GenerateQuiz(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error)
}

var (
	ErrNoSession     = errors.New("game: no active session")
	ErrWrongPhase    = errors.New("game: operation not valid in current phase")
	ErrUnanswered    = errors.New("game: current question not answered yet")
	ErrUnknownMode   = errors.New("game: unknown mode")
	ErrTopicRequired = errors.New("game: topic is required for an AI quiz")
	ErrLockedLevel   = errors.New("game: level is locked")
)

type Config struct {
	QuestionCount    int
	SurvivalBatch    int
	StartingLives    int
	AutoAdvanceDelay time.Duration
	Locale           models.Locale
}

func DefaultConfig() Config {
	return Config{
		QuestionCount:    DefaultQuestionCount,
		SurvivalBatch:    SurvivalBatchSize,
		StartingLives:    StartingLives,
		AutoAdvanceDelay: 2 * time.Second,
		Locale:           models.LocaleEnglish,
	}
}

type survivalState struct {
	lives int
	wave  int
}

type landmarkState struct {
	level int
	raw   []models.LandmarkQuestion
}

type botState struct {
	opponent models.Bot
	score    int
}

// session is the envelope shared by every mode. In survival, new wave
// batches append to questions and index keeps climbing, so an answer
// is always recorded for questions[i] before index passes i.
type session struct {
	mode       models.Mode
	questions  []models.Question
	index      int
	score      int
	answers    []models.Answer
	difficulty models.Difficulty
	answered   bool
	degraded   bool

	survival *survivalState
	landmark *landmarkState
	bot      *botState
}

// Engine runs one quiz session at a time. Every public method takes
// the engine lock; the lock is released only around provider calls,
// and any state observed before such a call is revalidated through
// the epoch counter afterwards.
type Engine struct {
	mu      sync.Mutex
	cfg     Config
	bank    *bank.Bank
	source  ContentSource
	profile *profile.Store
	rng     *rand.Rand
	now     func() time.Time

	epoch uint64
	phase models.Phase
	sess  *session

	notice  string
	lastErr *models.SessionError

	lastQuiz     *models.QuizResult
	lastLandmark *models.LandmarkResult
	lastSurvival *models.SurvivalResult
	lastBot      *models.BotMatchResult

	advanceTimer *time.Timer
}

func NewEngine(b *bank.Bank, source ContentSource, profiles *profile.Store, cfg Config) *Engine {
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = DefaultQuestionCount
	}
	if cfg.SurvivalBatch <= 0 {
		cfg.SurvivalBatch = SurvivalBatchSize
	}
	if cfg.StartingLives <= 0 {
		cfg.StartingLives = StartingLives
	}
	if cfg.Locale == "" {
		cfg.Locale = models.LocaleEnglish
	}

	b.MarkUsed(profiles.UsedQuestionKeys())

	return &Engine{
		cfg:     cfg,
		bank:    b,
		source:  source,
		profile: profiles,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		phase:   models.PhaseIdle,
	}
}

// ── Session Lifecycle ─────────────────────────────────

// StartSession begins a new session, abandoning any session in
// progress. A returned error means the request itself was invalid;
// content failures surface through the Error phase instead.
func (e *Engine) StartSession(ctx context.Context, req models.StartSessionRequest) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetLocked()

	switch req.Mode {
	case models.ModeClassic:
		return e.startClassicLocked(ctx, req)
	case models.ModeAI:
		return e.startAILocked(ctx, req)
	case models.ModeDaily:
		return e.startDailyLocked(ctx)
	case models.ModeLandmark:
		return e.startLandmarkLocked(req)
	case models.ModeSurvival:
		return e.startSurvivalLocked(ctx)
	case models.ModeBotMatch:
		return e.startBotMatchLocked(req)
	default:
		return ErrUnknownMode
	}
}

func (e *Engine) startClassicLocked(ctx context.Context, req models.StartSessionRequest) error {
	category := req.Category
	if category == "" {
		category = models.CategoryAll
	}
	if !models.ValidCategories[category] {
		return errors.New("game: unknown category")
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	count := e.cfg.QuestionCount
	if req.Count > 0 {
		count = req.Count
	}

	if e.bank.CountUnused(category, difficulty) >= count {
		questions, keys := e.bank.Draw(category, difficulty, e.cfg.Locale, count)
		e.profile.MarkQuestionsUsed(keys)
		e.sess = &session{mode: models.ModeClassic, questions: questions, difficulty: difficulty}
		e.phase = models.PhaseActive
		return nil
	}

	// Bank shortfall. Ask the provider for a full batch before
	// falling back to whatever unseen questions remain.
	questions, stale, err := e.fetchLocked(ctx, providerTopic(category), count, difficulty)
	if stale {
		return nil
	}
	if err != nil {
		log.Printf("[game] WARN: provider failed for classic session: %v", err)
		if avail := e.bank.CountUnused(category, difficulty); avail > 0 {
			remaining, keys := e.bank.Draw(category, difficulty, e.cfg.Locale, avail)
			e.profile.MarkQuestionsUsed(keys)
			e.sess = &session{mode: models.ModeClassic, questions: remaining, difficulty: difficulty, degraded: true}
			e.phase = models.PhaseActive
			e.notice = "Fresh questions are running low. Playing a shorter quiz."
			return nil
		}
		e.failLocked("Content Unavailable", "Could not load quiz questions. Please try again later.")
		return nil
	}

	e.sess = &session{mode: models.ModeClassic, questions: questions, difficulty: difficulty}
	e.phase = models.PhaseActive
	return nil
}

func (e *Engine) startAILocked(ctx context.Context, req models.StartSessionRequest) error {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return ErrTopicRequired
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	count := e.cfg.QuestionCount
	if req.Count > 0 {
		count = req.Count
	}

	questions, stale, err := e.fetchLocked(ctx, topic, count, difficulty)
	if stale {
		return nil
	}
	if err != nil {
		log.Printf("[game] WARN: provider failed for AI session: %v", err)
		e.failLocked("AI Generation Failed", "Could not generate a quiz for that topic. Please try again.")
		return nil
	}

	e.sess = &session{mode: models.ModeAI, questions: questions, difficulty: difficulty}
	e.phase = models.PhaseActive
	return nil
}

func (e *Engine) startDailyLocked(ctx context.Context) error {
	questions, stale, err := e.fetchLocked(ctx, provider.DailyChallengeTopic, e.cfg.QuestionCount, models.DifficultyMedium)
	if stale {
		return nil
	}
	if err != nil {
		log.Printf("[game] WARN: provider failed for daily challenge: %v", err)
		e.failLocked("Daily Challenge Unavailable", "Could not load today's challenge. Please try again later.")
		return nil
	}

	e.sess = &session{mode: models.ModeDaily, questions: questions, difficulty: models.DifficultyMedium}
	e.phase = models.PhaseActive
	return nil
}

func (e *Engine) startLandmarkLocked(req models.StartSessionRequest) error {
	level := req.Level
	if level == 0 {
		level = 1
	}
	if !e.profile.LandmarkProgress()[level].Unlocked {
		return ErrLockedLevel
	}

	raw := e.bank.LevelQuestions(level)
	if len(raw) == 0 {
		e.failLocked("No Questions Found", "There are no landmarks for this level yet.")
		return nil
	}

	questions := make([]models.Question, len(raw))
	for i, lq := range raw {
		questions[i] = lq.AsQuestion()
	}

	e.sess = &session{
		mode:       models.ModeLandmark,
		questions:  questions,
		difficulty: models.DifficultyMedium,
		landmark:   &landmarkState{level: level, raw: raw},
	}
	e.phase = models.PhaseActive
	return nil
}

func (e *Engine) startSurvivalLocked(ctx context.Context) error {
	difficulty := WaveDifficulty(1)
	questions, stale, err := e.fetchLocked(ctx, providerTopic(models.CategoryAll), e.cfg.SurvivalBatch, difficulty)
	if stale {
		return nil
	}
	if err != nil {
		log.Printf("[game] WARN: provider failed for survival: %v", err)
		e.failLocked("Survival Unavailable", "Could not start a survival run. Please try again later.")
		return nil
	}

	e.sess = &session{
		mode:       models.ModeSurvival,
		questions:  questions,
		difficulty: difficulty,
		survival:   &survivalState{lives: e.cfg.StartingLives, wave: 1},
	}
	e.phase = models.PhaseActive
	return nil
}

func (e *Engine) startBotMatchLocked(req models.StartSessionRequest) error {
	category := req.Category
	if category == "" {
		category = models.CategoryAll
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}

	questions := e.bank.Sample(category, difficulty, e.cfg.Locale, e.cfg.QuestionCount)
	if len(questions) == 0 {
		e.failLocked("No Questions Found", "No questions are available for that match.")
		return nil
	}

	e.sess = &session{
		mode:       models.ModeBotMatch,
		questions:  questions,
		difficulty: difficulty,
		bot:        &botState{opponent: OpponentFor(difficulty)},
	}
	e.phase = models.PhaseActive
	return nil
}

// fetchLocked calls the provider with the lock released. On return the
// stale flag reports whether the session was abandoned mid-flight, in
// which case the result must be discarded without touching state.
func (e *Engine) fetchLocked(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, bool, error) {
	e.phase = models.PhaseFetching
	epoch := e.epoch

	e.mu.Unlock()
	questions, err := e.source.GenerateQuiz(ctx, topic, count, difficulty)
	e.mu.Lock()

	if e.epoch != epoch {
		return nil, true, nil
	}
	return questions, false, err
}

// providerTopic maps a category filter to a generation topic.
func providerTopic(category models.Category) string {
	if category == models.CategoryAll {
		return "General Knowledge about India"
	}
	return string(category)
}

// ── Gameplay ──────────────────────────────────────────

// SubmitAnswer resolves the current question. Resubmitting an already
// answered question is a no-op, never a double score.
func (e *Engine) SubmitAnswer(selected string, timeLeft int, hintUsed bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitLocked(selected, timeLeft, hintUsed)
}

func (e *Engine) submitLocked(selected string, timeLeft int, hintUsed bool) error {
	if e.sess == nil {
		return ErrNoSession
	}
	if e.phase != models.PhaseActive {
		return ErrWrongPhase
	}
	s := e.sess
	if s.answered {
		return nil
	}

	q := s.questions[s.index]
	correct := selected != "" && selected == q.Answer

	var points int
	if s.mode == models.ModeLandmark {
		points = LandmarkPoints(correct, hintUsed)
	} else {
		points = QuizPoints(correct, timeLeft, hintUsed)
	}

	s.score += points
	s.answers = append(s.answers, models.Answer{
		Question:       q,
		SelectedAnswer: selected,
		CorrectAnswer:  q.Answer,
		IsCorrect:      correct,
		Points:         points,
	})
	s.answered = true

	if s.bot != nil {
		roll := simulateBotAnswer(e.rng, s.bot.opponent, q)
		if roll.Correct {
			s.bot.score += roll.Points
		}
	}

	if s.survival != nil {
		if !correct {
			s.survival.lives--
			if s.survival.lives <= 0 {
				e.finalizeLocked()
				return nil
			}
		}
		e.scheduleAdvanceLocked()
	}

	return nil
}

// ExpireTimer records a timeout for the current question. It is a
// no-op when the question was already answered, so a late timer that
// lost the race with a submission changes nothing.
func (e *Engine) ExpireTimer() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.phase != models.PhaseActive || e.sess.answered {
		return nil
	}
	return e.submitLocked("", 0, false)
}

// Advance moves to the next question, fetching the next survival wave
// or finalizing when the current batch is exhausted.
func (e *Engine) Advance(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.advanceLocked(ctx)
}

func (e *Engine) advanceLocked(ctx context.Context) error {
	if e.sess == nil {
		return ErrNoSession
	}
	if e.phase != models.PhaseActive {
		return ErrWrongPhase
	}
	s := e.sess
	if !s.answered {
		return ErrUnanswered
	}

	e.cancelTimerLocked()
	s.index++
	s.answered = false

	if s.index < len(s.questions) {
		return nil
	}

	if s.survival != nil && s.survival.lives > 0 {
		s.survival.wave++
		difficulty := WaveDifficulty(s.survival.wave)
		questions, stale, err := e.fetchLocked(ctx, providerTopic(models.CategoryAll), e.cfg.SurvivalBatch, difficulty)
		if stale {
			return nil
		}
		if err != nil {
			log.Printf("[game] WARN: provider failed for survival wave %d: %v", s.survival.wave, err)
			e.failLocked("Connection Lost", "Could not load the next wave.")
			return nil
		}
		s.questions = append(s.questions, questions...)
		s.difficulty = difficulty
		e.phase = models.PhaseActive
		return nil
	}

	e.finalizeLocked()
	return nil
}

// Exit abandons the session. In-flight provider responses and pending
// timers for the old session are invalidated by the epoch bump.
func (e *Engine) Exit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// ── Finalization ──────────────────────────────────────

func (e *Engine) finalizeLocked() {
	s := e.sess
	e.cancelTimerLocked()
	e.phase = models.PhaseFinalizing

	correct := 0
	for _, a := range s.answers {
		if a.IsCorrect {
			correct++
		}
	}
	answers := append([]models.Answer(nil), s.answers...)

	switch {
	case s.landmark != nil:
		total := len(s.questions)
		stars := Stars(correct, total)
		unlockNext := correct >= LandmarkUnlockThreshold
		e.profile.RecordLandmarkResult(s.landmark.level, stars, s.score, unlockNext)
		e.lastLandmark = &models.LandmarkResult{
			Level:          s.landmark.level,
			Score:          s.score,
			Stars:          stars,
			CorrectAnswers: correct,
			TotalQuestions: total,
			UnlockedNext:   unlockNext,
			Answers:        answers,
		}

	case s.survival != nil:
		// Survival runs are not history entries; only the run summary
		// survives.
		e.lastSurvival = &models.SurvivalResult{
			Score:          s.score,
			Wave:           s.survival.wave,
			CorrectAnswers: correct,
			TotalAnswered:  len(s.answers),
		}

	case s.bot != nil:
		won := s.score > s.bot.score
		e.profile.AddAchievements(achievements.CheckBotMatch(won, s.bot.opponent, e.profile.UnlockedSet()))
		e.lastBot = &models.BotMatchResult{
			PlayerScore:    s.score,
			BotScore:       s.bot.score,
			Opponent:       s.bot.opponent,
			Won:            won,
			CorrectAnswers: correct,
			TotalQuestions: len(s.questions),
			Answers:        answers,
		}

	default:
		entry := models.GameHistoryEntry{
			Timestamp:      e.now().UnixMilli(),
			Score:          s.score,
			CorrectAnswers: correct,
			TotalQuestions: len(s.questions),
			Topic:          topicLabel(s),
			Difficulty:     s.difficulty,
			Answers:        answers,
		}
		e.profile.AppendHistory(entry)
		e.profile.AddAchievements(achievements.CheckQuiz(e.profile.Stats(), e.profile.History(), e.profile.UnlockedSet()))
		if s.mode == models.ModeDaily {
			e.profile.MarkDailyChallengeDone()
		}
		e.lastQuiz = &models.QuizResult{
			Mode:           s.mode,
			Score:          s.score,
			CorrectAnswers: correct,
			TotalQuestions: len(s.questions),
			Topic:          entry.Topic,
			Difficulty:     s.difficulty,
			Answers:        answers,
			Degraded:       s.degraded,
		}
	}

	e.phase = models.PhaseResults
}

func topicLabel(s *session) string {
	switch s.mode {
	case models.ModeDaily:
		return "Daily Challenge"
	case models.ModeAI:
		return "AI Generated"
	}
	if len(s.questions) > 0 && s.questions[0].Category != "" {
		return string(s.questions[0].Category)
	}
	return "Mixed"
}

// ── State Access ──────────────────────────────────────

func (e *Engine) State() models.SessionStateResponse {
	e.mu.Lock()
	defer e.mu.Unlock()

	resp := models.SessionStateResponse{
		Phase:  e.phase,
		Notice: e.notice,
		Error:  e.lastErr,
	}
	if e.sess == nil {
		return resp
	}

	s := e.sess
	resp.Mode = s.mode
	resp.Index = s.index
	resp.Total = len(s.questions)
	resp.Score = s.score
	resp.Answered = s.answered

	if e.phase == models.PhaseActive && s.index < len(s.questions) {
		q := s.questions[s.index]
		resp.Question = &q
		if s.landmark != nil && s.index < len(s.landmark.raw) {
			lq := s.landmark.raw[s.index]
			resp.Landmark = &lq
		}
	}
	if s.survival != nil {
		resp.Lives = s.survival.lives
		resp.Wave = s.survival.wave
	}
	if s.bot != nil {
		opponent := s.bot.opponent
		resp.Opponent = &opponent
		resp.OpponentScore = s.bot.score
	}
	return resp
}

func (e *Engine) Results() models.ResultsResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.ResultsResponse{
		Quiz:     e.lastQuiz,
		Landmark: e.lastLandmark,
		Survival: e.lastSurvival,
		BotMatch: e.lastBot,
	}
}

// ── Internal Plumbing ─────────────────────────────────

func (e *Engine) resetLocked() {
	e.epoch++
	e.cancelTimerLocked()
	e.sess = nil
	e.phase = models.PhaseIdle
	e.notice = ""
	e.lastErr = nil
	e.lastQuiz = nil
	e.lastLandmark = nil
	e.lastSurvival = nil
	e.lastBot = nil
}

func (e *Engine) failLocked(title, message string) {
	e.cancelTimerLocked()
	e.sess = nil
	e.phase = models.PhaseError
	e.lastErr = &models.SessionError{Title: title, Message: message}
}

// scheduleAdvanceLocked arms the survival auto-advance. The callback
// revalidates epoch, phase and question index under the lock, so a
// timer that outlived its question cannot advance the wrong one.
func (e *Engine) scheduleAdvanceLocked() {
	if e.cfg.AutoAdvanceDelay <= 0 {
		return
	}
	e.cancelTimerLocked()

	epoch := e.epoch
	index := e.sess.index
	e.advanceTimer = time.AfterFunc(e.cfg.AutoAdvanceDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.epoch != epoch || e.sess == nil || e.phase != models.PhaseActive {
			return
		}
		if e.sess.index != index || !e.sess.answered {
			return
		}
		if err := e.advanceLocked(context.Background()); err != nil {
			log.Printf("[game] WARN: auto-advance failed: %v", err)
		}
	})
}

func (e *Engine) cancelTimerLocked() {
	if e.advanceTimer != nil {
		e.advanceTimer.Stop()
		e.advanceTimer = nil
	}
}
