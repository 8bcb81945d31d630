package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/quizhero/core/internal/bank"
	"github.com/quizhero/core/internal/models"
	"github.com/quizhero/core/internal/profile"
	"github.com/quizhero/core/internal/storage"
)

type fakeSource struct {
	fn    func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error)
	calls int
}

func (f *fakeSource) GenerateQuiz(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
	f.calls++
	return f.fn(ctx, topic, count, difficulty)
}

func batchSource(t *testing.T) *fakeSource {
	t.Helper()
	return &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		return makeBatch(count, difficulty), nil
	}}
}

func failingSource(t *testing.T) *fakeSource {
	t.Helper()
	return &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		return nil, errors.New("model unavailable")
	}}
}

func forbiddenSource(t *testing.T) *fakeSource {
	t.Helper()
	return &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		t.Error("provider must not be called when the bank is sufficient")
		return nil, errors.New("unexpected call")
	}}
}

func makeStatic(n int, category models.Category, difficulty models.Difficulty) []models.StaticQuestion {
	out := make([]models.StaticQuestion, n)
	for i := range out {
		prompt := fmt.Sprintf("%s %s question %d", category, difficulty, i)
		out[i] = models.StaticQuestion{
			Prompt:     map[models.Locale]string{models.LocaleEnglish: prompt},
			Options:    map[models.Locale][]string{models.LocaleEnglish: {"right " + prompt, "wrong a", "wrong b", "wrong c"}},
			Answer:     map[models.Locale]string{models.LocaleEnglish: "right " + prompt},
			Category:   category,
			Difficulty: difficulty,
		}
	}
	return out
}

func makeBatch(n int, difficulty models.Difficulty) []models.Question {
	out := make([]models.Question, n)
	for i := range out {
		out[i] = models.Question{
			Prompt:     fmt.Sprintf("generated %s %d", difficulty, i),
			Options:    []string{"yes", "no", "maybe", "never"},
			Answer:     "yes",
			Category:   models.CategoryGK,
			Difficulty: difficulty,
		}
	}
	return out
}

func makeLandmarks(level, n int) []models.LandmarkQuestion {
	out := make([]models.LandmarkQuestion, n)
	for i := range out {
		out[i] = models.LandmarkQuestion{
			ID:      fmt.Sprintf("lm-%d-%d", level, i),
			Level:   level,
			Name:    fmt.Sprintf("Monument %d", i),
			Prompt:  fmt.Sprintf("level %d landmark %d?", level, i),
			Options: []string{"this one", "that one", "another", "none"},
			Answer:  "this one",
		}
	}
	return out
}

func testConfig() Config {
	return Config{
		QuestionCount: 10,
		SurvivalBatch: 5,
		StartingLives: 3,
		Locale:        models.LocaleEnglish,
	}
}

func newTestEngine(t *testing.T, static []models.StaticQuestion, landmarks []models.LandmarkQuestion, src ContentSource, cfg Config) (*Engine, *profile.Store) {
	t.Helper()
	store := profile.NewStore(storage.NewMemoryKV())
	b := bank.New(static, landmarks, rand.New(rand.NewSource(1)))
	e := NewEngine(b, src, store, cfg)
	e.rng = rand.New(rand.NewSource(1))
	e.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return e, store
}

// playThrough answers every remaining question and advances until the
// session leaves the Active phase. pickCorrect decides per question
// index whether to answer correctly.
func playThrough(t *testing.T, e *Engine, timeLeft int, pickCorrect func(i int) bool) {
	t.Helper()
	for {
		st := e.State()
		if st.Phase != models.PhaseActive {
			return
		}
		if st.Question == nil {
			t.Fatal("active phase without a current question")
		}
		selected := st.Question.Answer
		if !pickCorrect(st.Index) {
			selected = "definitely wrong"
		}
		if err := e.SubmitAnswer(selected, timeLeft, false); err != nil {
			t.Fatalf("SubmitAnswer at index %d: %v", st.Index, err)
		}
		if e.State().Phase != models.PhaseActive {
			return
		}
		if err := e.Advance(context.Background()); err != nil {
			t.Fatalf("Advance at index %d: %v", st.Index, err)
		}
	}
}

// ── Classic ───────────────────────────────────────────

func TestClassicBankSufficientNeverCallsProvider(t *testing.T) {
	src := forbiddenSource(t)
	e, store := newTestEngine(t, makeStatic(12, models.CategoryGK, models.DifficultyMedium), nil, src, testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Phase != models.PhaseActive || st.Total != 10 {
		t.Fatalf("expected active session of 10, got phase=%s total=%d", st.Phase, st.Total)
	}

	playThrough(t, e, 10, func(int) bool { return true })

	if got := e.State().Phase; got != models.PhaseResults {
		t.Fatalf("expected results phase, got %s", got)
	}
	result := e.Results().Quiz
	if result == nil {
		t.Fatal("no quiz result")
	}
	if result.Score != 1000 {
		t.Errorf("score = %d, want 10 correct * (50 + 10*5) = 1000", result.Score)
	}
	sum := 0
	for _, a := range result.Answers {
		sum += a.Points
	}
	if sum != result.Score {
		t.Errorf("final score %d != sum of answer points %d", result.Score, sum)
	}
	if len(result.Answers) != result.TotalQuestions {
		t.Errorf("answers %d != total %d", len(result.Answers), result.TotalQuestions)
	}

	history := store.History()
	if len(history) != 1 || history[0].Topic != "GK" {
		t.Errorf("expected one GK history entry, got %+v", history)
	}
	if !store.UnlockedSet()[models.AchievementFirstQuiz] {
		t.Error("firstQuiz should unlock after the first game")
	}
	if !store.UnlockedSet()[models.AchievementPerfectScore] {
		t.Error("perfectScore should unlock after a flawless game")
	}
	if src.calls != 0 {
		t.Errorf("provider called %d times", src.calls)
	}
}

func TestClassicShortfallUsesProvider(t *testing.T) {
	var gotTopic string
	src := &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		gotTopic = topic
		return makeBatch(count, difficulty), nil
	}}
	e, _ := newTestEngine(t, makeStatic(3, models.CategoryGK, models.DifficultyMedium), nil, src, testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Phase != models.PhaseActive || st.Total != 10 {
		t.Fatalf("expected full provider batch, got phase=%s total=%d", st.Phase, st.Total)
	}
	if gotTopic != "GK" {
		t.Errorf("provider topic = %q, want GK", gotTopic)
	}
	if st.Notice != "" {
		t.Errorf("a successful provider fetch is not degraded, notice=%q", st.Notice)
	}
}

func TestClassicProviderFailureFallsBackToBank(t *testing.T) {
	e, store := newTestEngine(t, makeStatic(3, models.CategoryGK, models.DifficultyMedium), nil, failingSource(t), testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Phase != models.PhaseActive {
		t.Fatalf("expected degraded active session, got %s", st.Phase)
	}
	if st.Total != 3 {
		t.Errorf("expected the 3 remaining bank questions, got %d", st.Total)
	}
	if st.Notice == "" {
		t.Error("degraded session must carry a notice")
	}

	playThrough(t, e, 5, func(int) bool { return true })

	result := e.Results().Quiz
	if result == nil || !result.Degraded {
		t.Errorf("expected degraded quiz result, got %+v", result)
	}
	// Degraded sessions still count as normal completed games.
	if len(store.History()) != 1 {
		t.Errorf("degraded game missing from history")
	}
}

func TestClassicProviderFailureWithEmptyBankErrors(t *testing.T) {
	e, _ := newTestEngine(t, nil, nil, failingSource(t), testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Phase != models.PhaseError {
		t.Fatalf("expected error phase, got %s", st.Phase)
	}
	if st.Error == nil || st.Error.Title != "Content Unavailable" {
		t.Errorf("unexpected session error: %+v", st.Error)
	}
}

// ── AI and Daily ──────────────────────────────────────

func TestAIFailureHasNoBankFallback(t *testing.T) {
	// Plenty of bank questions available, but AI mode must not use them.
	e, _ := newTestEngine(t, makeStatic(20, models.CategoryGK, models.DifficultyMedium), nil, failingSource(t), testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeAI, Topic: "space missions",
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Phase != models.PhaseError {
		t.Fatalf("expected error phase, got %s", st.Phase)
	}
	if st.Error == nil || st.Error.Title != "AI Generation Failed" {
		t.Errorf("unexpected session error: %+v", st.Error)
	}
}

func TestAIRequiresTopic(t *testing.T) {
	e, _ := newTestEngine(t, nil, nil, batchSource(t), testConfig())

	err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeAI, Topic: "   "})
	if !errors.Is(err, ErrTopicRequired) {
		t.Fatalf("expected ErrTopicRequired, got %v", err)
	}
	if e.State().Phase != models.PhaseIdle {
		t.Errorf("rejected request must leave the engine idle, got %s", e.State().Phase)
	}
}

func TestDailyChallengeCompletion(t *testing.T) {
	e, store := newTestEngine(t, nil, nil, batchSource(t), testConfig())

	if store.DailyChallengeDone() {
		t.Fatal("daily challenge should start incomplete")
	}
	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeDaily}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	playThrough(t, e, 10, func(int) bool { return true })

	if !store.DailyChallengeDone() {
		t.Error("finishing the daily challenge must record it")
	}
	history := store.History()
	if len(history) != 1 || history[0].Topic != "Daily Challenge" {
		t.Errorf("expected Daily Challenge history entry, got %+v", history)
	}
	if history[0].Difficulty != models.DifficultyMedium {
		t.Errorf("daily challenge difficulty = %q, want Medium", history[0].Difficulty)
	}
}

// ── Answer Handling ───────────────────────────────────

func TestSubmitAnswerIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, makeStatic(12, models.CategoryGK, models.DifficultyMedium), nil, forbiddenSource(t), testConfig())
	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	answer := e.State().Question.Answer
	if err := e.SubmitAnswer(answer, 10, false); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	score := e.State().Score

	if err := e.SubmitAnswer(answer, 30, false); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	st := e.State()
	if st.Score != score {
		t.Errorf("resubmission changed score %d -> %d", score, st.Score)
	}
	if st.Index != 0 {
		t.Errorf("resubmission moved index to %d", st.Index)
	}
}

func TestTimeoutRecordsSyntheticAnswer(t *testing.T) {
	e, _ := newTestEngine(t, makeStatic(12, models.CategoryGK, models.DifficultyMedium), nil, forbiddenSource(t), testConfig())
	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if err := e.ExpireTimer(); err != nil {
		t.Fatalf("ExpireTimer: %v", err)
	}
	st := e.State()
	if !st.Answered || st.Score != 0 {
		t.Errorf("timeout should record a zero-point answer, got answered=%v score=%d", st.Answered, st.Score)
	}

	// A late timer firing after an answer must change nothing.
	if err := e.ExpireTimer(); err != nil {
		t.Fatalf("second ExpireTimer: %v", err)
	}
	if err := e.Advance(context.Background()); err != nil {
		t.Fatalf("Advance after timeout: %v", err)
	}
	if got := e.State().Index; got != 1 {
		t.Errorf("index = %d after advance, want 1", got)
	}

	playThrough(t, e, 10, func(int) bool { return true })
	result := e.Results().Quiz
	if result.Answers[0].SelectedAnswer != "" || result.Answers[0].Points != 0 {
		t.Errorf("synthetic answer malformed: %+v", result.Answers[0])
	}
	if result.CorrectAnswers != 9 {
		t.Errorf("correct answers = %d, want 9", result.CorrectAnswers)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	e, _ := newTestEngine(t, makeStatic(12, models.CategoryGK, models.DifficultyMedium), nil, forbiddenSource(t), testConfig())
	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if err := e.Advance(context.Background()); !errors.Is(err, ErrUnanswered) {
		t.Errorf("expected ErrUnanswered, got %v", err)
	}
}

func TestSubmitOutsideActivePhase(t *testing.T) {
	e, _ := newTestEngine(t, nil, nil, batchSource(t), testConfig())

	if err := e.SubmitAnswer("x", 10, false); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession when idle, got %v", err)
	}

	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeDaily}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	playThrough(t, e, 10, func(int) bool { return true })

	if err := e.SubmitAnswer("x", 10, false); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("expected ErrWrongPhase in results, got %v", err)
	}
}

// ── Landmark ──────────────────────────────────────────

func startLandmark(t *testing.T, e *Engine, level int) {
	t.Helper()
	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeLandmark, Level: level}); err != nil {
		t.Fatalf("StartSession landmark level %d: %v", level, err)
	}
}

func TestLandmarkUnlockBoundary(t *testing.T) {
	landmarks := append(makeLandmarks(1, 10), makeLandmarks(2, 10)...)

	// 6 correct: one star, next level stays locked.
	e, store := newTestEngine(t, nil, landmarks, forbiddenSource(t), testConfig())
	startLandmark(t, e, 1)
	playThrough(t, e, 0, func(i int) bool { return i < 6 })

	result := e.Results().Landmark
	if result == nil {
		t.Fatal("no landmark result")
	}
	if result.Stars != 1 || result.UnlockedNext {
		t.Errorf("6/10: stars=%d unlocked=%v, want 1 star and locked", result.Stars, result.UnlockedNext)
	}
	if store.LandmarkProgress()[2].Unlocked {
		t.Error("level 2 unlocked at 6 correct")
	}

	// 7 correct: two stars, next level unlocks.
	e2, store2 := newTestEngine(t, nil, landmarks, forbiddenSource(t), testConfig())
	startLandmark(t, e2, 1)
	playThrough(t, e2, 0, func(i int) bool { return i < 7 })

	result = e2.Results().Landmark
	if result.Stars != 2 || !result.UnlockedNext {
		t.Errorf("7/10: stars=%d unlocked=%v, want 2 stars and unlocked", result.Stars, result.UnlockedNext)
	}
	if !store2.LandmarkProgress()[2].Unlocked {
		t.Error("level 2 should unlock at 7 correct")
	}

	// Perfect run: three stars.
	e3, _ := newTestEngine(t, nil, landmarks, forbiddenSource(t), testConfig())
	startLandmark(t, e3, 1)
	playThrough(t, e3, 0, func(int) bool { return true })
	if result := e3.Results().Landmark; result.Stars != 3 || result.Score != 100 {
		t.Errorf("perfect run: stars=%d score=%d, want 3 stars and 100", result.Stars, result.Score)
	}
}

func TestLandmarkLockedLevel(t *testing.T) {
	landmarks := append(makeLandmarks(1, 10), makeLandmarks(2, 10)...)
	e, _ := newTestEngine(t, nil, landmarks, forbiddenSource(t), testConfig())

	err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeLandmark, Level: 2})
	if !errors.Is(err, ErrLockedLevel) {
		t.Fatalf("expected ErrLockedLevel, got %v", err)
	}
}

func TestLandmarkHintPenalty(t *testing.T) {
	e, _ := newTestEngine(t, nil, makeLandmarks(1, 10), forbiddenSource(t), testConfig())
	startLandmark(t, e, 1)

	answer := e.State().Question.Answer
	if err := e.SubmitAnswer(answer, 0, true); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if got := e.State().Score; got != 5 {
		t.Errorf("hinted landmark answer = %d points, want 5", got)
	}
}

// ── Survival ──────────────────────────────────────────

func TestSurvivalWaveProgression(t *testing.T) {
	var difficulties []models.Difficulty
	src := &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		difficulties = append(difficulties, difficulty)
		return makeBatch(count, difficulty), nil
	}}
	e, store := newTestEngine(t, nil, nil, src, testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeSurvival}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Lives != 3 || st.Wave != 1 || st.Total != 5 {
		t.Fatalf("unexpected opening state: %+v", st)
	}

	// Clear wave 1.
	for i := 0; i < 5; i++ {
		if err := e.SubmitAnswer(e.State().Question.Answer, 10, false); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if err := e.Advance(context.Background()); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	st = e.State()
	if st.Phase != models.PhaseActive || st.Wave != 2 {
		t.Fatalf("expected wave 2 active, got phase=%s wave=%d", st.Phase, st.Wave)
	}
	if st.Total != 10 || st.Index != 5 {
		t.Errorf("wave batches must append: total=%d index=%d", st.Total, st.Index)
	}
	if len(difficulties) != 2 || difficulties[0] != models.DifficultyEasy || difficulties[1] != models.DifficultyMedium {
		t.Errorf("wave difficulties = %v, want [Easy Medium]", difficulties)
	}

	// Lose all three lives in wave 2.
	for i := 0; i < 3; i++ {
		if err := e.SubmitAnswer("definitely wrong", 10, false); err != nil {
			t.Fatalf("wrong submit %d: %v", i, err)
		}
		if e.State().Phase == models.PhaseActive {
			if err := e.Advance(context.Background()); err != nil {
				t.Fatalf("advance: %v", err)
			}
		}
	}

	if got := e.State().Phase; got != models.PhaseResults {
		t.Fatalf("losing the last life must finalize immediately, got %s", got)
	}
	result := e.Results().Survival
	if result == nil {
		t.Fatal("no survival result")
	}
	if result.Wave != 2 || result.CorrectAnswers != 5 || result.TotalAnswered != 8 {
		t.Errorf("unexpected survival result: %+v", result)
	}

	// Survival runs never enter quiz history.
	if len(store.History()) != 0 {
		t.Errorf("survival run leaked into history: %+v", store.History())
	}
}

func TestSurvivalStartFailure(t *testing.T) {
	e, _ := newTestEngine(t, nil, nil, failingSource(t), testConfig())
	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeSurvival}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if got := e.State().Phase; got != models.PhaseError {
		t.Errorf("expected error phase when the first wave fails, got %s", got)
	}
}

func TestSurvivalWaveFetchFailure(t *testing.T) {
	call := 0
	src := &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		call++
		if call > 1 {
			return nil, errors.New("model unavailable")
		}
		return makeBatch(count, difficulty), nil
	}}
	e, _ := newTestEngine(t, nil, nil, src, testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeSurvival}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := e.SubmitAnswer(e.State().Question.Answer, 10, false); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if err := e.Advance(context.Background()); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	st := e.State()
	if st.Phase != models.PhaseError || st.Error == nil || st.Error.Title != "Connection Lost" {
		t.Errorf("expected Connection Lost error, got phase=%s err=%+v", st.Phase, st.Error)
	}
}

func TestSurvivalAutoAdvance(t *testing.T) {
	cfg := testConfig()
	cfg.AutoAdvanceDelay = 20 * time.Millisecond
	e, _ := newTestEngine(t, nil, nil, batchSource(t), cfg)

	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeSurvival}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if err := e.SubmitAnswer(e.State().Question.Answer, 10, false); err != nil {
		t.Fatalf("submit: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if e.State().Index == 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("auto-advance never fired")
}

func TestSurvivalAutoAdvanceCanceledByExit(t *testing.T) {
	cfg := testConfig()
	cfg.AutoAdvanceDelay = 20 * time.Millisecond
	e, _ := newTestEngine(t, nil, nil, batchSource(t), cfg)

	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeSurvival}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if err := e.SubmitAnswer(e.State().Question.Answer, 10, false); err != nil {
		t.Fatalf("submit: %v", err)
	}
	e.Exit()

	time.Sleep(60 * time.Millisecond)
	if got := e.State().Phase; got != models.PhaseIdle {
		t.Errorf("stale timer resurrected the session: phase=%s", got)
	}
}

// ── Bot Match ─────────────────────────────────────────

func TestBotMatchGuaranteedWin(t *testing.T) {
	e, store := newTestEngine(t, makeStatic(12, models.CategoryGK, models.DifficultyEasy), nil, forbiddenSource(t), testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{
		Mode: models.ModeBotMatch, Category: models.CategoryGK, Difficulty: models.DifficultyEasy,
	}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Opponent == nil || st.Opponent.Rating != 800 {
		t.Fatalf("expected the beginner bot, got %+v", st.Opponent)
	}

	// 200 points per question beats the bot's 120-point ceiling.
	playThrough(t, e, 30, func(int) bool { return true })

	result := e.Results().BotMatch
	if result == nil {
		t.Fatal("no bot match result")
	}
	if result.PlayerScore != 2000 {
		t.Errorf("player score = %d, want 2000", result.PlayerScore)
	}
	if !result.Won {
		t.Errorf("player must win: %d vs %d", result.PlayerScore, result.BotScore)
	}
	if result.BotScore > 1200 {
		t.Errorf("bot score %d exceeds its maximum", result.BotScore)
	}
	if !store.UnlockedSet()[models.AchievementBeatBeginnerBot] {
		t.Error("beating the beginner bot should unlock its achievement")
	}
	if len(store.History()) != 0 {
		t.Errorf("bot match leaked into quiz history")
	}
}

// ── Abandon Semantics ─────────────────────────────────

func TestExitDuringFetchDiscardsResponse(t *testing.T) {
	var e *Engine
	src := &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		e.Exit()
		return makeBatch(count, difficulty), nil
	}}
	e, _ = newTestEngine(t, nil, nil, src, testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeAI, Topic: "space"}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Phase != models.PhaseIdle {
		t.Errorf("stale provider response must be discarded, phase=%s", st.Phase)
	}
}

func TestNewSessionDuringFetchWins(t *testing.T) {
	var e *Engine
	static := makeStatic(12, models.CategoryGK, models.DifficultyMedium)
	src := &fakeSource{fn: func(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
		// A second session starts while this fetch is in flight.
		if err := e.StartSession(ctx, models.StartSessionRequest{
			Mode: models.ModeClassic, Category: models.CategoryGK, Difficulty: models.DifficultyMedium,
		}); err != nil {
			t.Errorf("nested StartSession: %v", err)
		}
		return makeBatch(count, difficulty), nil
	}}
	e, _ = newTestEngine(t, static, nil, src, testConfig())

	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeAI, Topic: "space"}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	st := e.State()
	if st.Phase != models.PhaseActive || st.Mode != models.ModeClassic {
		t.Errorf("newest session must win: phase=%s mode=%s", st.Phase, st.Mode)
	}
}

func TestExitClearsResults(t *testing.T) {
	e, _ := newTestEngine(t, nil, nil, batchSource(t), testConfig())
	if err := e.StartSession(context.Background(), models.StartSessionRequest{Mode: models.ModeDaily}); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	playThrough(t, e, 10, func(int) bool { return true })

	if e.Results().Quiz == nil {
		t.Fatal("expected a quiz result before exit")
	}
	e.Exit()
	if e.Results().Quiz != nil {
		t.Error("exit must clear results")
	}
	if got := e.State().Phase; got != models.PhaseIdle {
		t.Errorf("phase after exit = %s, want idle", got)
	}
}
