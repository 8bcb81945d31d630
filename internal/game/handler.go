package game

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/quizhero/core/internal/achievements"
	"github.com/quizhero/core/internal/models"
	"github.com/quizhero/core/internal/profile"
)

type Handler struct {
	engine  *Engine
	profile *profile.Store
}

func NewHandler(engine *Engine, profiles *profile.Store) *Handler {
	return &Handler{engine: engine, profile: profiles}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/session", h.GetSession).Methods("GET")
	r.HandleFunc("/session/start", h.StartSession).Methods("POST")
	r.HandleFunc("/session/answer", h.SubmitAnswer).Methods("POST")
	r.HandleFunc("/session/timeout", h.ExpireTimer).Methods("POST")
	r.HandleFunc("/session/advance", h.Advance).Methods("POST")
	r.HandleFunc("/session/exit", h.ExitSession).Methods("POST")
	r.HandleFunc("/session/results", h.GetResults).Methods("GET")

	r.HandleFunc("/profile", h.GetProfile).Methods("GET")
	r.HandleFunc("/profile", h.UpdateProfile).Methods("PUT")
	r.HandleFunc("/achievements", h.GetAchievements).Methods("GET")
	r.HandleFunc("/landmarks/progress", h.GetLandmarkProgress).Methods("GET")
	r.HandleFunc("/bots", h.GetBots).Methods("GET")
	r.HandleFunc("/settings", h.GetSettings).Methods("GET")
	r.HandleFunc("/settings", h.UpdateSettings).Methods("PUT")
}

// ── Session ───────────────────────────────────────────

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.State())
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !models.ValidModes[req.Mode] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid mode"})
		return
	}
	if req.Difficulty != "" && !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be 'Easy', 'Medium', or 'Hard'"})
		return
	}

	if err := h.engine.StartSession(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrTopicRequired):
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic is required for an AI quiz"})
		case errors.Is(err, ErrLockedLevel):
			writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "level is locked"})
		default:
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, h.engine.State())
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.engine.SubmitAnswer(req.Selected, req.TimeLeft, req.HintUsed); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State())
}

func (h *Handler) ExpireTimer(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ExpireTimer(); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State())
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Advance(r.Context()); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State())
}

func (h *Handler) ExitSession(w http.ResponseWriter, r *http.Request) {
	h.engine.Exit()
	writeJSON(w, http.StatusOK, h.engine.State())
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Results())
}

// ── Profile ───────────────────────────────────────────

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ProfileResponse{
		User:                 h.profile.User(),
		Stats:                h.profile.Stats(),
		GameHistory:          h.profile.History(),
		UnlockedAchievements: h.profile.UnlockedAchievements(),
		DailyChallengeDone:   h.profile.DailyChallengeDone(),
	})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Name == "" && req.Avatar == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "nothing to update"})
		return
	}
	writeJSON(w, http.StatusOK, h.profile.UpdateUser(req.Name, req.Avatar))
}

func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"catalog":  achievements.Catalog,
		"unlocked": h.profile.UnlockedAchievements(),
	})
}

func (h *Handler) GetLandmarkProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profile.LandmarkProgress())
}

func (h *Handler) GetBots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Bots)
}

// ── Settings ──────────────────────────────────────────

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settingsResponse())
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Theme != nil {
		h.profile.SetTheme(*req.Theme)
	}
	if req.ThemeColor != nil {
		h.profile.SetThemeColor(*req.ThemeColor)
	}
	if req.Wallpaper != nil {
		h.profile.SetWallpaper(*req.Wallpaper)
	}
	if req.SoundEnabled != nil {
		h.profile.SetSoundEnabled(*req.SoundEnabled)
	}
	if req.Onboarded != nil && *req.Onboarded {
		h.profile.MarkOnboarded()
	}

	writeJSON(w, http.StatusOK, h.settingsResponse())
}

func (h *Handler) settingsResponse() models.SettingsResponse {
	return models.SettingsResponse{
		Theme:        h.profile.Theme(),
		ThemeColor:   h.profile.ThemeColor(),
		Wallpaper:    h.profile.Wallpaper(),
		SoundEnabled: h.profile.SoundEnabled(),
		Onboarded:    h.profile.Onboarded(),
	}
}

// ── Helpers ───────────────────────────────────────────

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoSession):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "no active session"})
	case errors.Is(err, ErrWrongPhase):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "not valid in the current phase"})
	case errors.Is(err, ErrUnanswered):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "answer the current question first"})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
