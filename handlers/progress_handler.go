package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"lingoTrackAPI/internal/achievement"
	"lingoTrackAPI/internal/profile"
	"lingoTrackAPI/services"
	"lingoTrackAPI/storage"
)

type ProgressHandler struct {
	progressService  *services.ProgressService
	wordStatsService *services.WordStatsService
}

func NewProgressHandler(progressService *services.ProgressService, wordStatsService *services.WordStatsService) *ProgressHandler {
	return &ProgressHandler{
		progressService:  progressService,
		wordStatsService: wordStatsService,
	}
}

func (h *ProgressHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Path parameter 'userId' is required")
		return
	}

	p, err := h.progressService.GetProfile(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	stats, err := h.wordStatsService.GetStats(ctx, userID, p.DailyGoal, p.WeeklyGoal)
	if err != nil {
		log.Printf("GetProfile: failed to compute word stats for %s: %v", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute word stats")
		return
	}

	respondWithJSON(w, http.StatusOK, profile.WithStats{Profile: p, WordStats: stats})
}

func (h *ProgressHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	var req profile.RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, newAchievements, err := h.progressService.RecordActivity(ctx, userID, req.WordsAdded, req.SentencesScored)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if newAchievements == nil {
		newAchievements = []achievement.Achievement{}
	}

	respondWithJSON(w, http.StatusOK, profile.RecordActivityResponse{
		Profile:         p,
		NewAchievements: newAchievements,
	})
}

func (h *ProgressHandler) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	var req profile.UpdateGoalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.progressService.UpdateGoals(ctx, userID, req.DailyGoal, req.WeeklyGoal)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ProgressHandler) GetActivityHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Query parameter 'days' must be an integer")
			return
		}
		days = parsed
	}

	entries, err := h.progressService.GetActivityHistory(ctx, userID, days)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

func (h *ProgressHandler) UseStreakFreeze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	p, err := h.progressService.UseStreakFreeze(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// respondWithServiceError maps the service error taxonomy onto HTTP statuses.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrProfileNotFound):
		respondWithError(w, http.StatusNotFound, "Profile not found")
	case errors.Is(err, services.ErrNoStreakFreezes):
		respondWithError(w, http.StatusConflict, "No streak freezes available")
	default:
		log.Printf("Request failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
