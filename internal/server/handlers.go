package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/reviewlens/reviewlens/pkg/reviewlens"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/internalerr"
)

// Client-facing messages. Internal failure detail stays in the server
// logs; only the empty-input message from the core is echoed verbatim.
const (
	msgNoReviews     = "No reviews data provided"
	msgNotAList      = "Reviews must be a non-empty list"
	msgNotReady      = "Summarizer failed to initialize."
	msgInternalError = "An internal server error occurred"
)

// SummarizeHandler handles summarization requests.
type SummarizeHandler struct {
	engine *reviewlens.Summarizer
	log    *logrus.Logger
}

// NewSummarizeHandler creates the handler.
func NewSummarizeHandler(engine *reviewlens.Summarizer, log *logrus.Logger) *SummarizeHandler {
	return &SummarizeHandler{engine: engine, log: log}
}

// Summarize accepts {"reviews": [...]} and responds with the Summary
// JSON, 400 on input-shape violations or an empty batch, and 500 on an
// uninitialized engine or unexpected failure.
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondWithError(w, http.StatusInternalServerError, msgNotReady)
		return
	}

	var payload struct {
		Reviews *json.RawMessage `json:"reviews"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Reviews == nil {
		respondWithError(w, http.StatusBadRequest, msgNoReviews)
		return
	}

	var reviews []reviewlens.Review
	if err := json.Unmarshal(*payload.Reviews, &reviews); err != nil || len(reviews) == 0 {
		respondWithError(w, http.StatusBadRequest, msgNotAList)
		return
	}

	h.log.WithFields(logrus.Fields{
		"request_id": GetRequestID(r.Context()),
		"reviews":    len(reviews),
	}).Info("processing summarize request")

	summary, err := h.engine.Summarize(reviews)
	if err != nil {
		if errors.Is(err, internalerr.ErrNoReviews) {
			// The core's empty-input message is part of the contract
			// and is surfaced as-is.
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.WithFields(logrus.Fields{
			"request_id": GetRequestID(r.Context()),
			"error":      err,
		}).Error("summarize failed")
		respondWithError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}
