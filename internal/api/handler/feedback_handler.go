package handler

import (
	"encoding/json"
	"net/http"

	"quizhub/internal/api/middleware"
	"quizhub/internal/app/service"
	"quizhub/internal/common"

	"github.com/go-chi/chi/v5"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.RequireAuth)
	r.Post("/bulk-feedback", h.bulkFeedback)
}

type bulkFeedbackRequest struct {
	Answers []service.FeedbackAnswer `json:"answers"`
}

type bulkFeedbackResponse struct {
	Feedback string `json:"feedback"`
}

func (h *FeedbackHandler) bulkFeedback(w http.ResponseWriter, r *http.Request) {
	var req bulkFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if req.Answers == nil {
		common.RespondWithError(w, http.StatusBadRequest, "answers must be an array")
		return
	}

	feedback, err := h.feedbackService.BulkFeedback(r.Context(), req.Answers)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, bulkFeedbackResponse{Feedback: feedback})
}
