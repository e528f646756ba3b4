package handler

import (
	"encoding/json"
	"net/http"

	"quizhub/internal/api/middleware"
	"quizhub/internal/app/service"
	"quizhub/internal/common"

	"github.com/go-chi/chi/v5"
)

type TestResultHandler struct {
	resultService *service.TestResultService
}

func NewTestResultHandler(resultService *service.TestResultService) *TestResultHandler {
	return &TestResultHandler{resultService: resultService}
}

func (h *TestResultHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.RequireAuth) // All result routes require auth
	r.Post("/", h.submitTest)
	r.Get("/", h.listResults) // ?testId=... (owning teacher) or ?studentId=me
	r.Get("/{resultID}", h.getResult)
}

func (h *TestResultHandler) submitTest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.SubmitTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := h.resultService.Submit(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, result)
}

func (h *TestResultHandler) listResults(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if testID := r.URL.Query().Get("testId"); testID != "" {
		results, err := h.resultService.ListByTest(r.Context(), userID, testID)
		if err != nil {
			common.RespondWithDomainError(w, err)
			return
		}
		common.RespondWithJSON(w, http.StatusOK, results)
		return
	}

	results, err := h.resultService.ListMine(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, results)
}

func (h *TestResultHandler) getResult(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	result, err := h.resultService.Get(r.Context(), userID, chi.URLParam(r, "resultID"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}
