package handler

import (
	"encoding/json"
	"net/http"

	"quizhub/internal/api/middleware"
	"quizhub/internal/app/service"
	"quizhub/internal/common"

	"github.com/go-chi/chi/v5"
)

type QuestionSetHandler struct {
	setService *service.QuestionSetService
}

func NewQuestionSetHandler(setService *service.QuestionSetService) *QuestionSetHandler {
	return &QuestionSetHandler{setService: setService}
}

func (h *QuestionSetHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.RequireAuth)
	r.Get("/", h.listQuestionSets)
	r.Get("/{setID}", h.getQuestionSet)

	r.Group(func(teacherRouter chi.Router) {
		teacherRouter.Use(middleware.TeacherOnly)
		teacherRouter.Post("/", h.createQuestionSet)
		teacherRouter.Delete("/{setID}", h.deleteQuestionSet)
	})
}

func (h *QuestionSetHandler) createQuestionSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateQuestionSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	set, err := h.setService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, set)
}

func (h *QuestionSetHandler) listQuestionSets(w http.ResponseWriter, r *http.Request) {
	teacherID := r.URL.Query().Get("teacherId")

	sets, err := h.setService.List(r.Context(), teacherID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, sets)
}

func (h *QuestionSetHandler) getQuestionSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.setService.Get(r.Context(), chi.URLParam(r, "setID"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, set)
}

func (h *QuestionSetHandler) deleteQuestionSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.setService.Delete(r.Context(), userID, chi.URLParam(r, "setID")); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Question set deleted"})
}
