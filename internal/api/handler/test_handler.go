package handler

import (
	"encoding/json"
	"net/http"

	"quizhub/internal/api/middleware"
	"quizhub/internal/app/service"
	"quizhub/internal/common"

	"github.com/go-chi/chi/v5"
)

type TestHandler struct {
	testService *service.TestService
}

func NewTestHandler(testService *service.TestService) *TestHandler {
	return &TestHandler{testService: testService}
}

func (h *TestHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.RequireAuth)
	r.Get("/", h.listTests)
	r.Get("/{testID}", h.getTest)

	r.Group(func(teacherRouter chi.Router) {
		teacherRouter.Use(middleware.TeacherOnly)
		teacherRouter.Post("/", h.createTest)
		teacherRouter.Delete("/{testID}", h.deleteTest)
	})
}

func (h *TestHandler) createTest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	test, err := h.testService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, test)
}

func (h *TestHandler) listTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.testService.List(r.Context(), r.URL.Query().Get("teacherId"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tests)
}

func (h *TestHandler) getTest(w http.ResponseWriter, r *http.Request) {
	test, err := h.testService.Get(r.Context(), chi.URLParam(r, "testID"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, test)
}

func (h *TestHandler) deleteTest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.testService.Delete(r.Context(), userID, chi.URLParam(r, "testID")); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Test deleted"})
}
