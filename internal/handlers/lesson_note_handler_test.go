// internal/handlers/lesson_note_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/handlers"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/reconcile"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type lessonNoteRouterMocks struct {
	note      *mocks.LessonNoteService
	reconcile *mocks.ReconcileService
	polish    *mocks.PolishService
}

func newLessonNoteRouter() (*chi.Mux, *lessonNoteRouterMocks) {
	m := &lessonNoteRouterMocks{
		note:      new(mocks.LessonNoteService),
		reconcile: new(mocks.ReconcileService),
		polish:    new(mocks.PolishService),
	}
	h := handlers.NewLessonNoteHandler(m.note, m.reconcile, m.polish, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevAcademyContextMiddleware)
	router.Post("/api/v1/students/{student_id}/lesson-notes", h.PostLessonNote)
	router.Get("/api/v1/students/{student_id}/lesson-notes", h.GetLessonNotes)
	router.Get("/api/v1/lesson-notes/{lesson_note_id}", h.GetLessonNote)
	router.Put("/api/v1/lesson-notes/{lesson_note_id}", h.PutLessonNote)
	router.Delete("/api/v1/lesson-notes/{lesson_note_id}", h.DeleteLessonNote)
	router.Post("/api/v1/lesson-notes/{lesson_note_id}/reconcile", h.PostReconcile)
	router.Post("/api/v1/lesson-notes/{lesson_note_id}/resolve-unknown", h.PostResolveUnknown)
	router.Post("/api/v1/lesson-notes/polish", h.PostPolish)
	return router, m
}

func TestLessonNoteHandler_PostLessonNote(t *testing.T) {
	academyID := uuid.New()
	studentID := uuid.New()
	lessonDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	validReq := model.PostLessonNoteRequest{
		Date:     lessonDate,
		Progress: "체르니 30-1, 바이엘 60번",
		Homework: "바이엘 61번 예습",
	}
	savedNote := &model.LessonNote{
		LessonNoteID: uuid.New(),
		AcademyID:    academyID,
		StudentID:    studentID,
		StudentName:  "김하늘",
		Date:         lessonDate,
		Progress:     validReq.Progress,
		IsPublic:     true,
	}
	result := &reconcile.Result{
		UpdatedItems: []reconcile.UpdatedItem{
			{MaterialID: uuid.New(), MaterialTitle: "바이엘", Position: "60번", Percent: 57},
		},
		UnknownTextbooks: []reconcile.Unknown{
			{Name: "체르니 30-1", SuggestedCategory: model.MaterialCategoryTechnique},
		},
	}

	t.Run("정상계: 저장과 대조 결과를 함께 반환", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.note.On("CreateLessonNote", mock.Anything, academyID, studentID, &validReq).
			Return(savedNote, result, nil).Once()

		url := fmt.Sprintf("/api/v1/students/%s/lesson-notes", studentID)
		req := createRequest(t, "POST", url, validReq, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp handlers.LessonNoteResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, savedNote.LessonNoteID, resp.Note.LessonNoteID)
		require.NotNil(t, resp.Reconcile)
		assert.Len(t, resp.Reconcile.UpdatedItems, 1)
		assert.Len(t, resp.Reconcile.UnknownTextbooks, 1)
		assert.Equal(t, "체르니 30-1", resp.Reconcile.UnknownTextbooks[0].Name)
		m.note.AssertExpectations(t)
	})

	t.Run("정상계: 대조가 실패해도 저장은 201", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.note.On("CreateLessonNote", mock.Anything, academyID, studentID, &validReq).
			Return(savedNote, nil, nil).Once()

		url := fmt.Sprintf("/api/v1/students/%s/lesson-notes", studentID)
		req := createRequest(t, "POST", url, validReq, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp handlers.LessonNoteResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Nil(t, resp.Reconcile)
	})

	t.Run("이상계: 없는 원생은 404", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.note.On("CreateLessonNote", mock.Anything, academyID, studentID, &validReq).
			Return(nil, nil, model.NewAppError("STUDENT_NOT_FOUND", "원생을 찾을 수 없습니다.", "", model.ErrNotFound)).Once()

		url := fmt.Sprintf("/api/v1/students/%s/lesson-notes", studentID)
		req := createRequest(t, "POST", url, validReq, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("이상계: 날짜 누락은 400", func(t *testing.T) {
		router, _ := newLessonNoteRouter()

		url := fmt.Sprintf("/api/v1/students/%s/lesson-notes", studentID)
		req := createRequest(t, "POST", url, model.PostLessonNoteRequest{Progress: "바이엘 60번"}, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLessonNoteHandler_PostReconcile(t *testing.T) {
	academyID := uuid.New()
	noteID := uuid.New()

	t.Run("정상계: 수동 대조 결과 반환", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.reconcile.On("Reconcile", mock.Anything, academyID, noteID).
			Return(&reconcile.Result{
				UpdatedItems:     []reconcile.UpdatedItem{{MaterialTitle: "바이엘", Position: "60번", Percent: 57}},
				UnknownTextbooks: []reconcile.Unknown{},
			}, nil).Once()

		url := fmt.Sprintf("/api/v1/lesson-notes/%s/reconcile", noteID)
		req := createRequest(t, "POST", url, nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp reconcile.Result
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.UpdatedItems, 1)
		m.reconcile.AssertExpectations(t)
	})

	t.Run("이상계: 없는 알림장은 404", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.reconcile.On("Reconcile", mock.Anything, academyID, noteID).
			Return(nil, model.NewAppError("LESSON_NOTE_NOT_FOUND", "알림장을 찾을 수 없습니다.", "", model.ErrNotFound)).Once()

		url := fmt.Sprintf("/api/v1/lesson-notes/%s/reconcile", noteID)
		req := createRequest(t, "POST", url, nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestLessonNoteHandler_PostResolveUnknown(t *testing.T) {
	academyID := uuid.New()
	noteID := uuid.New()

	wizard := reconcile.WizardState{
		Items: []reconcile.Unknown{{Name: "체르니 30", SuggestedCategory: model.MaterialCategoryTechnique}},
		Index: 0,
	}

	t.Run("정상계: add 스텝 처리", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.reconcile.On("ResolveUnknown", mock.Anything, academyID, noteID, mock.AnythingOfType("*reconcile.ResolveRequest")).
			Return(&reconcile.ResolveResponse{
				Wizard: reconcile.WizardState{Items: wizard.Items, Index: 1},
				Done:   true,
				Result: &reconcile.Result{
					UpdatedItems:     []reconcile.UpdatedItem{{MaterialTitle: "체르니 30", Position: "1번", Percent: 3}},
					UnknownTextbooks: []reconcile.Unknown{},
				},
			}, nil).Once()

		body := reconcile.ResolveRequest{
			Wizard: wizard,
			Action: reconcile.ResolveActionAdd,
			Material: &model.PostMaterialRequest{
				Title:      "체르니 30",
				Level:      model.MaterialLevelIntermediate,
				Category:   model.MaterialCategoryTechnique,
				TotalUnits: 30,
			},
		}
		url := fmt.Sprintf("/api/v1/lesson-notes/%s/resolve-unknown", noteID)
		req := createRequest(t, "POST", url, body, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp reconcile.ResolveResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Done)
		require.NotNil(t, resp.Result)
		assert.Len(t, resp.Result.UpdatedItems, 1)
		m.reconcile.AssertExpectations(t)
	})

	t.Run("이상계: 허용되지 않는 action 은 400", func(t *testing.T) {
		router, _ := newLessonNoteRouter()

		body := reconcile.ResolveRequest{Wizard: wizard, Action: "retry"}
		url := fmt.Sprintf("/api/v1/lesson-notes/%s/resolve-unknown", noteID)
		req := createRequest(t, "POST", url, body, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLessonNoteHandler_PostPolish(t *testing.T) {
	academyID := uuid.New()

	t.Run("정상계: 다듬은 문장 반환", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.polish.On("Polish", mock.Anything, mock.AnythingOfType("*model.PolishTextRequest")).
			Return(&model.PolishTextResponse{Text: "오늘 체르니 연습을 아주 잘했습니다."}, nil).Once()

		req := createRequest(t, "POST", "/api/v1/lesson-notes/polish",
			model.PolishTextRequest{Text: "오늘 체르니 잘했음"}, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp model.PolishTextResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "오늘 체르니 연습을 아주 잘했습니다.", resp.Text)
		m.polish.AssertExpectations(t)
	})

	t.Run("이상계: 빈 본문은 400", func(t *testing.T) {
		router, _ := newLessonNoteRouter()

		req := createRequest(t, "POST", "/api/v1/lesson-notes/polish",
			model.PolishTextRequest{}, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLessonNoteHandler_GetLessonNotes(t *testing.T) {
	academyID := uuid.New()
	studentID := uuid.New()

	t.Run("정상계: 목록 반환", func(t *testing.T) {
		router, m := newLessonNoteRouter()
		m.note.On("ListLessonNotes", mock.Anything, academyID, studentID).
			Return([]model.LessonNote{
				{LessonNoteID: uuid.New(), StudentID: studentID},
			}, nil).Once()

		url := fmt.Sprintf("/api/v1/students/%s/lesson-notes", studentID)
		req := createRequest(t, "GET", url, nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []model.LessonNote
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("이상계: 인증 헤더 없음", func(t *testing.T) {
		router, _ := newLessonNoteRouter()

		url := fmt.Sprintf("/api/v1/students/%s/lesson-notes", studentID)
		req := createRequest(t, "GET", url, nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
