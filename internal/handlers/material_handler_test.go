// internal/handlers/material_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newrise0410/piano-academy-app-sub000/internal/handlers"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMaterialRouter(svc *mocks.MaterialService) *chi.Mux {
	h := handlers.NewMaterialHandler(svc, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevAcademyContextMiddleware)
	router.Post("/api/v1/materials", h.PostMaterial)
	router.Get("/api/v1/materials", h.GetMaterials)
	router.Get("/api/v1/materials/{material_id}", h.GetMaterial)
	router.Put("/api/v1/materials/{material_id}", h.PutMaterial)
	router.Delete("/api/v1/materials/{material_id}", h.DeleteMaterial)
	return router
}

func TestMaterialHandler_PostMaterial(t *testing.T) {
	academyID := uuid.New()

	validReq := model.PostMaterialRequest{
		Title:      "바이엘",
		Level:      model.MaterialLevelBeginner,
		Category:   model.MaterialCategoryPiano,
		TotalUnits: 106,
	}
	created := &model.Material{
		MaterialID: uuid.New(),
		AcademyID:  academyID,
		Title:      validReq.Title,
		Level:      validReq.Level,
		Category:   validReq.Category,
		TotalUnits: validReq.TotalUnits,
	}

	tests := []struct {
		name           string
		academyID      *uuid.UUID
		body           interface{}
		setupMock      func(svc *mocks.MaterialService)
		expectedStatus int
	}{
		{
			name:      "정상계: 교재 등록",
			academyID: &academyID,
			body:      validReq,
			setupMock: func(svc *mocks.MaterialService) {
				svc.On("CreateMaterial", mock.Anything, academyID, &validReq).
					Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "이상계: 인증 헤더 없음",
			academyID:      nil,
			body:           validReq,
			setupMock:      func(svc *mocks.MaterialService) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "이상계: 필수 필드 누락",
			academyID:      &academyID,
			body:           model.PostMaterialRequest{Level: model.MaterialLevelBeginner},
			setupMock:      func(svc *mocks.MaterialService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "이상계: 깨진 JSON",
			academyID:      &academyID,
			body:           `{"title": "broken`,
			setupMock:      func(svc *mocks.MaterialService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "이상계: 중복 교재명은 409",
			academyID: &academyID,
			body:      validReq,
			setupMock: func(svc *mocks.MaterialService) {
				svc.On("CreateMaterial", mock.Anything, academyID, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_TITLE", "이미 등록된 교재명입니다.", "title", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.MaterialService)
			tc.setupMock(svc)
			router := newMaterialRouter(svc)

			req := createRequest(t, "POST", "/api/v1/materials", tc.body, tc.academyID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var resp model.Material
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, created.MaterialID, resp.MaterialID)
				assert.Equal(t, "바이엘", resp.Title)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestMaterialHandler_GetMaterials(t *testing.T) {
	academyID := uuid.New()

	t.Run("정상계: 목록 반환", func(t *testing.T) {
		svc := new(mocks.MaterialService)
		svc.On("ListMaterials", mock.Anything, academyID).
			Return([]model.Material{
				{MaterialID: uuid.New(), Title: "바이엘"},
				{MaterialID: uuid.New(), Title: "체르니 100"},
			}, nil).Once()
		router := newMaterialRouter(svc)

		req := createRequest(t, "GET", "/api/v1/materials", nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []model.Material
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		svc.AssertExpectations(t)
	})

	t.Run("정상계: 비어 있어도 빈 배열", func(t *testing.T) {
		svc := new(mocks.MaterialService)
		svc.On("ListMaterials", mock.Anything, academyID).
			Return(nil, nil).Once()
		router := newMaterialRouter(svc)

		req := createRequest(t, "GET", "/api/v1/materials", nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestMaterialHandler_GetMaterial(t *testing.T) {
	academyID := uuid.New()
	materialID := uuid.New()

	tests := []struct {
		name           string
		param          string
		setupMock      func(svc *mocks.MaterialService)
		expectedStatus int
	}{
		{
			name:  "정상계: 단건 조회",
			param: materialID.String(),
			setupMock: func(svc *mocks.MaterialService) {
				svc.On("GetMaterial", mock.Anything, academyID, materialID).
					Return(&model.Material{MaterialID: materialID, Title: "바이엘"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "이상계: 없는 교재는 404",
			param: materialID.String(),
			setupMock: func(svc *mocks.MaterialService) {
				svc.On("GetMaterial", mock.Anything, academyID, materialID).
					Return(nil, model.NewAppError("MATERIAL_NOT_FOUND", "교재를 찾을 수 없습니다.", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "이상계: UUID 형식 오류",
			param:          "not-a-uuid",
			setupMock:      func(svc *mocks.MaterialService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.MaterialService)
			tc.setupMock(svc)
			router := newMaterialRouter(svc)

			req := createRequest(t, "GET", fmt.Sprintf("/api/v1/materials/%s", tc.param), nil, &academyID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestMaterialHandler_DeleteMaterial(t *testing.T) {
	academyID := uuid.New()
	materialID := uuid.New()

	t.Run("정상계: 삭제는 204", func(t *testing.T) {
		svc := new(mocks.MaterialService)
		svc.On("DeleteMaterial", mock.Anything, academyID, materialID).
			Return(nil).Once()
		router := newMaterialRouter(svc)

		req := createRequest(t, "DELETE", fmt.Sprintf("/api/v1/materials/%s", materialID), nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.Bytes())
		svc.AssertExpectations(t)
	})

	t.Run("이상계: 없는 교재 삭제는 404", func(t *testing.T) {
		svc := new(mocks.MaterialService)
		svc.On("DeleteMaterial", mock.Anything, academyID, materialID).
			Return(model.NewAppError("MATERIAL_NOT_FOUND", "교재를 찾을 수 없습니다.", "", model.ErrNotFound)).Once()
		router := newMaterialRouter(svc)

		req := createRequest(t, "DELETE", fmt.Sprintf("/api/v1/materials/%s", materialID), nil, &academyID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		detail := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "MATERIAL_NOT_FOUND", detail.Code)
	})
}
