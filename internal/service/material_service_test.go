// internal/service/material_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_materialService_CreateMaterial(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	academyID := uuid.New()

	req := &model.PostMaterialRequest{
		Title:      "바이엘",
		Level:      model.MaterialLevelBeginner,
		Category:   model.MaterialCategoryPiano,
		TotalUnits: 106,
	}

	t.Run("정상계: 교재 등록 성공", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(db, materialRepo)

		materialRepo.On("CheckTitleExists", ctx, mock.AnythingOfType("*gorm.DB"), academyID, "바이엘", (*uuid.UUID)(nil)).
			Return(false, nil).Once()
		materialRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Material")).
			Run(func(args mock.Arguments) {
				material := args.Get(2).(*model.Material)
				assert.Equal(t, academyID, material.AcademyID)
				assert.Equal(t, "바이엘", material.Title)
				assert.Equal(t, 106, material.TotalUnits)
				assert.NotEqual(t, uuid.Nil, material.MaterialID)
			}).Return(nil).Once()

		material, err := svc.CreateMaterial(ctx, academyID, req)

		require.NoError(t, err)
		assert.Equal(t, "바이엘", material.Title)
		materialRepo.AssertExpectations(t)
	})

	t.Run("이상계: 교재명 중복이면 Conflict", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(db, materialRepo)

		materialRepo.On("CheckTitleExists", ctx, mock.AnythingOfType("*gorm.DB"), academyID, "바이엘", (*uuid.UUID)(nil)).
			Return(true, nil).Once()

		_, err := svc.CreateMaterial(ctx, academyID, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		materialRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_materialService_UpdateMaterial(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	academyID := uuid.New()
	materialID := uuid.New()

	existing := &model.Material{
		MaterialID: materialID,
		AcademyID:  academyID,
		Title:      "바이엘",
		Level:      model.MaterialLevelBeginner,
		Category:   model.MaterialCategoryPiano,
	}

	t.Run("정상계: 제목 변경 시 중복 확인 후 수정", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(db, materialRepo)

		materialRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), academyID, materialID).
			Return(existing, nil).Once()
		materialRepo.On("CheckTitleExists", ctx, mock.AnythingOfType("*gorm.DB"), academyID, "바이엘 상권", &materialID).
			Return(false, nil).Once()
		materialRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Material")).
			Return(nil).Once()

		updated, err := svc.UpdateMaterial(ctx, academyID, materialID, &model.PutMaterialRequest{
			Title:    "바이엘 상권",
			Level:    model.MaterialLevelBeginner,
			Category: model.MaterialCategoryPiano,
		})

		require.NoError(t, err)
		assert.Equal(t, "바이엘 상권", updated.Title)
		materialRepo.AssertExpectations(t)
	})

	t.Run("이상계: 교재가 없으면 NotFound", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(db, materialRepo)

		materialRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), academyID, materialID).
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.UpdateMaterial(ctx, academyID, materialID, &model.PutMaterialRequest{
			Title:    "바이엘",
			Level:    model.MaterialLevelBeginner,
			Category: model.MaterialCategoryPiano,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_materialService_DeleteMaterial(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	academyID := uuid.New()
	materialID := uuid.New()

	t.Run("정상계: 삭제 성공", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(db, materialRepo)

		materialRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), academyID, materialID).
			Return(nil).Once()

		err := svc.DeleteMaterial(ctx, academyID, materialID)

		require.NoError(t, err)
		materialRepo.AssertExpectations(t)
	})

	t.Run("이상계: 없는 교재 삭제는 NotFound", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(db, materialRepo)

		materialRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), academyID, materialID).
			Return(model.ErrNotFound).Once()

		err := svc.DeleteMaterial(ctx, academyID, materialID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
