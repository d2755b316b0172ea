// internal/service/material_service.go
package service

import (
	"context"
	"errors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialService interface {
	CreateMaterial(ctx context.Context, academyID uuid.UUID, req *model.PostMaterialRequest) (*model.Material, error)
	GetMaterial(ctx context.Context, academyID, materialID uuid.UUID) (*model.Material, error)
	ListMaterials(ctx context.Context, academyID uuid.UUID) ([]model.Material, error)
	UpdateMaterial(ctx context.Context, academyID, materialID uuid.UUID, req *model.PutMaterialRequest) (*model.Material, error)
	DeleteMaterial(ctx context.Context, academyID, materialID uuid.UUID) error
}

type materialService struct {
	db           *gorm.DB
	materialRepo repository.MaterialRepository
}

func NewMaterialService(db *gorm.DB, materialRepo repository.MaterialRepository) MaterialService {
	return &materialService{db: db, materialRepo: materialRepo}
}

func (s *materialService) CreateMaterial(ctx context.Context, academyID uuid.UUID, req *model.PostMaterialRequest) (*model.Material, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.Material

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 같은 학원에서 교재명 중복 금지. 대조 결과가 모호해지는 것을 막는다.
		exists, err := s.materialRepo.CheckTitleExists(ctx, tx, academyID, req.Title, nil)
		if err != nil {
			logger.Error("Error checking material title existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류가 발생했습니다.", "", err)
		}
		if exists {
			logger.Warn("Material title already exists", "title", req.Title)
			return model.NewAppError("DUPLICATE_TITLE", "같은 이름의 교재가 이미 등록되어 있습니다.", "title", model.ErrConflict)
		}

		material := &model.Material{
			MaterialID:  uuid.New(),
			AcademyID:   academyID,
			Title:       req.Title,
			Publisher:   req.Publisher,
			Level:       req.Level,
			Category:    req.Category,
			Description: req.Description,
			TotalUnits:  req.TotalUnits,
		}
		if err := s.materialRepo.Create(ctx, tx, material); err != nil {
			logger.Error("Failed to create material", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "교재 등록에 실패했습니다.", "", err)
		}

		created = material
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Material created", "material_id", created.MaterialID, "title", created.Title)
	return created, nil
}

func (s *materialService) GetMaterial(ctx context.Context, academyID, materialID uuid.UUID) (*model.Material, error) {
	material, err := s.materialRepo.FindByID(ctx, s.db, academyID, materialID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("MATERIAL_NOT_FOUND", "교재를 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}
	return material, nil
}

func (s *materialService) ListMaterials(ctx context.Context, academyID uuid.UUID) ([]model.Material, error) {
	logger := middleware.GetLogger(ctx)
	materials, err := s.materialRepo.ListByAcademy(ctx, s.db, academyID)
	if err != nil {
		logger.Error("Error listing materials", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "교재 목록 조회에 실패했습니다.", "", err)
	}
	return materials, nil
}

func (s *materialService) UpdateMaterial(ctx context.Context, academyID, materialID uuid.UUID, req *model.PutMaterialRequest) (*model.Material, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Material

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		material, err := s.materialRepo.FindByID(ctx, tx, academyID, materialID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("MATERIAL_NOT_FOUND", "교재를 찾을 수 없습니다.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
		}

		if req.Title != material.Title {
			exists, err := s.materialRepo.CheckTitleExists(ctx, tx, academyID, req.Title, &materialID)
			if err != nil {
				logger.Error("Error checking material title existence during update", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_TITLE", "같은 이름의 교재가 이미 등록되어 있습니다.", "title", model.ErrConflict)
			}
		}

		material.Title = req.Title
		material.Publisher = req.Publisher
		material.Level = req.Level
		material.Category = req.Category
		material.Description = req.Description
		material.TotalUnits = req.TotalUnits

		if err := s.materialRepo.Update(ctx, tx, material); err != nil {
			logger.Error("Failed to update material", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "교재 수정에 실패했습니다.", "", err)
		}

		updated = material
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Material updated", "material_id", updated.MaterialID)
	return updated, nil
}

func (s *materialService) DeleteMaterial(ctx context.Context, academyID, materialID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.materialRepo.Delete(ctx, tx, academyID, materialID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("MATERIAL_NOT_FOUND", "교재를 찾을 수 없습니다.", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete material", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "교재 삭제에 실패했습니다.", "", err)
		}
		return nil
	})

	if err == nil {
		logger.Info("Material deleted", "material_id", materialID)
	}
	return err
}
