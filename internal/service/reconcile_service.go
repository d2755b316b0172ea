// internal/service/reconcile_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/reconcile"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReconcileService 는 알림장 진도 원문을 교재 카탈로그와 대조해 진도 기록을
// 갱신합니다. 같은 알림장을 몇 번 저장해도 결과가 같아야 하므로, 적용 이력
// (progress_applications) 존재 여부로 재적용을 걸러냅니다.
type ReconcileService interface {
	Reconcile(ctx context.Context, academyID, lessonNoteID uuid.UUID) (*reconcile.Result, error)
	ResolveUnknown(ctx context.Context, academyID, lessonNoteID uuid.UUID, req *reconcile.ResolveRequest) (*reconcile.ResolveResponse, error)
}

type reconcileService struct {
	db           *gorm.DB
	noteRepo     repository.LessonNoteRepository
	materialRepo repository.MaterialRepository
	studentRepo  repository.StudentRepository
	progressRepo repository.ProgressRepository
	extractor    *reconcile.Extractor
}

func NewReconcileService(
	db *gorm.DB,
	noteRepo repository.LessonNoteRepository,
	materialRepo repository.MaterialRepository,
	studentRepo repository.StudentRepository,
	progressRepo repository.ProgressRepository,
	extractor *reconcile.Extractor,
) ReconcileService {
	if extractor == nil {
		extractor = reconcile.NewExtractor(nil)
	}
	return &reconcileService{
		db:           db,
		noteRepo:     noteRepo,
		materialRepo: materialRepo,
		studentRepo:  studentRepo,
		progressRepo: progressRepo,
		extractor:    extractor,
	}
}

// Reconcile 은 알림장의 진도 원문을 파싱해 교재별 진도를 갱신하고, 카탈로그에
// 없는 교재 목록을 돌려줍니다.
//
// 언급 하나의 실패가 다른 언급의 반영을 막지 않도록 언급 단위로 각각 짧은
// 트랜잭션을 사용합니다. 실패한 언급은 로그만 남기고 건너뜁니다.
func (s *reconcileService) Reconcile(ctx context.Context, academyID, lessonNoteID uuid.UUID) (*reconcile.Result, error) {
	logger := middleware.GetLogger(ctx)

	note, err := s.noteRepo.FindByID(ctx, s.db, academyID, lessonNoteID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LESSON_NOTE_NOT_FOUND", "알림장을 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}

	result := &reconcile.Result{
		UpdatedItems:     []reconcile.UpdatedItem{},
		UnknownTextbooks: []reconcile.Unknown{},
	}

	mentions := s.extractor.Extract(note.Progress)
	if len(mentions) == 0 {
		return result, nil
	}

	catalog, err := s.materialRepo.ListByAcademy(ctx, s.db, academyID)
	if err != nil {
		logger.Error("Failed to load material catalog", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "교재 카탈로그 조회에 실패했습니다.", "", err)
	}

	seenUnknown := map[string]bool{}
	appliedNow := map[uuid.UUID]bool{}  // 이번 호출에서 적용 이력을 남긴 교재
	alreadyDone := map[uuid.UUID]bool{} // 이전 호출에서 이미 반영이 끝난 교재
	for _, mention := range mentions {
		material := reconcile.Match(mention, catalog)
		if material == nil {
			// 같은 이름은 한 번만 보고한다
			if !seenUnknown[mention.NormalizedText] {
				seenUnknown[mention.NormalizedText] = true
				result.UnknownTextbooks = append(result.UnknownTextbooks, reconcile.Unknown{
					Name:              mention.RawText,
					SuggestedCategory: reconcile.SuggestCategory(mention.NormalizedText),
				})
			}
			continue
		}

		// 한 알림장 안에서 같은 교재를 위치만 바꿔 여러 번 쓸 수 있다.
		// ("바이엘 10번, 바이엘 11번") 적용 이력은 교재당 한 번만 검사/기록하고,
		// 언급 자체는 순서대로 전부 반영해 마지막 위치가 남게 한다.
		if alreadyDone[material.MaterialID] {
			continue
		}
		item, err := s.applyMention(ctx, note, material, mention, !appliedNow[material.MaterialID])
		if err != nil {
			// 한 언급의 실패가 전체를 망치지 않게 한다
			logger.Error("Failed to apply progress mention",
				"error", err,
				"lesson_note_id", note.LessonNoteID,
				"material_id", material.MaterialID,
				"mention", mention.RawText,
			)
			continue
		}
		if item == nil {
			alreadyDone[material.MaterialID] = true
			continue
		}
		appliedNow[material.MaterialID] = true
		result.UpdatedItems = append(result.UpdatedItems, *item)
	}

	logger.Info("Lesson note reconciled",
		"lesson_note_id", note.LessonNoteID,
		"updated", len(result.UpdatedItems),
		"unknown", len(result.UnknownTextbooks),
	)
	return result, nil
}

// applyMention 은 일치한 언급 하나를 진도 기록에 반영합니다. firstOfNote 는
// 이번 호출에서 이 교재의 첫 언급인지 여부이며, 참일 때만 (원생, 교재, 알림장)
// 적용 이력을 검사하고 새로 남깁니다. 이력이 이미 있으면 아무것도 하지 않고
// nil 을 반환합니다. 거짓이면 이력은 건드리지 않고 기록만 덮어씁니다.
func (s *reconcileService) applyMention(ctx context.Context, note *model.LessonNote, material *model.Material, mention reconcile.Mention, firstOfNote bool) (*reconcile.UpdatedItem, error) {
	var item *reconcile.UpdatedItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if firstOfNote {
			applied, err := s.progressRepo.ApplicationExists(ctx, tx, note.StudentID, material.MaterialID, note.LessonNoteID)
			if err != nil {
				return err
			}
			if applied {
				return nil // 재저장, 재시도 등으로 다시 들어온 경우
			}
		}

		record, err := s.progressRepo.FindByStudentAndMaterial(ctx, tx, note.StudentID, material.MaterialID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			record = &model.ProgressRecord{
				ProgressID: uuid.New(),
				AcademyID:  note.AcademyID,
				StudentID:  note.StudentID,
				MaterialID: material.MaterialID,
			}
		}

		record.Position = mention.Position
		record.Percent = reconcile.ComputePercent(mention.Position, material.TotalUnits, record.Percent)
		record.LastAppliedLessonNoteID = note.LessonNoteID

		if err := s.progressRepo.Upsert(ctx, tx, record); err != nil {
			return err
		}

		if firstOfNote {
			app := &model.ProgressApplication{
				StudentID:    note.StudentID,
				MaterialID:   material.MaterialID,
				LessonNoteID: note.LessonNoteID,
				AppliedAt:    time.Now(),
			}
			if err := s.progressRepo.CreateApplication(ctx, tx, app); err != nil {
				// 동시 실행이 먼저 반영한 경우. 이 언급은 이미 처리된 것으로 본다.
				if errors.Is(err, model.ErrConflict) {
					item = nil
					return nil
				}
				return err
			}
		}

		// 원생 요약 갱신. 여러 교재를 언급하면 마지막 언급의 교재가 남는다.
		student, err := s.studentRepo.FindByID(ctx, tx, note.AcademyID, note.StudentID)
		if err != nil {
			return err
		}
		student.CurrentBookLabel = material.Title
		student.ProgressPercent = record.Percent
		if err := s.studentRepo.Update(ctx, tx, student); err != nil {
			return err
		}

		item = &reconcile.UpdatedItem{
			MaterialID:    material.MaterialID,
			MaterialTitle: material.Title,
			Position:      mention.Position,
			Percent:       record.Percent,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ResolveUnknown 은 미등록 교재 해결 마법사의 한 단계를 처리합니다.
// add 는 현재 항목을 교재로 등록한 뒤 알림장을 다시 대조해 새 교재에 진도를
// 반영합니다. 이미 반영된 항목은 적용 이력이 걸러 주므로 재대조는 안전합니다.
func (s *reconcileService) ResolveUnknown(ctx context.Context, academyID, lessonNoteID uuid.UUID, req *reconcile.ResolveRequest) (*reconcile.ResolveResponse, error) {
	logger := middleware.GetLogger(ctx)

	wizard := req.Wizard
	current, ok := wizard.Current()

	switch req.Action {
	case reconcile.ResolveActionCancel:
		wizard.Cancel()

	case reconcile.ResolveActionSkip:
		if !ok {
			return nil, model.NewAppError("INVALID_WIZARD_STATE", "처리할 항목이 없습니다.", "wizard", model.ErrInvalidInput)
		}
		wizard.Advance()

	case reconcile.ResolveActionAdd:
		if !ok {
			return nil, model.NewAppError("INVALID_WIZARD_STATE", "처리할 항목이 없습니다.", "wizard", model.ErrInvalidInput)
		}
		if req.Material == nil {
			return nil, model.NewAppError("INVALID_INPUT", "등록할 교재 정보가 필요합니다.", "material", model.ErrInvalidInput)
		}

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			exists, err := s.materialRepo.CheckTitleExists(ctx, tx, academyID, req.Material.Title, nil)
			if err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
			}
			if exists {
				// 이미 등록된 교재면 새로 만들 필요가 없다. 재대조만 수행한다.
				return nil
			}
			material := &model.Material{
				MaterialID:  uuid.New(),
				AcademyID:   academyID,
				Title:       req.Material.Title,
				Publisher:   req.Material.Publisher,
				Level:       req.Material.Level,
				Category:    req.Material.Category,
				Description: req.Material.Description,
				TotalUnits:  req.Material.TotalUnits,
			}
			if err := s.materialRepo.Create(ctx, tx, material); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "교재 등록에 실패했습니다.", "", err)
			}
			logger.Info("Material registered from wizard", "material_id", material.MaterialID, "title", material.Title, "from", current.Name)
			return nil
		})
		if err != nil {
			return nil, err
		}

		wizard.Advance()

		// 새 교재가 생겼으니 같은 알림장을 다시 대조한다
		result, err := s.Reconcile(ctx, academyID, lessonNoteID)
		if err != nil {
			return nil, err
		}
		return &reconcile.ResolveResponse{Wizard: wizard, Done: wizard.Done(), Result: result}, nil

	default:
		return nil, model.NewAppError("INVALID_INPUT", "알 수 없는 동작입니다.", "action", model.ErrInvalidInput)
	}

	return &reconcile.ResolveResponse{Wizard: wizard, Done: wizard.Done()}, nil
}
