// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/config"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler 는 주기 작업을 관리합니다. 현재는 수강권 점검 스윕 하나입니다:
// 기간제 만료 예고 메일 발송과 만료된 인증 토큰 정리.
type Scheduler struct {
	cron        *cron.Cron
	db          *gorm.DB
	studentRepo repository.StudentRepository
	tokenRepo   repository.TokenRepository
	mailer      service.Mailer
	cfg         *config.Config
	logger      *slog.Logger
}

func New(
	db *gorm.DB,
	studentRepo repository.StudentRepository,
	tokenRepo repository.TokenRepository,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		db:          db,
		studentRepo: studentRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start 는 크론 잡을 등록하고 스케줄러를 시작합니다.
func (s *Scheduler) Start() error {
	spec := s.cfg.Scheduler.TicketSweepSpec

	if _, err := s.cron.AddFunc(spec, s.runTicketSweep); err != nil {
		s.logger.Error("Failed to register ticket sweep job", "error", err, "spec", spec)
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", "ticket_sweep_spec", spec)
	return nil
}

// Stop 은 진행 중인 잡이 끝날 때까지 기다린 뒤 스케줄러를 멈춥니다.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runTicketSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s.logger.Info("Ticket sweep started")

	s.sweepExpiringTickets(ctx)
	s.sweepExpiredTokens(ctx)

	s.logger.Info("Ticket sweep finished")
}

// sweepExpiringTickets 는 만료가 임박한 기간제 원생의 학부모에게 안내 메일을
// 보냅니다. 실패한 발송은 로그만 남기고 다음 원생으로 넘어갑니다.
func (s *Scheduler) sweepExpiringTickets(ctx context.Context) {
	now := time.Now()
	from := now.Format("2006-01-02")
	to := now.AddDate(0, 0, s.cfg.App.TicketExpiryNoticeDays).Format("2006-01-02")

	students, err := s.studentRepo.ListTicketExpiring(ctx, s.db, from, to)
	if err != nil {
		s.logger.Error("Failed to list students with expiring tickets", "error", err)
		return
	}

	sent := 0
	for _, student := range students {
		if student.ParentEmail == "" {
			continue
		}
		subject, body := service.ExpiryNotice(&student, now)
		if err := s.mailer.Send(ctx, student.ParentEmail, subject, body); err != nil {
			s.logger.Error("Failed to send expiry notice", "error", err, "student_id", student.StudentID)
			continue
		}
		sent++
	}

	s.logger.Info("Expiry notices processed", "candidates", len(students), "sent", sent)
}

func (s *Scheduler) sweepExpiredTokens(ctx context.Context) {
	deleted, err := s.tokenRepo.DeleteExpired(ctx, s.db, time.Now())
	if err != nil {
		s.logger.Error("Failed to delete expired verification tokens", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("Expired verification tokens deleted", "count", deleted)
	}
}
