// internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/config"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	RegisterAcademy(ctx context.Context, req *model.RegisterRequest) (*model.Academy, error)
	VerifyAccount(ctx context.Context, tokenString string) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetAcademy(ctx context.Context, academyID uuid.UUID) (*model.Academy, error)
}

type authService struct {
	db          *gorm.DB
	academyRepo repository.AcademyRepository
	tokenRepo   repository.TokenRepository
	mailer      Mailer
	cfg         *config.Config
}

func NewAuthService(db *gorm.DB, academyRepo repository.AcademyRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		academyRepo: academyRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		cfg:         cfg,
	}
}

// RegisterAcademy 는 학원 계정을 만들고 활성화 메일을 보냅니다.
func (s *authService) RegisterAcademy(ctx context.Context, req *model.RegisterRequest) (*model.Academy, error) {
	logger := middleware.GetLogger(ctx)
	var newAcademy *model.Academy

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 이메일 중복 확인
		_, err := s.academyRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "이미 사용 중인 이메일입니다.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류가 발생했습니다.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "비밀번호 처리 중 오류가 발생했습니다.", "", err)
		}

		academy := &model.Academy{
			AcademyID:    uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
			IsActive:     false,
		}

		if err := s.academyRepo.Create(ctx, tx, academy); err != nil {
			// 레이스로 인한 유니크 제약 위반
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during academy creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_EMAIL", "이미 사용 중인 이메일입니다.", "email", model.ErrConflict)
			}
			logger.Error("Failed to create academy in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "계정 생성에 실패했습니다.", "", err)
		}
		newAcademy = academy

		tokenString, err := s.generateAndSaveVerificationToken(ctx, tx, newAcademy.AcademyID)
		if err != nil {
			return err
		}

		if err := s.sendVerificationEmail(ctx, newAcademy.Email, tokenString); err != nil {
			return model.NewAppError("EMAIL_SEND_FAILED", "확인 메일 발송에 실패했습니다. 잠시 후 다시 시도해 주세요.", "", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Academy registered and verification email sent", "academy_id", newAcademy.AcademyID, "email", newAcademy.Email)
	return newAcademy, nil
}

// VerifyAccount 는 토큰을 검증하고 계정을 활성화합니다.
func (s *authService) VerifyAccount(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindByToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Verification token not found", "token", tokenString)
				return model.NewAppError("INVALID_TOKEN", "이 링크는 유효하지 않거나 이미 사용되었습니다.", "token", model.ErrInvalidInput)
			}
			logger.Error("Error finding verification token", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "오류가 발생했습니다.", "", err)
		}

		if time.Now().After(token.ExpiresAt) {
			logger.Warn("Verification token expired", "token", tokenString, "expires_at", token.ExpiresAt)
			_ = s.tokenRepo.Delete(ctx, tx, tokenString) // 만료 토큰은 지운다
			return model.NewAppError("INVALID_TOKEN", "이 링크의 유효 기간이 지났습니다.", "token", model.ErrInvalidInput)
		}

		updateResult := tx.Model(&model.Academy{}).Where("academy_id = ?", token.AcademyID).Update("is_active", true)
		if updateResult.Error != nil {
			logger.Error("Failed to activate academy account", "error", updateResult.Error, "academy_id", token.AcademyID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "계정 활성화에 실패했습니다.", "", updateResult.Error)
		}
		if updateResult.RowsAffected == 0 {
			logger.Error("Academy not found during activation", "academy_id", token.AcademyID)
			return model.NewAppError("NOT_FOUND", "계정을 찾을 수 없습니다.", "", model.ErrNotFound)
		}

		if err := s.tokenRepo.Delete(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used verification token", "error", err, "token", tokenString)
			// 토큰 삭제 실패는 치명적이지 않으므로 계속 진행
		}

		logger.Info("Account verified successfully", "academy_id", token.AcademyID)
		return nil
	})
}

// Login 은 계정을 인증하고 JWT 를 돌려줍니다.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	academy, err := s.academyRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: account not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "이메일 또는 비밀번호가 올바르지 않습니다.", "", model.ErrInvalidInput)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(academy.PasswordHash), []byte(req.Password))
	if err != nil {
		logger.Warn("Login failed: password mismatch", "academy_id", academy.AcademyID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "이메일 또는 비밀번호가 올바르지 않습니다.", "", model.ErrInvalidInput)
	}

	if !academy.IsActive {
		logger.Warn("Login failed: account not active", "academy_id", academy.AcademyID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "계정이 활성화되지 않았습니다. 가입 시 받은 메일을 확인해 주세요.", "", model.ErrForbidden)
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    config.AppName,
		Subject:   academy.AcademyID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.JWT.ExpiresInHours) * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "academy_id", academy.AcademyID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "토큰 생성에 실패했습니다.", "", err)
	}

	logger.Info("Login successful", "academy_id", academy.AcademyID)
	return &model.LoginResponse{AccessToken: signedToken}, nil
}

// GetAcademy 는 학원 계정 정보를 조회합니다.
func (s *authService) GetAcademy(ctx context.Context, academyID uuid.UUID) (*model.Academy, error) {
	logger := middleware.GetLogger(ctx)
	academy, err := s.academyRepo.FindByID(ctx, s.db, academyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Academy not found", "academy_id", academyID.String())
			return nil, model.NewAppError("ACADEMY_NOT_FOUND", "학원 계정을 찾을 수 없습니다.", "", model.ErrNotFound)
		}
		logger.Error("Error finding academy by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "서버 내부 오류", "", err)
	}
	return academy, nil
}

// --- 헬퍼 ---

func (s *authService) generateAndSaveVerificationToken(ctx context.Context, tx *gorm.DB, academyID uuid.UUID) (string, error) {
	logger := middleware.GetLogger(ctx)
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		logger.Error("Failed to generate random bytes for token", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "토큰 생성에 실패했습니다.", "", err)
	}
	tokenString := hex.EncodeToString(tokenBytes)

	verificationToken := &model.AccountVerificationToken{
		Token:     tokenString,
		AcademyID: academyID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := s.tokenRepo.Create(ctx, tx, verificationToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "토큰 저장에 실패했습니다.", "", err)
	}
	return tokenString, nil
}

func (s *authService) sendVerificationEmail(ctx context.Context, email, token string) error {
	logger := middleware.GetLogger(ctx)
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.App.VerificationBaseURL, token)
	subject := "[피아노 학원] 계정 활성화를 완료해 주세요"
	body := fmt.Sprintf("가입해 주셔서 감사합니다.\n\n아래 링크를 눌러 계정을 활성화해 주세요:\n%s\n\n이 링크는 24시간 동안 유효합니다.", verifyURL)

	logger.Info("Sending verification email", "to", email)
	return s.mailer.Send(ctx, email, subject, body)
}
