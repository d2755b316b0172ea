// internal/repository/progress_integration_test.go
package repository_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// 실제 PostgreSQL 컨테이너를 띄워 복합 PK 와 유니크 인덱스가 멱등성을
// 보장하는지 확인합니다. Docker 가 없는 환경에서는 전체를 건너뜁니다.

var testDB *gorm.DB

func TestMain(m *testing.M) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		log.Println("Docker not available, skipping integration tests")
		os.Exit(m.Run())
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=piano_academy_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Printf("Could not start PostgreSQL resource, skipping integration tests: %s", err)
		os.Exit(m.Run())
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=piano_academy_test sslmode=disable TimeZone=Asia/Seoul",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err = testDB.AutoMigrate(
		&model.Academy{},
		&model.Material{},
		&model.Student{},
		&model.LessonNote{},
		&model.ProgressRecord{},
		&model.ProgressApplication{},
	); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func requireTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("PostgreSQL container not available")
	}
	return testDB
}

func TestProgressRepository_ApplicationIdempotency(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	repo := repository.NewGormProgressRepository()

	studentID := uuid.New()
	materialID := uuid.New()
	noteID := uuid.New()

	app := &model.ProgressApplication{
		StudentID:    studentID,
		MaterialID:   materialID,
		LessonNoteID: noteID,
		AppliedAt:    time.Now(),
	}

	t.Run("정상계: 첫 적용 이력은 저장된다", func(t *testing.T) {
		exists, err := repo.ApplicationExists(ctx, db, studentID, materialID, noteID)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.CreateApplication(ctx, db, app))

		exists, err = repo.ApplicationExists(ctx, db, studentID, materialID, noteID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("이상계: 같은 조합의 재삽입은 Conflict", func(t *testing.T) {
		err := repo.CreateApplication(ctx, db, &model.ProgressApplication{
			StudentID:    studentID,
			MaterialID:   materialID,
			LessonNoteID: noteID,
			AppliedAt:    time.Now(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("정상계: 다른 알림장이면 새 이력", func(t *testing.T) {
		otherNoteID := uuid.New()
		require.NoError(t, repo.CreateApplication(ctx, db, &model.ProgressApplication{
			StudentID:    studentID,
			MaterialID:   materialID,
			LessonNoteID: otherNoteID,
			AppliedAt:    time.Now(),
		}))
	})
}

func TestProgressRepository_UpsertAndList(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	repo := repository.NewGormProgressRepository()

	academyID := uuid.New()
	studentID := uuid.New()
	material := &model.Material{
		MaterialID: uuid.New(),
		AcademyID:  academyID,
		Title:      "바이엘",
		Level:      model.MaterialLevelBeginner,
		Category:   model.MaterialCategoryPiano,
		TotalUnits: 106,
	}
	require.NoError(t, db.Create(material).Error)

	record := &model.ProgressRecord{
		ProgressID: uuid.New(),
		AcademyID:  academyID,
		StudentID:  studentID,
		MaterialID: material.MaterialID,
		Position:   "60번",
		Percent:    57,
	}
	require.NoError(t, repo.Upsert(ctx, db, record))

	t.Run("정상계: 같은 레코드 갱신은 행을 늘리지 않는다", func(t *testing.T) {
		record.Position = "61번"
		record.Percent = 58
		require.NoError(t, repo.Upsert(ctx, db, record))

		var count int64
		require.NoError(t, db.Model(&model.ProgressRecord{}).
			Where("student_id = ? AND material_id = ?", studentID, material.MaterialID).
			Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("정상계: 목록은 교재를 함께 내려준다", func(t *testing.T) {
		records, err := repo.ListByStudent(ctx, db, studentID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "61번", records[0].Position)
		require.NotNil(t, records[0].Material)
		assert.Equal(t, "바이엘", records[0].Material.Title)
	})

	t.Run("정상계: 원생 삭제 시 진도도 함께 삭제", func(t *testing.T) {
		require.NoError(t, repo.DeleteByStudent(ctx, db, studentID))
		records, err := repo.ListByStudent(ctx, db, studentID)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
