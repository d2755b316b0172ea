// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/newrise0410/piano-academy-app-sub000/internal/config"
	"github.com/newrise0410/piano-academy-app-sub000/internal/handlers"
	"github.com/newrise0410/piano-academy-app-sub000/internal/llm"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/model"
	"github.com/newrise0410/piano-academy-app-sub000/internal/repository"
	"github.com/newrise0410/piano-academy-app-sub000/internal/scheduler"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 설정 로딩 전용 임시 로거
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env 는 로컬 개발 편의용이라 없어도 무방
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger()
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := db.AutoMigrate(
		&model.Academy{},
		&model.AccountVerificationToken{},
		&model.Material{},
		&model.Student{},
		&model.LessonNote{},
		&model.ProgressRecord{},
		&model.ProgressApplication{},
		&model.Attendance{},
	); err != nil {
		slog.Error("Error running database migration", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	academyRepo := repository.NewGormAcademyRepository()
	tokenRepo := repository.NewGormTokenRepository()
	materialRepo := repository.NewGormMaterialRepository()
	studentRepo := repository.NewGormStudentRepository()
	noteRepo := repository.NewGormLessonNoteRepository()
	progressRepo := repository.NewGormProgressRepository()
	attendanceRepo := repository.NewGormAttendanceRepository()

	mailer := service.NewMailer(&config.Cfg)

	var llmProvider llm.Provider
	if config.Cfg.Anthropic.APIKey != "" {
		provider, err := llm.NewAnthropicProvider(
			config.Cfg.Anthropic.APIKey,
			config.Cfg.Anthropic.Model,
			config.Cfg.Anthropic.MaxTokens,
		)
		if err != nil {
			slog.Warn("Failed to initialize LLM provider, polish feature disabled", slog.Any("error", err))
		} else {
			llmProvider = provider
		}
	} else {
		slog.Info("Anthropic API key not set, polish feature disabled")
	}

	authService := service.NewAuthService(db, academyRepo, tokenRepo, mailer, &config.Cfg)
	materialService := service.NewMaterialService(db, materialRepo)
	studentService := service.NewStudentService(db, studentRepo, progressRepo)
	reconcileService := service.NewReconcileService(db, noteRepo, materialRepo, studentRepo, progressRepo, nil)
	lessonNoteService := service.NewLessonNoteService(db, noteRepo, studentRepo, reconcileService)
	attendanceService := service.NewAttendanceService(db, attendanceRepo, studentRepo, mailer, &config.Cfg)
	exportService := service.NewExportService(db, studentRepo)
	polishService := service.NewPolishService(llmProvider)

	authHandler := handlers.NewAuthHandler(authService, logger)
	materialHandler := handlers.NewMaterialHandler(materialService, logger)
	studentHandler := handlers.NewStudentHandler(studentService, logger)
	lessonNoteHandler := handlers.NewLessonNoteHandler(lessonNoteService, reconcileService, polishService, logger)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, logger)
	exportHandler := handlers.NewExportHandler(exportService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.PostRegister)
		r.Get("/auth/verify", authHandler.GetVerify)
		r.Post("/auth/login", authHandler.PostLogin)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				slog.Warn("Auth disabled, applying DEV academy context middleware")
				r.Use(middleware.DevAcademyContextMiddleware)
			}

			r.Get("/auth/me", authHandler.GetMe)

			r.Route("/materials", func(r chi.Router) {
				r.Post("/", materialHandler.PostMaterial)
				r.Get("/", materialHandler.GetMaterials)
				r.Get("/{material_id}", materialHandler.GetMaterial)
				r.Put("/{material_id}", materialHandler.PutMaterial)
				r.Delete("/{material_id}", materialHandler.DeleteMaterial)
			})

			r.Route("/students", func(r chi.Router) {
				r.Post("/", studentHandler.PostStudent)
				r.Get("/", studentHandler.GetStudents)
				r.Get("/export", exportHandler.GetStudentRoster)
				r.Get("/{student_id}", studentHandler.GetStudent)
				r.Patch("/{student_id}", studentHandler.PatchStudent)
				r.Delete("/{student_id}", studentHandler.DeleteStudent)
				r.Get("/{student_id}/progress", studentHandler.GetStudentProgress)
				r.Post("/{student_id}/lesson-notes", lessonNoteHandler.PostLessonNote)
				r.Get("/{student_id}/lesson-notes", lessonNoteHandler.GetLessonNotes)
				r.Put("/{student_id}/attendance", attendanceHandler.PutAttendance)
				r.Get("/{student_id}/attendance", attendanceHandler.GetAttendance)
			})

			r.Route("/lesson-notes", func(r chi.Router) {
				r.Post("/polish", lessonNoteHandler.PostPolish)
				r.Get("/{lesson_note_id}", lessonNoteHandler.GetLessonNote)
				r.Put("/{lesson_note_id}", lessonNoteHandler.PutLessonNote)
				r.Delete("/{lesson_note_id}", lessonNoteHandler.DeleteLessonNote)
				r.Post("/{lesson_note_id}/reconcile", lessonNoteHandler.PostReconcile)
				r.Post("/{lesson_note_id}/resolve-unknown", lessonNoteHandler.PostResolveUnknown)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := sqlDB.PingContext(req.Context()); err != nil {
			slog.ErrorContext(req.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Scheduler
	var sched *scheduler.Scheduler
	if config.Cfg.Scheduler.Enabled {
		sched = scheduler.New(db, studentRepo, tokenRepo, mailer, &config.Cfg, logger)
		if err := sched.Start(); err != nil {
			slog.Error("Error starting scheduler", slog.Any("error", err))
			os.Exit(1)
		}
		defer sched.Stop()
	}

	// Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger 는 설정의 로그 레벨과 APP_ENV 에 따라 slog 로거를 만듭니다.
// 개발 환경에서는 tint 의 컬러 출력을, 그 외에는 JSON 을 사용합니다.
func newLogger() *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}
