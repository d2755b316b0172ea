// internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
	"github.com/newrise0410/piano-academy-app-sub000/internal/service"
	"github.com/newrise0410/piano-academy-app-sub000/internal/webutil"
)

type ExportHandler struct {
	service service.ExportService
	logger  *slog.Logger
}

func NewExportHandler(s service.ExportService, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{
		service: s,
		logger:  logger,
	}
}

// GetStudentRoster 는 원생 명부를 xlsx 파일로 내려줍니다.
func (h *ExportHandler) GetStudentRoster(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudentRoster"))

	academyID, err := middleware.GetAcademyIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	data, err := h.service.ExportStudentRoster(r.Context(), academyID)
	if err != nil {
		logger.Error("Error exporting student roster in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	filename := fmt.Sprintf("students_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error("Failed to write xlsx response", slog.Any("error", err))
	}

	logger.Info("Student roster exported successfully", slog.String("academy_id", academyID.String()))
}
