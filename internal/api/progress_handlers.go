package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/pkg/httputil"
)

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var override uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("summary error: invalid user_id query param")
			httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid user_id")
			return
		}
		override = parsed
	}
	uid, err := s.resolveTargetUID(r, override)
	if err != nil {
		logger.Error("summary error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	periodType := r.URL.Query().Get("period_type")
	if periodType != service.PeriodWeekly && periodType != service.PeriodMonthly {
		logger.Error("summary error: invalid period type")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "period_type must be weekly or monthly")
		return
	}
	var start *time.Time
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			logger.Error("summary error: invalid start date")
			httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "start_date must be YYYY-MM-DD")
			return
		}
		start = &parsed
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summary, err := s.progressService.Summary(ctx, uid, periodType, start)
	if err != nil {
		logger.Error("summary error: service error", slog.String("error", err.Error()))
		httputil.WriteAPIError(w, http.StatusInternalServerError, httputil.CodeInternalError, "internal error building summary")
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, summary)
	logger.Info("summary provided")
}
