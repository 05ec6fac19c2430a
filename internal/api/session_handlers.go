package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/pkg/httputil"
)

type SetEntryRequest struct {
	SetNumber       int     `json:"set_number"`
	Reps            int     `json:"reps"`
	WeightKg        float64 `json:"weight_kg"`
	DurationSeconds int     `json:"duration_seconds"`
	Completed       bool    `json:"completed"`
}

type ExerciseEntryRequest struct {
	ExerciseID uuid.UUID         `json:"exercise_id"`
	Sets       []SetEntryRequest `json:"sets"`
}

type CreateSessionRequest struct {
	UserID        uuid.UUID              `json:"user_id,omitempty"`
	ScheduledDate time.Time              `json:"scheduled_date"`
	Status        string                 `json:"status,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	Exercises     []ExerciseEntryRequest `json:"exercises"`
}

type UpdateSessionsRequest struct {
	SessionID  uuid.UUID   `json:"session_id,omitempty"`
	SessionIDs []uuid.UUID `json:"session_ids,omitempty"`
	Status     string      `json:"status"`
	Notes      string      `json:"notes,omitempty"`
}

type DeleteSessionsRequest struct {
	SessionIDs []uuid.UUID `json:"session_ids"`
}

type AddSessionDetailRequest struct {
	ExerciseID uuid.UUID `json:"exercise_id"`
}

type LogSetRequest struct {
	SessionDetailID uuid.UUID `json:"session_detail_id"`
	SetNumber       int       `json:"set_number"`
	Reps            int       `json:"reps"`
	WeightKg        float64   `json:"weight_kg"`
	DurationSeconds int       `json:"duration_seconds"`
	Completed       bool      `json:"completed"`
}

type UpdateSetRequest struct {
	Reps            int     `json:"reps"`
	WeightKg        float64 `json:"weight_kg"`
	DurationSeconds int     `json:"duration_seconds"`
	Completed       bool    `json:"completed"`
}

// writeWorkoutError maps service errors to the machine-readable envelope.
// Owner mismatch stays distinct from not-found on this surface.
func writeWorkoutError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(action + " error: validation failed")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, err.Error())
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(action + " error: different owner")
		httputil.WriteAPIError(w, http.StatusForbidden, httputil.CodeAccessDenied, "resource belongs to another user")
	case errors.Is(err, errorvalues.ErrSessionNotFound),
		errors.Is(err, errorvalues.ErrDetailNotFound),
		errors.Is(err, errorvalues.ErrSetNotFound),
		errors.Is(err, errorvalues.ErrExerciseNotFound),
		errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(action + " error: entity doesn't exist")
		httputil.WriteAPIError(w, http.StatusNotFound, httputil.CodeEntityNotFound, err.Error())
	case errors.Is(err, errorvalues.ErrSessionExists),
		errors.Is(err, errorvalues.ErrDetailExists):
		logger.Error(action + " error: conflict")
		httputil.WriteAPIError(w, http.StatusConflict, httputil.CodeConflict, err.Error())
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteAPIError(w, http.StatusInternalServerError, httputil.CodeInternalError, "internal error")
	}
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateSessionRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create session error: invalid body")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid request body")
		return
	}
	uid, err := s.resolveTargetUID(r, req.UserID)
	if err != nil {
		logger.Error("create session error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	exercises := make([]service.ExerciseLogEntry, 0, len(req.Exercises))
	for _, ex := range req.Exercises {
		sets := make([]service.SetEntry, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, service.SetEntry{
				SetNumber:       set.SetNumber,
				Reps:            set.Reps,
				WeightKg:        set.WeightKg,
				DurationSeconds: set.DurationSeconds,
				Completed:       set.Completed,
			})
		}
		exercises = append(exercises, service.ExerciseLogEntry{
			ExerciseID: ex.ExerciseID,
			Sets:       sets,
		})
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.workoutService.CreateSession(ctx, uid, &service.CreateSessionRequest{
		ScheduledDate: req.ScheduledDate,
		Status:        req.Status,
		Notes:         req.Notes,
		Exercises:     exercises,
	})
	if err != nil {
		writeWorkoutError(w, logger, "create session", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusCreated, session)
	logger.Info("session created", slog.String("session_id", session.ID.String()))
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get session error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get session error: invalid id in path value")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid session id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.workoutService.GetSession(ctx, id, uid)
	if err != nil {
		writeWorkoutError(w, logger, "get session", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, session)
	logger.Info("session provided")
}

// UpdateSessions serves both the single update and the batch status change
// depending on which id field the body carries.
func (s *Server) UpdateSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update sessions error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	var req UpdateSessionsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update sessions error: invalid body")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if len(req.SessionIDs) > 0 {
		err = s.workoutService.UpdateStatusBatch(ctx, uid, req.SessionIDs, req.Status)
	} else if req.SessionID != uuid.Nil {
		err = s.workoutService.UpdateSession(ctx, uid, &service.UpdateSessionRequest{
			SessionID: req.SessionID,
			Status:    req.Status,
			Notes:     req.Notes,
		})
	} else {
		logger.Error("update sessions error: no id provided")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "session_id or session_ids required")
		return
	}
	if err != nil {
		writeWorkoutError(w, logger, "update sessions", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, nil)
	logger.Info("sessions updated")
}

func (s *Server) DeleteSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete sessions error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	var req DeleteSessionsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("delete sessions error: invalid body")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err = s.workoutService.DeleteSessions(ctx, uid, req.SessionIDs)
	if err != nil {
		writeWorkoutError(w, logger, "delete sessions", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, nil)
	logger.Info("sessions deleted")
}

func (s *Server) GetSessionDetails(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get details error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get details error: invalid id in path value")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid session id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	details, err := s.workoutService.ListDetails(ctx, id, uid)
	if err != nil {
		writeWorkoutError(w, logger, "get details", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, details)
	logger.Info("session details provided")
}

func (s *Server) AddSessionDetail(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add detail error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("add detail error: invalid id in path value")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid session id in path value")
		return
	}
	var req AddSessionDetailRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.ExerciseID == uuid.Nil {
		logger.Error("add detail error: invalid body")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	detail, err := s.workoutService.AddDetail(ctx, uid, sessionID, req.ExerciseID)
	if err != nil {
		writeWorkoutError(w, logger, "add detail", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusCreated, detail)
	logger.Info("session detail added")
}

func (s *Server) DeleteSessionDetail(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete detail error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("delete detail error: invalid id in path value")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid detail id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.workoutService.DeleteDetail(ctx, id, uid)
	if err != nil {
		writeWorkoutError(w, logger, "delete detail", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, nil)
	logger.Info("session detail deleted")
}

func (s *Server) GetSets(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get sets error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	detailID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get sets error: invalid id in path value")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid detail id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	sets, err := s.setService.ListSets(ctx, detailID, uid)
	if err != nil {
		writeWorkoutError(w, logger, "get sets", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, sets)
	logger.Info("sets provided")
}

func (s *Server) LogSet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log set error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	var req LogSetRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log set error: invalid body")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	set, err := s.setService.LogSet(ctx, uid, &service.LogSetRequest{
		SessionDetailID: req.SessionDetailID,
		SetNumber:       req.SetNumber,
		Reps:            req.Reps,
		WeightKg:        req.WeightKg,
		DurationSeconds: req.DurationSeconds,
		Completed:       req.Completed,
	})
	if err != nil {
		writeWorkoutError(w, logger, "log set", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusCreated, set)
	logger.Info("set logged")
}

func (s *Server) UpdateSet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update set error: unauthorized")
		httputil.WriteAPIError(w, http.StatusUnauthorized, httputil.CodeUnauthorized, "no authorization")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update set error: invalid id in path value")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid set id in path value")
		return
	}
	var req UpdateSetRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update set error: invalid body")
		httputil.WriteAPIError(w, http.StatusBadRequest, httputil.CodeValidationError, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	set, err := s.setService.UpdateSet(ctx, uid, &service.UpdateSetRequest{
		SetID:           id,
		Reps:            req.Reps,
		WeightKg:        req.WeightKg,
		DurationSeconds: req.DurationSeconds,
		Completed:       req.Completed,
	})
	if err != nil {
		writeWorkoutError(w, logger, "update set", err)
		return
	}
	httputil.WriteAPISuccess(w, http.StatusOK, set)
	logger.Info("set updated")
}
