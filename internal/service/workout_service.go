package service

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/pkg/entity"
)

// WorkoutService coordinates the multi-row session mutations: session +
// details + sets created in one transaction, score recompute on every
// transition into COMPLETED, child-before-parent deletes.
type WorkoutService struct {
	sessionsRepo  repository.SessionsRepositoryI
	detailsRepo   repository.SessionDetailsRepositoryI
	setsRepo      repository.SetsRepositoryI
	exercisesRepo repository.ExercisesRepositoryI
	owner         *OwnershipVerifier
}

func NewWorkoutService(
	sessionsRepo repository.SessionsRepositoryI,
	detailsRepo repository.SessionDetailsRepositoryI,
	setsRepo repository.SetsRepositoryI,
	exercisesRepo repository.ExercisesRepositoryI,
	owner *OwnershipVerifier,
) *WorkoutService {
	if sessionsRepo == nil || detailsRepo == nil || setsRepo == nil || exercisesRepo == nil || owner == nil {
		log.Fatal("on workout service provided nil dependencies")
	}
	return &WorkoutService{
		sessionsRepo:  sessionsRepo,
		detailsRepo:   detailsRepo,
		setsRepo:      setsRepo,
		exercisesRepo: exercisesRepo,
		owner:         owner,
	}
}

func (ws *WorkoutService) CreateSession(ctx context.Context, uid uuid.UUID, req *CreateSessionRequest) (*entity.WorkoutSession, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	status := req.Status
	if status == "" {
		status = entity.StatusPending
	}

	// An exercise must not produce two detail rows in one session even if
	// the caller repeats it: merge repeated entries' set lists, keeping
	// first-seen order.
	order := make([]uuid.UUID, 0, len(req.Exercises))
	grouped := make(map[uuid.UUID][]SetEntry, len(req.Exercises))
	for _, ex := range req.Exercises {
		if _, seen := grouped[ex.ExerciseID]; !seen {
			order = append(order, ex.ExerciseID)
		}
		grouped[ex.ExerciseID] = append(grouped[ex.ExerciseID], ex.Sets...)
	}

	var score float64
	details := make([]repository.DetailInsert, 0, len(order))
	for _, exerciseID := range order {
		exercise, err := ws.exercisesRepo.GetByID(ctx, exerciseID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrExerciseNotFound) {
				return nil, err
			}
			return nil, errors.New("repository error: " + err.Error())
		}
		entries := grouped[exerciseID]
		// Same defaulting as the stored-snapshot recompute: an unset
		// factor scores as 1.0.
		factor := exercise.DifficultyFactor
		if factor == 0 {
			factor = 1.0
		}
		sets := make([]entity.ExerciseSet, 0, len(entries))
		allCompleted := len(entries) > 0
		for i, entry := range entries {
			set := routeSetFields(exercise.Type, entry.Reps, entry.WeightKg, entry.DurationSeconds)
			set.SetNumber = entry.SetNumber
			if set.SetNumber == 0 {
				set.SetNumber = i + 1
			}
			set.Status = entity.StatusUnfinished
			if entry.Completed {
				set.Status = entity.StatusCompleted
			} else {
				allCompleted = false
			}
			score += float64(set.Reps) * set.WeightKg * factor
			sets = append(sets, set)
		}
		detailStatus := entity.StatusUnfinished
		if allCompleted {
			detailStatus = entity.StatusCompleted
		}
		details = append(details, repository.DetailInsert{
			ExerciseID: exerciseID,
			Status:     detailStatus,
			Sets:       sets,
		})
	}

	session := &entity.WorkoutSession{
		UserID:        uid,
		ScheduledDate: req.ScheduledDate,
		Status:        status,
		Notes:         req.Notes,
	}
	// Score is only persisted when the caller creates the session already
	// COMPLETED; otherwise it stays 0 until the completing update.
	if status == entity.StatusCompleted {
		session.GrScore = int(math.Round(score))
	}
	id, err := ws.sessionsRepo.CreateWithDetails(ctx, session, details)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionExists):
			return nil, errorvalues.ErrSessionExists
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			return nil, errorvalues.ErrExerciseNotFound
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	created, err := ws.sessionsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return created, nil
}

func (ws *WorkoutService) GetSession(ctx context.Context, sessionID, uid uuid.UUID) (*SessionWithDetails, error) {
	session, err := ws.owner.Session(ctx, sessionID, uid)
	if err != nil {
		return nil, err
	}
	details, err := ws.detailsRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, errors.New("details repository error: " + err.Error())
	}
	return &SessionWithDetails{
		Session: session,
		Details: details,
	}, nil
}

func (ws *WorkoutService) UpdateSession(ctx context.Context, uid uuid.UUID, req *UpdateSessionRequest) error {
	err := validate.Struct(*req)
	if err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	session, err := ws.owner.Session(ctx, req.SessionID, uid)
	if err != nil {
		return err
	}
	session.Status = req.Status
	if req.Notes != "" {
		session.Notes = req.Notes
	}
	// Entering COMPLETED recomputes the score over the full stored
	// snapshot; every other transition carries the stored value along
	// (stale scores from a prior completion stay put).
	if req.Status == entity.StatusCompleted {
		scored, err := ws.setsRepo.ListScoredBySession(ctx, req.SessionID)
		if err != nil {
			return errors.New("sets repository error: " + err.Error())
		}
		session.GrScore = SessionScore(scored)
	}
	if err = ws.sessionsRepo.Update(ctx, session); err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) UpdateStatusBatch(ctx context.Context, uid uuid.UUID, ids []uuid.UUID, status string) error {
	if len(ids) == 0 {
		return errors.Join(errorvalues.ErrValidation, errors.New("empty id list"))
	}
	if _, err := ws.owner.SessionsBatch(ctx, ids, uid); err != nil {
		return err
	}
	scores := make(map[uuid.UUID]int)
	if status == entity.StatusCompleted {
		for _, id := range ids {
			scored, err := ws.setsRepo.ListScoredBySession(ctx, id)
			if err != nil {
				return errors.New("sets repository error: " + err.Error())
			}
			scores[id] = SessionScore(scored)
		}
	}
	if err := ws.sessionsRepo.UpdateStatusBatch(ctx, ids, status, scores); err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) DeleteSessions(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return errors.Join(errorvalues.ErrValidation, errors.New("empty id list"))
	}
	if _, err := ws.owner.SessionsBatch(ctx, ids, uid); err != nil {
		return err
	}
	if err := ws.sessionsRepo.DeleteBatch(ctx, ids); err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) ListDetails(ctx context.Context, sessionID, uid uuid.UUID) ([]*entity.SessionDetail, error) {
	if _, err := ws.owner.Session(ctx, sessionID, uid); err != nil {
		return nil, err
	}
	details, err := ws.detailsRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, errors.New("details repository error: " + err.Error())
	}
	return details, nil
}

func (ws *WorkoutService) AddDetail(ctx context.Context, uid, sessionID, exerciseID uuid.UUID) (*entity.SessionDetail, error) {
	if _, err := ws.owner.Session(ctx, sessionID, uid); err != nil {
		return nil, err
	}
	if _, err := ws.exercisesRepo.GetByID(ctx, exerciseID); err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	detail := &entity.SessionDetail{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Status:     entity.StatusUnfinished,
	}
	id, err := ws.detailsRepo.Create(ctx, detail)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDetailExists):
			return nil, errorvalues.ErrDetailExists
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("details repository error: " + err.Error())
	}
	detail.ID = id
	return detail, nil
}

// DeleteDetail removes the detail and its child set rows, children first.
func (ws *WorkoutService) DeleteDetail(ctx context.Context, detailID, uid uuid.UUID) error {
	if _, err := ws.owner.SessionDetail(ctx, detailID, uid); err != nil {
		return err
	}
	if err := ws.detailsRepo.DeleteWithSets(ctx, detailID); err != nil {
		if errors.Is(err, errorvalues.ErrDetailNotFound) {
			return err
		}
		return errors.New("details repository error: " + err.Error())
	}
	return nil
}

// routeSetFields keeps the cardio and strength representations mutually
// exclusive: cardio rows carry duration only, everything else carries
// reps and weight only.
func routeSetFields(exerciseType string, reps int, weightKg float64, durationSeconds int) entity.ExerciseSet {
	if exerciseType == entity.ExerciseCardio {
		return entity.ExerciseSet{
			DurationSeconds: durationSeconds,
		}
	}
	return entity.ExerciseSet{
		Reps:     reps,
		WeightKg: weightKg,
	}
}
