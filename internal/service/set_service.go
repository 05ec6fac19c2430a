package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/pkg/entity"
)

// SetService handles single set rows and keeps the parent detail status
// derived from its children after every write.
type SetService struct {
	setsRepo      repository.SetsRepositoryI
	detailsRepo   repository.SessionDetailsRepositoryI
	exercisesRepo repository.ExercisesRepositoryI
	owner         *OwnershipVerifier
}

func NewSetService(
	setsRepo repository.SetsRepositoryI,
	detailsRepo repository.SessionDetailsRepositoryI,
	exercisesRepo repository.ExercisesRepositoryI,
	owner *OwnershipVerifier,
) *SetService {
	if setsRepo == nil || detailsRepo == nil || exercisesRepo == nil || owner == nil {
		log.Fatal("on set service provided nil dependencies")
	}
	return &SetService{
		setsRepo:      setsRepo,
		detailsRepo:   detailsRepo,
		exercisesRepo: exercisesRepo,
		owner:         owner,
	}
}

func (ss *SetService) LogSet(ctx context.Context, uid uuid.UUID, req *LogSetRequest) (*entity.ExerciseSet, error) {
	err := validate.Struct(*req)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	detail, err := ss.owner.SessionDetail(ctx, req.SessionDetailID, uid)
	if err != nil {
		return nil, err
	}
	exercise, err := ss.exercisesRepo.GetByID(ctx, detail.ExerciseID)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}

	set := routeSetFields(exercise.Type, req.Reps, req.WeightKg, req.DurationSeconds)
	set.SessionDetailID = req.SessionDetailID
	set.SetNumber = req.SetNumber
	set.Status = entity.StatusUnfinished
	if req.Completed {
		set.Status = entity.StatusCompleted
	}
	if set.SetNumber == 0 {
		siblings, err := ss.setsRepo.ListByDetail(ctx, req.SessionDetailID)
		if err != nil {
			return nil, errors.New("sets repository error: " + err.Error())
		}
		set.SetNumber = len(siblings) + 1
	}

	id, err := ss.setsRepo.Create(ctx, &set)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDetailNotFound) {
			return nil, err
		}
		return nil, errors.New("sets repository error: " + err.Error())
	}
	set.ID = id
	if err = ss.syncDetailStatus(ctx, req.SessionDetailID); err != nil {
		return nil, err
	}
	return &set, nil
}

func (ss *SetService) UpdateSet(ctx context.Context, uid uuid.UUID, req *UpdateSetRequest) (*entity.ExerciseSet, error) {
	err := validate.Struct(*req)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	set, detail, err := ss.owner.Set(ctx, req.SetID, uid)
	if err != nil {
		return nil, err
	}
	exercise, err := ss.exercisesRepo.GetByID(ctx, detail.ExerciseID)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}

	// Only the fields matching the exercise type get written; the
	// representation stays exclusive even if the caller sends both.
	if exercise.Type == entity.ExerciseCardio {
		set.DurationSeconds = req.DurationSeconds
	} else {
		set.Reps = req.Reps
		set.WeightKg = req.WeightKg
	}
	set.Status = entity.StatusUnfinished
	if req.Completed {
		set.Status = entity.StatusCompleted
	}

	if err = ss.setsRepo.Update(ctx, set); err != nil {
		if errors.Is(err, errorvalues.ErrSetNotFound) {
			return nil, err
		}
		return nil, errors.New("sets repository error: " + err.Error())
	}
	if err = ss.syncDetailStatus(ctx, set.SessionDetailID); err != nil {
		return nil, err
	}
	return set, nil
}

func (ss *SetService) ListSets(ctx context.Context, detailID, uid uuid.UUID) ([]*entity.ExerciseSet, error) {
	if _, err := ss.owner.SessionDetail(ctx, detailID, uid); err != nil {
		return nil, err
	}
	sets, err := ss.setsRepo.ListByDetail(ctx, detailID)
	if err != nil {
		return nil, errors.New("sets repository error: " + err.Error())
	}
	return sets, nil
}

// syncDetailStatus rederives the parent detail status from the current
// set rows after a write.
func (ss *SetService) syncDetailStatus(ctx context.Context, detailID uuid.UUID) error {
	sets, err := ss.setsRepo.ListByDetail(ctx, detailID)
	if err != nil {
		return errors.New("sets repository error: " + err.Error())
	}
	status := DeriveDetailStatus(sets)
	if err = ss.detailsRepo.UpdateStatus(ctx, detailID, status); err != nil {
		return errors.New("details repository error: " + err.Error())
	}
	return nil
}
