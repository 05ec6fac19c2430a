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

// OwnershipVerifier walks the foreign-key chain from a leaf resource up to
// the owning user and asserts equality before any mutation. Chains here are
// at most three hops: set -> detail -> session -> user and
// meal detail -> meal -> user. A missing hop yields the resource's
// not-found sentinel; an existing resource under a different owner yields
// ErrWrongOwner. The two outcomes are never collapsed, probing behavior
// depends on the distinction.
type OwnershipVerifier struct {
	sessionsRepo    repository.SessionsRepositoryI
	detailsRepo     repository.SessionDetailsRepositoryI
	setsRepo        repository.SetsRepositoryI
	mealsRepo       repository.MealsRepositoryI
	mealDetailsRepo repository.MealDetailsRepositoryI
}

func NewOwnershipVerifier(
	sessionsRepo repository.SessionsRepositoryI,
	detailsRepo repository.SessionDetailsRepositoryI,
	setsRepo repository.SetsRepositoryI,
	mealsRepo repository.MealsRepositoryI,
	mealDetailsRepo repository.MealDetailsRepositoryI,
) *OwnershipVerifier {
	if sessionsRepo == nil || detailsRepo == nil || setsRepo == nil || mealsRepo == nil || mealDetailsRepo == nil {
		log.Fatal("on ownership verifier provided nil repos")
	}
	return &OwnershipVerifier{
		sessionsRepo:    sessionsRepo,
		detailsRepo:     detailsRepo,
		setsRepo:        setsRepo,
		mealsRepo:       mealsRepo,
		mealDetailsRepo: mealDetailsRepo,
	}
}

func (ov *OwnershipVerifier) Session(ctx context.Context, sessionID, userID uuid.UUID) (*entity.WorkoutSession, error) {
	session, err := ov.sessionsRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if session.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return session, nil
}

func (ov *OwnershipVerifier) SessionDetail(ctx context.Context, detailID, userID uuid.UUID) (*entity.SessionDetail, error) {
	detail, err := ov.detailsRepo.GetByID(ctx, detailID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDetailNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if _, err = ov.Session(ctx, detail.SessionID, userID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (ov *OwnershipVerifier) Set(ctx context.Context, setID, userID uuid.UUID) (*entity.ExerciseSet, *entity.SessionDetail, error) {
	set, err := ov.setsRepo.GetByID(ctx, setID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSetNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	detail, err := ov.SessionDetail(ctx, set.SessionDetailID, userID)
	if err != nil {
		return nil, nil, err
	}
	return set, detail, nil
}

func (ov *OwnershipVerifier) Meal(ctx context.Context, mealID, userID uuid.UUID) (*entity.Meal, error) {
	meal, err := ov.mealsRepo.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if meal.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return meal, nil
}

func (ov *OwnershipVerifier) MealDetail(ctx context.Context, detailID, userID uuid.UUID) (*entity.MealDetail, error) {
	detail, err := ov.mealDetailsRepo.GetByID(ctx, detailID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealDetailNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if _, err = ov.Meal(ctx, detail.MealID, userID); err != nil {
		return nil, err
	}
	return detail, nil
}

// SessionsBatch verifies every id independently before any batch mutation;
// a single failure rejects the whole batch, nothing is applied partially.
func (ov *OwnershipVerifier) SessionsBatch(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.WorkoutSession, error) {
	sessions := make([]*entity.WorkoutSession, 0, len(ids))
	for _, id := range ids {
		session, err := ov.Session(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
