package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/pkg/entity"
)

type GoalService struct {
	repo repository.GoalsRepositoryI
}

func NewGoalService(repo repository.GoalsRepositoryI) *GoalService {
	if repo == nil {
		log.Fatal("on goal service provided nil repo")
	}
	return &GoalService{repo: repo}
}

func (gs *GoalService) CreateGoal(ctx context.Context, uid uuid.UUID, req *GoalRequest) (*entity.NutritionGoal, error) {
	err := validate.Struct(*req)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	goal := &entity.NutritionGoal{
		UserID:      uid,
		StartDate:   req.StartDate,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		HydrationMl: req.HydrationMl,
	}
	id, err := gs.repo.Create(ctx, goal)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalExists):
			return nil, errorvalues.ErrGoalExists
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal.ID = id
	return goal, nil
}

func (gs *GoalService) ListGoals(ctx context.Context, uid uuid.UUID) ([]*entity.NutritionGoal, error) {
	goals, err := gs.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalService) ActiveGoal(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.NutritionGoal, error) {
	goal, err := gs.repo.GetActive(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}
