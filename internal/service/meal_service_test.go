package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/internal/repository/mocks"
	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/pkg/entity"
)

type mealMocks struct {
	meals   *mocks.MockMealsRepositoryI
	details *mocks.MockMealDetailsRepositoryI
	foods   *mocks.MockFoodsRepositoryI
}

func newMealService(ctrl *gomock.Controller) (*service.MealService, mealMocks) {
	m := mealMocks{
		meals:   mocks.NewMockMealsRepositoryI(ctrl),
		details: mocks.NewMockMealDetailsRepositoryI(ctrl),
		foods:   mocks.NewMockFoodsRepositoryI(ctrl),
	}
	owner := service.NewOwnershipVerifier(
		mocks.NewMockSessionsRepositoryI(ctrl),
		mocks.NewMockSessionDetailsRepositoryI(ctrl),
		mocks.NewMockSetsRepositoryI(ctrl),
		m.meals,
		m.details,
	)
	return service.NewMealService(m.meals, m.details, m.foods, owner), m
}

func TestCreateMeal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, m := newMealService(ctrl)
	ctx := context.Background()
	uid := uuid.New()
	mealDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		m.meals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)
		meal, err := serv.CreateMeal(ctx, uid, &service.CreateMealRequest{
			MealType: "breakfast",
			MealDate: mealDate,
		})
		assert.NoError(t, err)
		assert.Equal(t, id, meal.ID)
		assert.Equal(t, uid, meal.UserID)
	})
	t.Run("error missing meal type", func(t *testing.T) {
		_, err := serv.CreateMeal(ctx, uid, &service.CreateMealRequest{
			MealDate: mealDate,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("error unknown user", func(t *testing.T) {
		m.meals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrOwnerNotFound)
		_, err := serv.CreateMeal(ctx, uid, &service.CreateMealRequest{
			MealType: "breakfast",
			MealDate: mealDate,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetMeal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, m := newMealService(ctrl)
	ctx := context.Background()
	uid := uuid.New()
	mealID := uuid.New()
	meal := &entity.Meal{ID: mealID, UserID: uid, MealType: "lunch"}
	t.Run("found with recomputed totals", func(t *testing.T) {
		m.meals.EXPECT().GetByID(gomock.Any(), mealID).Return(meal, nil)
		m.details.EXPECT().ListByMeal(gomock.Any(), mealID).Return([]*entity.MealDetail{
			{ID: uuid.New(), MealID: mealID, NumbersOfServing: 2},
		}, nil)
		m.meals.EXPECT().ListServings(gomock.Any(), mealID).Return([]repository.Serving{
			{Food: entity.Food{Calories: 150, Protein: 12}, NumbersOfServing: 2},
		}, nil)
		result, err := serv.GetMeal(ctx, mealID, uid)
		assert.NoError(t, err)
		assert.Equal(t, meal, result.Meal)
		assert.Equal(t, 300.0, result.Totals.Calories)
		assert.Equal(t, 24.0, result.Totals.Protein)
	})
	t.Run("error wrong owner", func(t *testing.T) {
		m.meals.EXPECT().GetByID(gomock.Any(), mealID).Return(meal, nil)
		_, err := serv.GetMeal(ctx, mealID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error not found", func(t *testing.T) {
		m.meals.EXPECT().GetByID(gomock.Any(), mealID).Return(nil, errorvalues.ErrMealNotFound)
		_, err := serv.GetMeal(ctx, mealID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrMealNotFound)
	})
}

func TestAddFood(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, m := newMealService(ctrl)
	ctx := context.Background()
	uid := uuid.New()
	mealID := uuid.New()
	foodID := uuid.New()
	meal := &entity.Meal{ID: mealID, UserID: uid}
	req := &service.MealFoodRequest{
		MealID:           mealID,
		FoodID:           foodID,
		NumbersOfServing: 1.5,
	}
	t.Run("added", func(t *testing.T) {
		id := uuid.New()
		m.meals.EXPECT().GetByID(gomock.Any(), mealID).Return(meal, nil)
		m.foods.EXPECT().GetByID(gomock.Any(), foodID).Return(&entity.Food{ID: foodID}, nil)
		m.details.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)
		detail, err := serv.AddFood(ctx, uid, req)
		assert.NoError(t, err)
		assert.Equal(t, id, detail.ID)
		assert.Equal(t, 1.5, detail.NumbersOfServing)
	})
	t.Run("error unknown food", func(t *testing.T) {
		m.meals.EXPECT().GetByID(gomock.Any(), mealID).Return(meal, nil)
		m.foods.EXPECT().GetByID(gomock.Any(), foodID).Return(nil, errorvalues.ErrFoodNotFound)
		_, err := serv.AddFood(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrFoodNotFound)
	})
	t.Run("error zero servings", func(t *testing.T) {
		_, err := serv.AddFood(ctx, uid, &service.MealFoodRequest{
			MealID: mealID,
			FoodID: foodID,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("error wrong owner", func(t *testing.T) {
		m.meals.EXPECT().GetByID(gomock.Any(), mealID).Return(&entity.Meal{
			ID:     mealID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.AddFood(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestUpdateFood(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, m := newMealService(ctrl)
	ctx := context.Background()
	uid := uuid.New()
	mealID := uuid.New()
	detailID := uuid.New()
	foodID := uuid.New()
	expectChain := func() {
		m.details.EXPECT().GetByID(gomock.Any(), detailID).Return(&entity.MealDetail{
			ID:               detailID,
			MealID:           mealID,
			FoodID:           foodID,
			NumbersOfServing: 1,
		}, nil)
		m.meals.EXPECT().GetByID(gomock.Any(), mealID).Return(&entity.Meal{
			ID:     mealID,
			UserID: uid,
		}, nil)
	}
	t.Run("updated servings only", func(t *testing.T) {
		expectChain()
		m.details.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, detail *entity.MealDetail) error {
				assert.Equal(t, 2.5, detail.NumbersOfServing)
				assert.Equal(t, foodID, detail.FoodID)
				return nil
			})
		err := serv.UpdateFood(ctx, detailID, uid, uuid.Nil, 2.5)
		assert.NoError(t, err)
	})
	t.Run("swapped food after existence check", func(t *testing.T) {
		newFoodID := uuid.New()
		expectChain()
		m.foods.EXPECT().GetByID(gomock.Any(), newFoodID).Return(&entity.Food{ID: newFoodID}, nil)
		m.details.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, detail *entity.MealDetail) error {
				assert.Equal(t, newFoodID, detail.FoodID)
				return nil
			})
		err := serv.UpdateFood(ctx, detailID, uid, newFoodID, 1)
		assert.NoError(t, err)
	})
	t.Run("error non-positive servings", func(t *testing.T) {
		err := serv.UpdateFood(ctx, detailID, uid, uuid.Nil, 0)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("error detail not found", func(t *testing.T) {
		m.details.EXPECT().GetByID(gomock.Any(), detailID).Return(nil, errorvalues.ErrMealDetailNotFound)
		err := serv.UpdateFood(ctx, detailID, uid, uuid.Nil, 1)
		assert.ErrorIs(t, err, errorvalues.ErrMealDetailNotFound)
	})
}

func TestCreateNutritionGoal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGoalsRepositoryI(ctrl)
	serv := service.NewGoalService(repo)
	ctx := context.Background()
	uid := uuid.New()
	req := &service.GoalRequest{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Calories:  2400,
		Protein:   180,
	}
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)
		goal, err := serv.CreateGoal(ctx, uid, req)
		assert.NoError(t, err)
		assert.Equal(t, id, goal.ID)
		assert.Equal(t, uid, goal.UserID)
	})
	t.Run("error second goal same start date", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrGoalExists)
		_, err := serv.CreateGoal(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrGoalExists)
	})
	t.Run("error missing start date", func(t *testing.T) {
		_, err := serv.CreateGoal(ctx, uid, &service.GoalRequest{Calories: 2400})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestActiveGoal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGoalsRepositoryI(ctrl)
	serv := service.NewGoalService(repo)
	ctx := context.Background()
	uid := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	t.Run("found", func(t *testing.T) {
		goal := &entity.NutritionGoal{ID: uuid.New(), UserID: uid}
		repo.EXPECT().GetActive(gomock.Any(), uid, date).Return(goal, nil)
		result, err := serv.ActiveGoal(ctx, uid, date)
		assert.NoError(t, err)
		assert.Equal(t, goal, result)
	})
	t.Run("error none active", func(t *testing.T) {
		repo.EXPECT().GetActive(gomock.Any(), uid, date).Return(nil, errorvalues.ErrGoalNotFound)
		_, err := serv.ActiveGoal(ctx, uid, date)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}
