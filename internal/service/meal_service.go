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

// MealService manages meals and their food rows. Nutrition totals are never
// stored, every read recomputes them from the current details.
type MealService struct {
	mealsRepo   repository.MealsRepositoryI
	detailsRepo repository.MealDetailsRepositoryI
	foodsRepo   repository.FoodsRepositoryI
	owner       *OwnershipVerifier
}

func NewMealService(
	mealsRepo repository.MealsRepositoryI,
	detailsRepo repository.MealDetailsRepositoryI,
	foodsRepo repository.FoodsRepositoryI,
	owner *OwnershipVerifier,
) *MealService {
	if mealsRepo == nil || detailsRepo == nil || foodsRepo == nil || owner == nil {
		log.Fatal("on meal service provided nil dependencies")
	}
	return &MealService{
		mealsRepo:   mealsRepo,
		detailsRepo: detailsRepo,
		foodsRepo:   foodsRepo,
		owner:       owner,
	}
}

func (ms *MealService) CreateMeal(ctx context.Context, uid uuid.UUID, req *CreateMealRequest) (*entity.Meal, error) {
	err := validate.Struct(*req)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	meal := &entity.Meal{
		UserID:   uid,
		MealType: req.MealType,
		MealDate: req.MealDate,
	}
	id, err := ms.mealsRepo.Create(ctx, meal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("meals repository error: " + err.Error())
	}
	meal.ID = id
	return meal, nil
}

func (ms *MealService) ListMeals(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Meal, error) {
	meals, err := ms.mealsRepo.ListByUserAndRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return meals, nil
}

func (ms *MealService) GetMeal(ctx context.Context, mealID, uid uuid.UUID) (*MealWithTotals, error) {
	meal, err := ms.owner.Meal(ctx, mealID, uid)
	if err != nil {
		return nil, err
	}
	details, err := ms.detailsRepo.ListByMeal(ctx, mealID)
	if err != nil {
		return nil, errors.New("meal details repository error: " + err.Error())
	}
	servings, err := ms.mealsRepo.ListServings(ctx, mealID)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return &MealWithTotals{
		Meal:    meal,
		Details: details,
		Totals:  RollupNutrition(servings),
	}, nil
}

func (ms *MealService) AddFood(ctx context.Context, uid uuid.UUID, req *MealFoodRequest) (*entity.MealDetail, error) {
	err := validate.Struct(*req)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	if _, err = ms.owner.Meal(ctx, req.MealID, uid); err != nil {
		return nil, err
	}
	if _, err = ms.foodsRepo.GetByID(ctx, req.FoodID); err != nil {
		if errors.Is(err, errorvalues.ErrFoodNotFound) {
			return nil, err
		}
		return nil, errors.New("foods repository error: " + err.Error())
	}
	detail := &entity.MealDetail{
		MealID:           req.MealID,
		FoodID:           req.FoodID,
		NumbersOfServing: req.NumbersOfServing,
	}
	id, err := ms.detailsRepo.Create(ctx, detail)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, errors.New("meal details repository error: " + err.Error())
	}
	detail.ID = id
	return detail, nil
}

func (ms *MealService) UpdateFood(ctx context.Context, detailID, uid uuid.UUID, foodID uuid.UUID, servings float64) error {
	if servings <= 0 {
		return errors.Join(errorvalues.ErrValidation, errors.New("numbers_of_serving must be positive"))
	}
	detail, err := ms.owner.MealDetail(ctx, detailID, uid)
	if err != nil {
		return err
	}
	if foodID != uuid.Nil && foodID != detail.FoodID {
		if _, err = ms.foodsRepo.GetByID(ctx, foodID); err != nil {
			if errors.Is(err, errorvalues.ErrFoodNotFound) {
				return err
			}
			return errors.New("foods repository error: " + err.Error())
		}
		detail.FoodID = foodID
	}
	detail.NumbersOfServing = servings
	if err = ms.detailsRepo.Update(ctx, detail); err != nil {
		if errors.Is(err, errorvalues.ErrMealDetailNotFound) {
			return err
		}
		return errors.New("meal details repository error: " + err.Error())
	}
	return nil
}

func (ms *MealService) DeleteFood(ctx context.Context, detailID, uid uuid.UUID) error {
	if _, err := ms.owner.MealDetail(ctx, detailID, uid); err != nil {
		return err
	}
	if err := ms.detailsRepo.Delete(ctx, detailID); err != nil {
		if errors.Is(err, errorvalues.ErrMealDetailNotFound) {
			return err
		}
		return errors.New("meal details repository error: " + err.Error())
	}
	return nil
}
