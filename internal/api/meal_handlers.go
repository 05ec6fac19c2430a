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

type CreateMealRequest struct {
	MealType string    `json:"meal_type"`
	MealDate time.Time `json:"meal_date"`
}

type MealFoodRequest struct {
	MealID           uuid.UUID `json:"meal_id"`
	FoodID           uuid.UUID `json:"food_id"`
	NumbersOfServing float64   `json:"numbers_of_serving"`
}

type UpdateMealFoodRequest struct {
	FoodID           uuid.UUID `json:"food_id,omitempty"`
	NumbersOfServing float64   `json:"numbers_of_serving"`
}

type CreateGoalRequest struct {
	StartDate   time.Time `json:"start_date"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	HydrationMl float64   `json:"hydration_ml"`
}

// writeMealError maps service errors to the legacy envelope. This surface
// predates the machine-readable one and keeps its convention of answering
// 404 for foreign-owned resources instead of 403.
func writeMealError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(action + " error: validation failed")
		httputil.WriteCrudError(w, http.StatusBadRequest, "validation failed", err.Error())
	case errors.Is(err, errorvalues.ErrWrongOwner),
		errors.Is(err, errorvalues.ErrMealNotFound),
		errors.Is(err, errorvalues.ErrMealDetailNotFound),
		errors.Is(err, errorvalues.ErrFoodNotFound),
		errors.Is(err, errorvalues.ErrGoalNotFound),
		errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(action + " error: entity doesn't exist or has different owner")
		httputil.WriteCrudError(w, http.StatusNotFound, "resource doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrGoalExists):
		logger.Error(action + " error: conflict")
		httputil.WriteCrudError(w, http.StatusConflict, err.Error(), nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteCrudError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func (s *Server) CreateMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create meal error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateMealRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create meal error: invalid body")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	meal, err := s.mealService.CreateMeal(ctx, uid, &service.CreateMealRequest{
		MealType: req.MealType,
		MealDate: req.MealDate,
	})
	if err != nil {
		writeMealError(w, logger, "create meal", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusCreated, "meal created", meal)
	logger.Info("meal created", slog.String("meal_id", meal.ID.String()))
}

func (s *Server) GetMeals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get meals error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		from = time.Now().UTC().Truncate(24 * time.Hour)
	}
	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		to = from.AddDate(0, 0, 1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	meals, err := s.mealService.ListMeals(ctx, uid, from, to)
	if err != nil {
		writeMealError(w, logger, "get meals", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "meals provided", meals)
	logger.Info("meals provided")
}

func (s *Server) GetMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get meal error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get meal error: invalid id in path value")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	meal, err := s.mealService.GetMeal(ctx, id, uid)
	if err != nil {
		writeMealError(w, logger, "get meal", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "meal provided", meal)
	logger.Info("meal provided")
}

func (s *Server) AddMealFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add meal food error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req MealFoodRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add meal food error: invalid body")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	detail, err := s.mealService.AddFood(ctx, uid, &service.MealFoodRequest{
		MealID:           req.MealID,
		FoodID:           req.FoodID,
		NumbersOfServing: req.NumbersOfServing,
	})
	if err != nil {
		writeMealError(w, logger, "add meal food", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusCreated, "food added to meal", detail)
	logger.Info("meal food added")
}

func (s *Server) UpdateMealFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update meal food error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update meal food error: invalid id in path value")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid meal food id in path value", nil)
		return
	}
	var req UpdateMealFoodRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update meal food error: invalid body")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.mealService.UpdateFood(ctx, id, uid, req.FoodID, req.NumbersOfServing)
	if err != nil {
		writeMealError(w, logger, "update meal food", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "meal food updated", nil)
	logger.Info("meal food updated")
}

func (s *Server) DeleteMealFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete meal food error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("delete meal food error: invalid id in path value")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid meal food id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.mealService.DeleteFood(ctx, id, uid)
	if err != nil {
		writeMealError(w, logger, "delete meal food", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "meal food deleted", nil)
	logger.Info("meal food deleted")
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create goal error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create goal error: invalid body")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalService.CreateGoal(ctx, uid, &service.GoalRequest{
		StartDate:   req.StartDate,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		HydrationMl: req.HydrationMl,
	})
	if err != nil {
		writeMealError(w, logger, "create goal", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusCreated, "nutrition goal created", goal)
	logger.Info("nutrition goal created")
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goals, err := s.goalService.ListGoals(ctx, uid)
	if err != nil {
		writeMealError(w, logger, "get goals", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "goals provided", goals)
	logger.Info("goals provided")
}

func (s *Server) GetActiveGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get active goal error: unauthorized")
		httputil.WriteCrudError(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		date = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalService.ActiveGoal(ctx, uid, date)
	if err != nil {
		writeMealError(w, logger, "get active goal", err)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "active goal provided", goal)
	logger.Info("active goal provided")
}
