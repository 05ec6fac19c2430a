package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ferrous/regiment/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

type VerifyRequest struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6"`
	Token string `validate:"required,uuid"`
}

// SetEntry is one submitted set or cardio interval. Completed maps to
// COMPLETED/UNFINISHED on the stored row.
type SetEntry struct {
	SetNumber       int     `validate:"min=0"`
	Reps            int     `validate:"min=0"`
	WeightKg        float64 `validate:"min=0"`
	DurationSeconds int     `validate:"min=0"`
	Completed       bool
}

// ExerciseLogEntry groups submitted sets under one exercise. Repeated
// entries for the same exercise are merged before insert.
type ExerciseLogEntry struct {
	ExerciseID uuid.UUID `validate:"required"`
	Sets       []SetEntry
}

type CreateSessionRequest struct {
	ScheduledDate time.Time `validate:"required"`
	Status        string    `validate:"omitempty,session_status"`
	Notes         string    `validate:"max=2000"`
	Exercises     []ExerciseLogEntry
}

type UpdateSessionRequest struct {
	SessionID uuid.UUID `validate:"required"`
	Status    string    `validate:"required,session_status"`
	Notes     string    `validate:"max=2000"`
}

type LogSetRequest struct {
	SessionDetailID uuid.UUID `validate:"required"`
	SetNumber       int       `validate:"min=0"`
	Reps            int       `validate:"min=0"`
	WeightKg        float64   `validate:"min=0"`
	DurationSeconds int       `validate:"min=0"`
	Completed       bool
}

type UpdateSetRequest struct {
	SetID           uuid.UUID `validate:"required"`
	Reps            int       `validate:"min=0"`
	WeightKg        float64   `validate:"min=0"`
	DurationSeconds int       `validate:"min=0"`
	Completed       bool
}

type CreateMealRequest struct {
	MealType string    `validate:"required,max=50"`
	MealDate time.Time `validate:"required"`
}

type MealFoodRequest struct {
	MealID           uuid.UUID `validate:"required"`
	FoodID           uuid.UUID `validate:"required"`
	NumbersOfServing float64   `validate:"gt=0"`
}

type GoalRequest struct {
	StartDate   time.Time `validate:"required"`
	Calories    float64   `validate:"min=0"`
	Protein     float64   `validate:"min=0"`
	Carbs       float64   `validate:"min=0"`
	Fat         float64   `validate:"min=0"`
	HydrationMl float64   `validate:"min=0"`
}

// MealWithTotals pairs a meal and its details with the derived rollup.
type MealWithTotals struct {
	Meal    *entity.Meal           `json:"meal"`
	Details []*entity.MealDetail   `json:"details"`
	Totals  entity.NutritionTotals `json:"totals"`
}

// SessionWithDetails is the full read model of one workout session.
type SessionWithDetails struct {
	Session *entity.WorkoutSession  `json:"session"`
	Details []*entity.SessionDetail `json:"details"`
}

type UserServiceI interface {
	// Validates credentials, stores an unverified user and emits the
	// verification event. Returns the created user with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Confirms the pending code/token pair. After expiry the unverified row
	// is removed and an expiry-specific error returned
	Verify(ctx context.Context, req *VerifyRequest) error
	// Compares given credentials of a verified user
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Removes unverified users past expiry; idempotent
	CleanupUnverified(ctx context.Context) (int64, error)
}

type WorkoutServiceI interface {
	CreateSession(ctx context.Context, uid uuid.UUID, req *CreateSessionRequest) (*entity.WorkoutSession, error)
	GetSession(ctx context.Context, sessionID, uid uuid.UUID) (*SessionWithDetails, error)
	UpdateSession(ctx context.Context, uid uuid.UUID, req *UpdateSessionRequest) error
	UpdateStatusBatch(ctx context.Context, uid uuid.UUID, ids []uuid.UUID, status string) error
	DeleteSessions(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error
	ListDetails(ctx context.Context, sessionID, uid uuid.UUID) ([]*entity.SessionDetail, error)
	AddDetail(ctx context.Context, uid, sessionID, exerciseID uuid.UUID) (*entity.SessionDetail, error)
	DeleteDetail(ctx context.Context, detailID, uid uuid.UUID) error
}

type SetServiceI interface {
	LogSet(ctx context.Context, uid uuid.UUID, req *LogSetRequest) (*entity.ExerciseSet, error)
	UpdateSet(ctx context.Context, uid uuid.UUID, req *UpdateSetRequest) (*entity.ExerciseSet, error)
	ListSets(ctx context.Context, detailID, uid uuid.UUID) ([]*entity.ExerciseSet, error)
}

type MealServiceI interface {
	CreateMeal(ctx context.Context, uid uuid.UUID, req *CreateMealRequest) (*entity.Meal, error)
	ListMeals(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Meal, error)
	GetMeal(ctx context.Context, mealID, uid uuid.UUID) (*MealWithTotals, error)
	AddFood(ctx context.Context, uid uuid.UUID, req *MealFoodRequest) (*entity.MealDetail, error)
	UpdateFood(ctx context.Context, detailID, uid uuid.UUID, foodID uuid.UUID, servings float64) error
	DeleteFood(ctx context.Context, detailID, uid uuid.UUID) error
}

type GoalServiceI interface {
	CreateGoal(ctx context.Context, uid uuid.UUID, req *GoalRequest) (*entity.NutritionGoal, error)
	ListGoals(ctx context.Context, uid uuid.UUID) ([]*entity.NutritionGoal, error)
	ActiveGoal(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.NutritionGoal, error)
}

type ProgressServiceI interface {
	// Summary aggregates one rolling window; start == nil anchors the
	// window so it ends after today
	Summary(ctx context.Context, uid uuid.UUID, periodType string, start *time.Time) (*entity.PeriodSummary, error)
}
