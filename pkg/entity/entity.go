package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workout session lifecycle statuses
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusUnfinished = "UNFINISHED"
	StatusMissed     = "MISSED"
)

// Exercise types
const (
	ExerciseStrength    = "strength"
	ExerciseCardio      = "cardio"
	ExerciseFlexibility = "flexibility"
	ExerciseBalance     = "balance"
)

type User struct {
	ID                  uuid.UUID
	Email               string
	PasswordHash        string
	Verified            bool
	VerificationCode    string
	VerificationToken   string
	VerificationExpires time.Time
	CreatedAt           time.Time
}

type Exercise struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Type             string    `json:"type"`
	DifficultyFactor float64   `json:"difficulty_factor"`
}

type WorkoutSession struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	GrScore       int       `json:"gr_score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SessionDetail struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	ExerciseID uuid.UUID `json:"exercise_id"`
	Status     string    `json:"status"`
}

type ExerciseSet struct {
	ID              uuid.UUID `json:"id"`
	SessionDetailID uuid.UUID `json:"session_detail_id"`
	SetNumber       int       `json:"set_number"`
	Reps            int       `json:"reps"`
	WeightKg        float64   `json:"weight_kg"`
	DurationSeconds int       `json:"duration_seconds"`
	Status          string    `json:"status"`
}

type Food struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	Fiber      float64   `json:"fiber"`
	Sugar      float64   `json:"sugar"`
	Zinc       float64   `json:"zinc"`
	Magnesium  float64   `json:"magnesium"`
	Calcium    float64   `json:"calcium"`
	Iron       float64   `json:"iron"`
	VitaminA   float64   `json:"vitamin_a"`
	VitaminC   float64   `json:"vitamin_c"`
	VitaminB12 float64   `json:"vitamin_b12"`
	VitaminD   float64   `json:"vitamin_d"`
}

type Meal struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"uid"`
	MealType string    `json:"meal_type"`
	MealDate time.Time `json:"meal_date"`
}

type MealDetail struct {
	ID               uuid.UUID `json:"id"`
	MealID           uuid.UUID `json:"meal_id"`
	FoodID           uuid.UUID `json:"food_id"`
	NumbersOfServing float64   `json:"numbers_of_serving"`
}

type NutritionGoal struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	StartDate   time.Time `json:"start_date"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	HydrationMl float64   `json:"hydration_ml"`
}

// NutritionTotals holds the derived per-meal rollup. Each field is the
// per-serving value summed over the meal's foods, rounded to two decimals.
type NutritionTotals struct {
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	Sugar      float64 `json:"sugar"`
	Zinc       float64 `json:"zinc"`
	Magnesium  float64 `json:"magnesium"`
	Calcium    float64 `json:"calcium"`
	Iron       float64 `json:"iron"`
	VitaminA   float64 `json:"vitamin_a"`
	VitaminC   float64 `json:"vitamin_c"`
	VitaminB12 float64 `json:"vitamin_b12"`
	VitaminD   float64 `json:"vitamin_d"`
}

// PeriodSummary is the aggregated progress report for one window.
type PeriodSummary struct {
	PeriodType        string            `json:"period_type"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	SessionsCompleted int               `json:"sessions_completed"`
	TotalScore        int               `json:"total_score"`
	ScoreChangePct    int               `json:"score_change_pct"`
	Streak            int               `json:"streak"`
	Volume            float64           `json:"volume"`
	MuscleSplit       map[string]int    `json:"muscle_split"`
	NutritionAverages NutritionAverages `json:"nutrition_averages"`
}

// NutritionAverages is the daily macro average over a window, whole units.
type NutritionAverages struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}
