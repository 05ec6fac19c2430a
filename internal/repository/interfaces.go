package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ferrous/regiment/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new unverified user in database
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Marks user verified and clears the pending verification fields
	MarkVerified(ctx context.Context, uid uuid.UUID) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
	// Deletes every unverified user whose verification expired before now.
	// Safe to call repeatedly, returns the number of removed rows
	DeleteExpiredUnverified(ctx context.Context, now time.Time) (int64, error)
}

// DetailInsert is one exercise's slice of a session create: the detail row
// plus all of its set rows, inserted in one transaction.
type DetailInsert struct {
	ExerciseID uuid.UUID
	Status     string
	Sets       []entity.ExerciseSet
}

type SessionsRepositoryI interface {
	// Creates session with its details and set rows in a single transaction.
	// Session id generation happens in the database
	CreateWithDetails(ctx context.Context, session *entity.WorkoutSession, details []DetailInsert) (uuid.UUID, error)
	// Searches session with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutSession, error)
	// Lists sessions of user scheduled inside [from, to)
	ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.WorkoutSession, error)
	// Updates status, notes and score of one session
	Update(ctx context.Context, session *entity.WorkoutSession) error
	// Applies one status to every id in a single transaction. scores carries
	// per-session recomputed values when the status is COMPLETED
	UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status string, scores map[uuid.UUID]int) error
	// Deletes all ids in one transaction, set rows first, details via cascade
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
}

type SessionDetailsRepositoryI interface {
	Create(ctx context.Context, detail *entity.SessionDetail) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SessionDetail, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.SessionDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// Deletes child set rows first, then the detail, in one transaction
	DeleteWithSets(ctx context.Context, id uuid.UUID) error
}

// ScoredSet is one set row joined with its exercise's difficulty factor,
// the snapshot the score recompute runs over.
type ScoredSet struct {
	Reps             int
	WeightKg         float64
	DifficultyFactor float64
}

// SetLoad is one set row joined up the chain to its session and exercise,
// fetched per period for the summary aggregation.
type SetLoad struct {
	Reps             int
	WeightKg         float64
	DurationSeconds  int
	Status           string
	SessionStatus    string
	SessionDate      time.Time
	Category         string
	DifficultyFactor float64
}

type SetsRepositoryI interface {
	Create(ctx context.Context, set *entity.ExerciseSet) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseSet, error)
	ListByDetail(ctx context.Context, detailID uuid.UUID) ([]*entity.ExerciseSet, error)
	Update(ctx context.Context, set *entity.ExerciseSet) error
	// Joins every set of a session with its exercise's difficulty factor
	ListScoredBySession(ctx context.Context, sessionID uuid.UUID) ([]ScoredSet, error)
	// Joins every set of the user's sessions dated inside [from, to) with
	// session status and exercise category
	ListLoadsForPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]SetLoad, error)
}

type ExercisesRepositoryI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	List(ctx context.Context) ([]*entity.Exercise, error)
}

type FoodsRepositoryI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	List(ctx context.Context) ([]*entity.Food, error)
}

// Serving is one meal detail joined with its food's per-serving values.
type Serving struct {
	Food             entity.Food
	NumbersOfServing float64
}

type MealsRepositoryI interface {
	Create(ctx context.Context, meal *entity.Meal) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)
	ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Meal, error)
	// Joins the meal's details with food rows for the nutrition rollup
	ListServings(ctx context.Context, mealID uuid.UUID) ([]Serving, error)
	// Same join across every meal of the user dated inside [from, to)
	ListServingsForPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]Serving, error)
}

type MealDetailsRepositoryI interface {
	Create(ctx context.Context, detail *entity.MealDetail) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MealDetail, error)
	ListByMeal(ctx context.Context, mealID uuid.UUID) ([]*entity.MealDetail, error)
	Update(ctx context.Context, detail *entity.MealDetail) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalsRepositoryI interface {
	Create(ctx context.Context, goal *entity.NutritionGoal) (uuid.UUID, error)
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.NutritionGoal, error)
	// Returns the most recent goal with start_date <= date
	GetActive(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.NutritionGoal, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
