package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/pkg/entity"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) (*testPGConfig, *sql.DB) {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("regiment"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		conn.Close()
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}, conn
}

func TestWorkoutFlowIntegrational(t *testing.T) {
	cfg, conn := setupTestDB(t)
	usersRepo := repository.NewUsersRepo(cfg)
	sessionsRepo := repository.NewSessionsRepo(cfg)
	detailsRepo := repository.NewSessionDetailsRepo(cfg)
	setsRepo := repository.NewSetsRepo(cfg)
	exercisesRepo := repository.NewExercisesRepo(cfg)
	mealsRepo := repository.NewMealsRepo(cfg)
	mealDetailsRepo := repository.NewMealDetailsRepo(cfg)
	foodsRepo := repository.NewFoodsRepo(cfg)
	goalsRepo := repository.NewGoalsRepo(cfg)

	owner := service.NewOwnershipVerifier(sessionsRepo, detailsRepo, setsRepo, mealsRepo, mealDetailsRepo)
	userService := service.NewUserService(usersRepo, &producerMock{})
	workoutService := service.NewWorkoutService(sessionsRepo, detailsRepo, setsRepo, exercisesRepo, owner)
	mealService := service.NewMealService(mealsRepo, mealDetailsRepo, foodsRepo, owner)
	goalService := service.NewGoalService(goalsRepo)
	progressService := service.NewProgressService(sessionsRepo, setsRepo, mealsRepo)

	ctx := context.Background()
	var user *entity.User
	var err error
	t.Run("registered and verified user", func(t *testing.T) {
		user, err = userService.Register(ctx, &service.RegisterRequest{
			Email:    "athlete@example.com",
			Password: "test_password",
		})
		require.NoError(t, err)
		err = userService.Verify(ctx, &service.VerifyRequest{
			Email: user.Email,
			Code:  user.VerificationCode,
			Token: user.VerificationToken,
		})
		require.NoError(t, err)
		_, err = userService.Login(ctx, user.Email, "test_password")
		assert.NoError(t, err)
	})

	var benchID uuid.UUID
	t.Run("seeding exercise", func(t *testing.T) {
		row := conn.QueryRow(`INSERT INTO exercises (name, category, type, difficulty_factor)
			VALUES ('bench press', 'chest', 'strength', 1.2) RETURNING id;`)
		require.NoError(t, row.Scan(&benchID))
	})

	sessionDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	var session *entity.WorkoutSession
	t.Run("created session with details and sets", func(t *testing.T) {
		session, err = workoutService.CreateSession(ctx, user.ID, &service.CreateSessionRequest{
			ScheduledDate: sessionDate,
			Notes:         "push day",
			Exercises: []service.ExerciseLogEntry{
				{ExerciseID: benchID, Sets: []service.SetEntry{
					{Reps: 10, WeightKg: 80, Completed: true},
					{Reps: 8, WeightKg: 85, Completed: true},
				}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, session.Status)
		assert.Equal(t, 0, session.GrScore)
	})
	t.Run("error second session same day", func(t *testing.T) {
		_, err := workoutService.CreateSession(ctx, user.ID, &service.CreateSessionRequest{
			ScheduledDate: sessionDate,
		})
		assert.ErrorIs(t, err, errorvalues.ErrSessionExists)
	})
	t.Run("completing recomputes the score from stored sets", func(t *testing.T) {
		err := workoutService.UpdateSession(ctx, user.ID, &service.UpdateSessionRequest{
			SessionID: session.ID,
			Status:    entity.StatusCompleted,
		})
		require.NoError(t, err)
		result, err := workoutService.GetSession(ctx, session.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, result.Session.Status)
		assert.Equal(t, 1776, result.Session.GrScore)
		assert.Len(t, result.Details, 1)
	})
	t.Run("error foreign user cannot touch the session", func(t *testing.T) {
		stranger, err := userService.Register(ctx, &service.RegisterRequest{
			Email:    "stranger@example.com",
			Password: "test_password",
		})
		require.NoError(t, err)
		err = workoutService.UpdateSession(ctx, stranger.ID, &service.UpdateSessionRequest{
			SessionID: session.ID,
			Status:    entity.StatusMissed,
		})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})

	var foodID uuid.UUID
	t.Run("seeding food", func(t *testing.T) {
		row := conn.QueryRow(`INSERT INTO foods (name, calories, protein)
			VALUES ('oats', 700, 70) RETURNING id;`)
		require.NoError(t, row.Scan(&foodID))
	})
	t.Run("meal with recomputed totals", func(t *testing.T) {
		meal, err := mealService.CreateMeal(ctx, user.ID, &service.CreateMealRequest{
			MealType: "breakfast",
			MealDate: sessionDate,
		})
		require.NoError(t, err)
		_, err = mealService.AddFood(ctx, user.ID, &service.MealFoodRequest{
			MealID:           meal.ID,
			FoodID:           foodID,
			NumbersOfServing: 0.5,
		})
		require.NoError(t, err)
		result, err := mealService.GetMeal(ctx, meal.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 350.0, result.Totals.Calories)
		assert.Equal(t, 35.0, result.Totals.Protein)
	})
	t.Run("nutrition goal resolution", func(t *testing.T) {
		_, err := goalService.CreateGoal(ctx, user.ID, &service.GoalRequest{
			StartDate: sessionDate.AddDate(0, 0, -10),
			Calories:  2400,
		})
		require.NoError(t, err)
		goal, err := goalService.ActiveGoal(ctx, user.ID, sessionDate)
		require.NoError(t, err)
		assert.Equal(t, 2400.0, goal.Calories)
		_, err = goalService.ActiveGoal(ctx, user.ID, sessionDate.AddDate(0, 0, -20))
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("summary over the session window", func(t *testing.T) {
		start := sessionDate.AddDate(0, 0, -3)
		summary, err := progressService.Summary(ctx, user.ID, service.PeriodWeekly, &start)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.SessionsCompleted)
		assert.Equal(t, 1776, summary.TotalScore)
		assert.Equal(t, 0, summary.ScoreChangePct)
		assert.Equal(t, 1, summary.Streak)
		assert.Equal(t, 1480.0, summary.Volume)
		assert.Equal(t, map[string]int{"chest": 100}, summary.MuscleSplit)
		assert.Equal(t, 50, summary.NutritionAverages.Calories)
	})
	t.Run("deleted session with logged sets", func(t *testing.T) {
		err := workoutService.DeleteSessions(ctx, user.ID, []uuid.UUID{session.ID})
		require.NoError(t, err)
		_, err = workoutService.GetSession(ctx, session.ID, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
}
