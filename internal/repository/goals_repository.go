package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/pkg/cleanup"
	"github.com/ferrous/regiment/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.NutritionGoal) (uuid.UUID, error) {
	var id uuid.UUID
	row := gr.conn.QueryRow(
		ctx,
		`INSERT INTO nutrition_goals (user_id, start_date, calories, protein, carbs, fat, hydration_ml)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		goal.UserID,
		goal.StartDate,
		goal.Calories,
		goal.Protein,
		goal.Carbs,
		goal.Fat,
		goal.HydrationMl,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrGoalExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating goal db error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.NutritionGoal, error) {
	rows, err := gr.conn.Query(
		ctx,
		`SELECT id, user_id, start_date, calories, protein, carbs, fat, hydration_ml
		FROM nutrition_goals WHERE user_id = $1 ORDER BY start_date DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.NutritionGoal, 0)
	for rows.Next() {
		g := entity.NutritionGoal{}
		err = rows.Scan(&g.ID, &g.UserID, &g.StartDate, &g.Calories, &g.Protein, &g.Carbs, &g.Fat, &g.HydrationMl)
		if err != nil {
			return nil, errors.New("goal row parsing error: " + err.Error())
		}
		goals = append(goals, &g)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected goal rows error: " + rows.Err().Error())
	}
	return goals, nil
}

// GetActive resolves the goal in effect on date: the most recent one whose
// start_date is not after it.
func (gr *GoalsRepository) GetActive(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.NutritionGoal, error) {
	var g entity.NutritionGoal
	row := gr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, start_date, calories, protein, carbs, fat, hydration_ml
		FROM nutrition_goals WHERE user_id = $1 AND start_date <= $2
		ORDER BY start_date DESC LIMIT 1;`,
		uid,
		date,
	)
	err := row.Scan(&g.ID, &g.UserID, &g.StartDate, &g.Calories, &g.Protein, &g.Carbs, &g.Fat, &g.HydrationMl)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting active goal error: " + err.Error())
	}
	return &g, nil
}
