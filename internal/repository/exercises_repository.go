package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/pkg/cleanup"
	"github.com/ferrous/regiment/pkg/entity"
)

// Master data, read-only from the API's point of view.
type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(cfg DBConfig) *ExercisesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for exercisesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ExercisesRepository{
		conn: pool,
	}
}

func NewExercisesRepoWithConn(conn PgConnection) *ExercisesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	var e entity.Exercise
	e.ID = id
	row := er.conn.QueryRow(
		ctx,
		`SELECT name, category, type, difficulty_factor FROM exercises WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&e.Name, &e.Category, &e.Type, &e.DifficultyFactor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return &e, nil
}

func (er *ExercisesRepository) List(ctx context.Context) ([]*entity.Exercise, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, name, category, type, difficulty_factor FROM exercises ORDER BY name;`,
	)
	if err != nil {
		return nil, errors.New("listing exercises error: " + err.Error())
	}
	defer rows.Close()
	exercises := make([]*entity.Exercise, 0)
	for rows.Next() {
		e := entity.Exercise{}
		err = rows.Scan(&e.ID, &e.Name, &e.Category, &e.Type, &e.DifficultyFactor)
		if err != nil {
			return nil, errors.New("exercise row parsing error: " + err.Error())
		}
		exercises = append(exercises, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected exercise rows error: " + rows.Err().Error())
	}
	return exercises, nil
}
