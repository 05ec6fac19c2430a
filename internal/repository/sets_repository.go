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

type SetsRepository struct {
	conn PgConnection
}

func NewSetsRepo(cfg DBConfig) *SetsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for setsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for setsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SetsRepository{
		conn: pool,
	}
}

func NewSetsRepoWithConn(conn PgConnection) *SetsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for setsRepo: " + err.Error())
	}
	return &SetsRepository{
		conn: conn,
	}
}

func (str *SetsRepository) Create(ctx context.Context, set *entity.ExerciseSet) (uuid.UUID, error) {
	var id uuid.UUID
	row := str.conn.QueryRow(
		ctx,
		`INSERT INTO exercise_sets (session_detail_id, set_number, reps, weight_kg, duration_seconds, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		set.SessionDetailID,
		set.SetNumber,
		set.Reps,
		set.WeightKg,
		set.DurationSeconds,
		set.Status,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrDetailNotFound
		}
		return uuid.UUID{}, errors.New("creating set db error: " + err.Error())
	}
	return id, nil
}

func (str *SetsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseSet, error) {
	var s entity.ExerciseSet
	s.ID = id
	row := str.conn.QueryRow(
		ctx,
		`SELECT session_detail_id, set_number, reps, weight_kg, duration_seconds, status
		FROM exercise_sets WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&s.SessionDetailID, &s.SetNumber, &s.Reps, &s.WeightKg, &s.DurationSeconds, &s.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSetNotFound
		}
		return nil, errors.New("getting set by id error: " + err.Error())
	}
	return &s, nil
}

func (str *SetsRepository) ListByDetail(ctx context.Context, detailID uuid.UUID) ([]*entity.ExerciseSet, error) {
	rows, err := str.conn.Query(
		ctx,
		`SELECT id, session_detail_id, set_number, reps, weight_kg, duration_seconds, status
		FROM exercise_sets WHERE session_detail_id = $1 ORDER BY set_number;`,
		detailID,
	)
	if err != nil {
		return nil, errors.New("getting sets by detail error: " + err.Error())
	}
	defer rows.Close()
	sets := make([]*entity.ExerciseSet, 0)
	for rows.Next() {
		s := entity.ExerciseSet{}
		err = rows.Scan(&s.ID, &s.SessionDetailID, &s.SetNumber, &s.Reps, &s.WeightKg, &s.DurationSeconds, &s.Status)
		if err != nil {
			return nil, errors.New("set row parsing error: " + err.Error())
		}
		sets = append(sets, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected set rows error: " + rows.Err().Error())
	}
	return sets, nil
}

func (str *SetsRepository) Update(ctx context.Context, set *entity.ExerciseSet) error {
	ct, err := str.conn.Exec(
		ctx,
		`UPDATE exercise_sets SET reps = $1, weight_kg = $2, duration_seconds = $3, status = $4 WHERE id = $5;`,
		set.Reps,
		set.WeightKg,
		set.DurationSeconds,
		set.Status,
		set.ID,
	)
	if err != nil {
		return errors.New("updating set error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSetNotFound
	}
	return nil
}

// ListScoredBySession pulls the full snapshot the score recompute runs over:
// every set of the session joined with its exercise's difficulty factor.
func (str *SetsRepository) ListScoredBySession(ctx context.Context, sessionID uuid.UUID) ([]ScoredSet, error) {
	rows, err := str.conn.Query(
		ctx,
		`SELECT es.reps, es.weight_kg, e.difficulty_factor
		FROM exercise_sets es
		JOIN session_details sd ON sd.id = es.session_detail_id
		JOIN exercises e ON e.id = sd.exercise_id
		WHERE sd.session_id = $1;`,
		sessionID,
	)
	if err != nil {
		return nil, errors.New("getting scored sets error: " + err.Error())
	}
	defer rows.Close()
	result := make([]ScoredSet, 0)
	for rows.Next() {
		var s ScoredSet
		err = rows.Scan(&s.Reps, &s.WeightKg, &s.DifficultyFactor)
		if err != nil {
			return nil, errors.New("scored set row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected scored set rows error: " + rows.Err().Error())
	}
	return result, nil
}

// ListLoadsForPeriod joins sets up the ownership chain to the user's
// sessions dated inside [from, to), carrying session status, date and
// exercise category for the summary aggregation.
func (str *SetsRepository) ListLoadsForPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]SetLoad, error) {
	rows, err := str.conn.Query(
		ctx,
		`SELECT es.reps, es.weight_kg, es.duration_seconds, es.status, ws.status, ws.scheduled_date, e.category, e.difficulty_factor
		FROM exercise_sets es
		JOIN session_details sd ON sd.id = es.session_detail_id
		JOIN workout_sessions ws ON ws.id = sd.session_id
		JOIN exercises e ON e.id = sd.exercise_id
		WHERE ws.user_id = $1 AND ws.scheduled_date >= $2 AND ws.scheduled_date < $3;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting set loads for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]SetLoad, 0)
	for rows.Next() {
		var l SetLoad
		err = rows.Scan(&l.Reps, &l.WeightKg, &l.DurationSeconds, &l.Status, &l.SessionStatus, &l.SessionDate, &l.Category, &l.DifficultyFactor)
		if err != nil {
			return nil, errors.New("set load row parsing error: " + err.Error())
		}
		result = append(result, l)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected set load rows error: " + rows.Err().Error())
	}
	return result, nil
}
