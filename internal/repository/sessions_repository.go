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

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepo(cfg DBConfig) *SessionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for sessionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SessionsRepository{
		conn: pool,
	}
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	return &SessionsRepository{
		conn: conn,
	}
}

// CreateWithDetails inserts the session row, then one detail row per
// exercise, then every set row, all in one transaction. Detail inserts wait
// for the session's generated id, set inserts for the detail's. The unique
// constraint on (user_id, scheduled_date) backs the one-session-per-day
// invariant against concurrent creates.
func (sr *SessionsRepository) CreateWithDetails(ctx context.Context, session *entity.WorkoutSession, details []DetailInsert) (uuid.UUID, error) {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("starting session create tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var sessionID uuid.UUID
	row := tx.QueryRow(
		ctx,
		`INSERT INTO workout_sessions (user_id, scheduled_date, status, notes, gr_score)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		session.UserID,
		session.ScheduledDate,
		session.Status,
		session.Notes,
		session.GrScore,
	)
	if err = row.Scan(&sessionID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrSessionExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating session db error: " + err.Error())
	}

	for _, d := range details {
		var detailID uuid.UUID
		row := tx.QueryRow(
			ctx,
			`INSERT INTO session_details (session_id, exercise_id, status) VALUES ($1, $2, $3) RETURNING id;`,
			sessionID,
			d.ExerciseID,
			d.Status,
		)
		if err = row.Scan(&detailID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return uuid.UUID{}, errorvalues.ErrExerciseNotFound
			}
			return uuid.UUID{}, errors.New("creating session detail db error: " + err.Error())
		}
		for _, set := range d.Sets {
			_, err = tx.Exec(
				ctx,
				`INSERT INTO exercise_sets (session_detail_id, set_number, reps, weight_kg, duration_seconds, status)
				VALUES ($1, $2, $3, $4, $5, $6);`,
				detailID,
				set.SetNumber,
				set.Reps,
				set.WeightKg,
				set.DurationSeconds,
				set.Status,
			)
			if err != nil {
				return uuid.UUID{}, errors.New("creating set db error: " + err.Error())
			}
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing session create tx error: " + err.Error())
	}
	return sessionID, nil
}

func (sr *SessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutSession, error) {
	var s entity.WorkoutSession
	s.ID = id
	row := sr.conn.QueryRow(
		ctx,
		`SELECT user_id, scheduled_date, status, notes, gr_score, created_at, updated_at
		FROM workout_sessions WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&s.UserID, &s.ScheduledDate, &s.Status, &s.Notes, &s.GrScore, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session by id error: " + err.Error())
	}
	return &s, nil
}

func (sr *SessionsRepository) ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.WorkoutSession, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, user_id, scheduled_date, status, notes, gr_score, created_at, updated_at
		FROM workout_sessions WHERE user_id = $1 AND scheduled_date >= $2 AND scheduled_date < $3
		ORDER BY scheduled_date;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting sessions for period error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]*entity.WorkoutSession, 0)
	for rows.Next() {
		s := entity.WorkoutSession{}
		err = rows.Scan(&s.ID, &s.UserID, &s.ScheduledDate, &s.Status, &s.Notes, &s.GrScore, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, errors.New("session row parsing error: " + err.Error())
		}
		sessions = append(sessions, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected session rows error: " + rows.Err().Error())
	}
	return sessions, nil
}

// Update writes status, notes and gr_score from the entity. The caller
// decides whether the score is the recomputed one (transition into
// COMPLETED) or the previously stored one (any other transition).
func (sr *SessionsRepository) Update(ctx context.Context, session *entity.WorkoutSession) error {
	ct, err := sr.conn.Exec(
		ctx,
		`UPDATE workout_sessions SET status = $1, notes = $2, gr_score = $3, updated_at = NOW() WHERE id = $4;`,
		session.Status,
		session.Notes,
		session.GrScore,
		session.ID,
	)
	if err != nil {
		return errors.New("updating session error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func (sr *SessionsRepository) UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status string, scores map[uuid.UUID]int) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting batch status tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, id := range ids {
		var ct pgconn.CommandTag
		if score, ok := scores[id]; ok {
			ct, err = tx.Exec(
				ctx,
				`UPDATE workout_sessions SET status = $1, gr_score = $2, updated_at = NOW() WHERE id = $3;`,
				status,
				score,
				id,
			)
		} else {
			ct, err = tx.Exec(
				ctx,
				`UPDATE workout_sessions SET status = $1, updated_at = NOW() WHERE id = $2;`,
				status,
				id,
			)
		}
		if err != nil {
			return errors.New("batch status update error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrSessionNotFound
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing batch status tx error: " + err.Error())
	}
	return nil
}

func (sr *SessionsRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting batch delete tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, id := range ids {
		// Set rows restrict their detail, so they go first; the details
		// themselves cascade off the session row.
		_, err := tx.Exec(
			ctx,
			`DELETE FROM exercise_sets WHERE session_detail_id IN (SELECT id FROM session_details WHERE session_id = $1);`,
			id,
		)
		if err != nil {
			return errors.New("batch delete sets error: " + err.Error())
		}
		ct, err := tx.Exec(ctx, `DELETE FROM workout_sessions WHERE id = $1;`, id)
		if err != nil {
			return errors.New("batch delete error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrSessionNotFound
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing batch delete tx error: " + err.Error())
	}
	return nil
}
