package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/pkg/cleanup"
	"github.com/ferrous/regiment/pkg/entity"
)

type SessionDetailsRepository struct {
	conn PgConnection
}

func NewSessionDetailsRepo(cfg DBConfig) *SessionDetailsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for sessionDetailsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionDetailsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SessionDetailsRepository{
		conn: pool,
	}
}

func NewSessionDetailsRepoWithConn(conn PgConnection) *SessionDetailsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionDetailsRepo: " + err.Error())
	}
	return &SessionDetailsRepository{
		conn: conn,
	}
}

func (dr *SessionDetailsRepository) Create(ctx context.Context, detail *entity.SessionDetail) (uuid.UUID, error) {
	var id uuid.UUID
	row := dr.conn.QueryRow(
		ctx,
		`INSERT INTO session_details (session_id, exercise_id, status) VALUES ($1, $2, $3) RETURNING id;`,
		detail.SessionID,
		detail.ExerciseID,
		detail.Status,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: exercise already present in session
			case "23505":
				return uuid.UUID{}, errorvalues.ErrDetailExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrSessionNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating session detail db error: " + err.Error())
	}
	return id, nil
}

func (dr *SessionDetailsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SessionDetail, error) {
	var d entity.SessionDetail
	d.ID = id
	row := dr.conn.QueryRow(
		ctx,
		`SELECT session_id, exercise_id, status FROM session_details WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&d.SessionID, &d.ExerciseID, &d.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDetailNotFound
		}
		return nil, errors.New("getting session detail by id error: " + err.Error())
	}
	return &d, nil
}

func (dr *SessionDetailsRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.SessionDetail, error) {
	rows, err := dr.conn.Query(
		ctx,
		`SELECT id, session_id, exercise_id, status FROM session_details WHERE session_id = $1;`,
		sessionID,
	)
	if err != nil {
		return nil, errors.New("getting details by session error: " + err.Error())
	}
	defer rows.Close()
	details := make([]*entity.SessionDetail, 0)
	for rows.Next() {
		d := entity.SessionDetail{}
		err = rows.Scan(&d.ID, &d.SessionID, &d.ExerciseID, &d.Status)
		if err != nil {
			return nil, errors.New("detail row parsing error: " + err.Error())
		}
		details = append(details, &d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected detail rows error: " + rows.Err().Error())
	}
	return details, nil
}

func (dr *SessionDetailsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	ct, err := dr.conn.Exec(
		ctx,
		`UPDATE session_details SET status = $1 WHERE id = $2;`,
		status,
		id,
	)
	if err != nil {
		return errors.New("updating detail status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDetailNotFound
	}
	return nil
}

// DeleteWithSets removes child set rows before the detail itself; the FK
// from exercise_sets has no cascade, so ordering matters.
func (dr *SessionDetailsRepository) DeleteWithSets(ctx context.Context, id uuid.UUID) error {
	tx, err := dr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting detail delete tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `DELETE FROM exercise_sets WHERE session_detail_id = $1;`, id)
	if err != nil {
		return errors.New("deleting detail's sets error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM session_details WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting detail error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDetailNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing detail delete tx error: " + err.Error())
	}
	return nil
}
