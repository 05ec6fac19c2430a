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

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash, verification_code, verification_token, verification_expires_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		user.Email,
		user.PasswordHash,
		user.VerificationCode,
		user.VerificationToken,
		user.VerificationExpires,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserExists
			}
		}
		return uuid.UUID{}, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(
		ctx,
		`SELECT id, email, password_hash, verified, verification_code, verification_token, verification_expires_at, created_at
		FROM users WHERE email = $1;`,
		email,
	)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(
		ctx,
		`SELECT id, email, password_hash, verified, verification_code, verification_token, verification_expires_at, created_at
		FROM users WHERE id = $1;`,
		uid,
	)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) MarkVerified(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(
		ctx,
		`UPDATE users SET verified = TRUE, verification_code = '', verification_token = NULL, verification_expires_at = NULL
		WHERE id = $1;`,
		uid,
	)
	if err != nil {
		return errors.New("marking user verified error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) DeleteExpiredUnverified(ctx context.Context, now time.Time) (int64, error) {
	ct, err := ur.conn.Exec(
		ctx,
		`DELETE FROM users WHERE verified = FALSE AND verification_expires_at < $1;`,
		now,
	)
	if err != nil {
		return 0, errors.New("deleting expired unverified users error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

func scanUser(row pgx.Row, user *entity.User) error {
	var token *uuid.UUID
	var expires *time.Time
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Verified,
		&user.VerificationCode,
		&token,
		&expires,
		&user.CreatedAt,
	)
	if err != nil {
		return err
	}
	if token != nil {
		user.VerificationToken = token.String()
	}
	if expires != nil {
		user.VerificationExpires = *expires
	}
	return nil
}
