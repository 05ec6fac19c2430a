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

type MealDetailsRepository struct {
	conn PgConnection
}

func NewMealDetailsRepo(cfg DBConfig) *MealDetailsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for mealDetailsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for mealDetailsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MealDetailsRepository{
		conn: pool,
	}
}

func NewMealDetailsRepoWithConn(conn PgConnection) *MealDetailsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for mealDetailsRepo: " + err.Error())
	}
	return &MealDetailsRepository{
		conn: conn,
	}
}

func (mdr *MealDetailsRepository) Create(ctx context.Context, detail *entity.MealDetail) (uuid.UUID, error) {
	var id uuid.UUID
	row := mdr.conn.QueryRow(
		ctx,
		`INSERT INTO meal_details (meal_id, food_id, numbers_of_serving) VALUES ($1, $2, $3) RETURNING id;`,
		detail.MealID,
		detail.FoodID,
		detail.NumbersOfServing,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrMealNotFound
		}
		return uuid.UUID{}, errors.New("creating meal detail db error: " + err.Error())
	}
	return id, nil
}

func (mdr *MealDetailsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MealDetail, error) {
	var d entity.MealDetail
	d.ID = id
	row := mdr.conn.QueryRow(
		ctx,
		`SELECT meal_id, food_id, numbers_of_serving FROM meal_details WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&d.MealID, &d.FoodID, &d.NumbersOfServing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMealDetailNotFound
		}
		return nil, errors.New("getting meal detail by id error: " + err.Error())
	}
	return &d, nil
}

func (mdr *MealDetailsRepository) ListByMeal(ctx context.Context, mealID uuid.UUID) ([]*entity.MealDetail, error) {
	rows, err := mdr.conn.Query(
		ctx,
		`SELECT id, meal_id, food_id, numbers_of_serving FROM meal_details WHERE meal_id = $1;`,
		mealID,
	)
	if err != nil {
		return nil, errors.New("getting details by meal error: " + err.Error())
	}
	defer rows.Close()
	details := make([]*entity.MealDetail, 0)
	for rows.Next() {
		d := entity.MealDetail{}
		err = rows.Scan(&d.ID, &d.MealID, &d.FoodID, &d.NumbersOfServing)
		if err != nil {
			return nil, errors.New("meal detail row parsing error: " + err.Error())
		}
		details = append(details, &d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected meal detail rows error: " + rows.Err().Error())
	}
	return details, nil
}

func (mdr *MealDetailsRepository) Update(ctx context.Context, detail *entity.MealDetail) error {
	ct, err := mdr.conn.Exec(
		ctx,
		`UPDATE meal_details SET food_id = $1, numbers_of_serving = $2 WHERE id = $3;`,
		detail.FoodID,
		detail.NumbersOfServing,
		detail.ID,
	)
	if err != nil {
		return errors.New("updating meal detail error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealDetailNotFound
	}
	return nil
}

func (mdr *MealDetailsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mdr.conn.Exec(ctx, `DELETE FROM meal_details WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting meal detail error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealDetailNotFound
	}
	return nil
}
