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

type MealsRepository struct {
	conn PgConnection
}

func NewMealsRepo(cfg DBConfig) *MealsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for mealsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for mealsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MealsRepository{
		conn: pool,
	}
}

func NewMealsRepoWithConn(conn PgConnection) *MealsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for mealsRepo: " + err.Error())
	}
	return &MealsRepository{
		conn: conn,
	}
}

func (mr *MealsRepository) Create(ctx context.Context, meal *entity.Meal) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(
		ctx,
		`INSERT INTO meals (user_id, meal_type, meal_date) VALUES ($1, $2, $3) RETURNING id;`,
		meal.UserID,
		meal.MealType,
		meal.MealDate,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, errors.New("creating meal db error: " + err.Error())
	}
	return id, nil
}

func (mr *MealsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var m entity.Meal
	m.ID = id
	row := mr.conn.QueryRow(
		ctx,
		`SELECT user_id, meal_type, meal_date FROM meals WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&m.UserID, &m.MealType, &m.MealDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMealNotFound
		}
		return nil, errors.New("getting meal by id error: " + err.Error())
	}
	return &m, nil
}

func (mr *MealsRepository) ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Meal, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT id, user_id, meal_type, meal_date FROM meals
		WHERE user_id = $1 AND meal_date >= $2 AND meal_date < $3 ORDER BY meal_date;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting meals for period error: " + err.Error())
	}
	defer rows.Close()
	meals := make([]*entity.Meal, 0)
	for rows.Next() {
		m := entity.Meal{}
		err = rows.Scan(&m.ID, &m.UserID, &m.MealType, &m.MealDate)
		if err != nil {
			return nil, errors.New("meal row parsing error: " + err.Error())
		}
		meals = append(meals, &m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected meal rows error: " + rows.Err().Error())
	}
	return meals, nil
}

// ListServings joins the meal's detail rows with their foods; this snapshot
// feeds the nutrition rollup.
func (mr *MealsRepository) ListServings(ctx context.Context, mealID uuid.UUID) ([]Serving, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT f.id, f.name, f.calories, f.protein, f.carbs, f.fat, f.fiber, f.sugar, f.zinc, f.magnesium, f.calcium, f.iron, f.vitamin_a, f.vitamin_c, f.vitamin_b12, f.vitamin_d, md.numbers_of_serving
		FROM meal_details md
		JOIN foods f ON f.id = md.food_id
		WHERE md.meal_id = $1;`,
		mealID,
	)
	if err != nil {
		return nil, errors.New("getting meal servings error: " + err.Error())
	}
	return scanServings(rows)
}

func (mr *MealsRepository) ListServingsForPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]Serving, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT f.id, f.name, f.calories, f.protein, f.carbs, f.fat, f.fiber, f.sugar, f.zinc, f.magnesium, f.calcium, f.iron, f.vitamin_a, f.vitamin_c, f.vitamin_b12, f.vitamin_d, md.numbers_of_serving
		FROM meal_details md
		JOIN foods f ON f.id = md.food_id
		JOIN meals m ON m.id = md.meal_id
		WHERE m.user_id = $1 AND m.meal_date >= $2 AND m.meal_date < $3;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting servings for period error: " + err.Error())
	}
	return scanServings(rows)
}

func scanServings(rows pgx.Rows) ([]Serving, error) {
	defer rows.Close()
	result := make([]Serving, 0)
	for rows.Next() {
		var s Serving
		f := &s.Food
		err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Fiber, &f.Sugar,
			&f.Zinc, &f.Magnesium, &f.Calcium, &f.Iron, &f.VitaminA, &f.VitaminC, &f.VitaminB12, &f.VitaminD,
			&s.NumbersOfServing)
		if err != nil {
			return nil, errors.New("serving row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected serving rows error: " + rows.Err().Error())
	}
	return result, nil
}
