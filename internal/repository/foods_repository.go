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

type FoodsRepository struct {
	conn PgConnection
}

func NewFoodsRepo(cfg DBConfig) *FoodsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for foodsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for foodsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FoodsRepository{
		conn: pool,
	}
}

func NewFoodsRepoWithConn(conn PgConnection) *FoodsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for foodsRepo: " + err.Error())
	}
	return &FoodsRepository{
		conn: conn,
	}
}

func (fr *FoodsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var f entity.Food
	f.ID = id
	row := fr.conn.QueryRow(
		ctx,
		`SELECT name, calories, protein, carbs, fat, fiber, sugar, zinc, magnesium, calcium, iron, vitamin_a, vitamin_c, vitamin_b12, vitamin_d
		FROM foods WHERE id = $1;`,
		id,
	)
	err := row.Scan(&f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Fiber, &f.Sugar,
		&f.Zinc, &f.Magnesium, &f.Calcium, &f.Iron, &f.VitaminA, &f.VitaminC, &f.VitaminB12, &f.VitaminD)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFoodNotFound
		}
		return nil, errors.New("getting food by id error: " + err.Error())
	}
	return &f, nil
}

func (fr *FoodsRepository) List(ctx context.Context) ([]*entity.Food, error) {
	rows, err := fr.conn.Query(
		ctx,
		`SELECT id, name, calories, protein, carbs, fat, fiber, sugar, zinc, magnesium, calcium, iron, vitamin_a, vitamin_c, vitamin_b12, vitamin_d
		FROM foods ORDER BY name;`,
	)
	if err != nil {
		return nil, errors.New("listing foods error: " + err.Error())
	}
	defer rows.Close()
	foods := make([]*entity.Food, 0)
	for rows.Next() {
		f := entity.Food{}
		err = rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Fiber, &f.Sugar,
			&f.Zinc, &f.Magnesium, &f.Calcium, &f.Iron, &f.VitaminA, &f.VitaminC, &f.VitaminB12, &f.VitaminD)
		if err != nil {
			return nil, errors.New("food row parsing error: " + err.Error())
		}
		foods = append(foods, &f)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected food rows error: " + rows.Err().Error())
	}
	return foods, nil
}
