// @title Regiment API
// @description Fitness and nutrition tracking backend
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/ferrous/regiment/internal/api"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/pkg/cleanup"
	"github.com/ferrous/regiment/pkg/config"
	jwtservice "github.com/ferrous/regiment/pkg/jwt_service"
	"github.com/ferrous/regiment/pkg/mailqueue"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	sessionsRepo := repository.NewSessionsRepo(&dbCfg)
	detailsRepo := repository.NewSessionDetailsRepo(&dbCfg)
	setsRepo := repository.NewSetsRepo(&dbCfg)
	exercisesRepo := repository.NewExercisesRepo(&dbCfg)
	mealsRepo := repository.NewMealsRepo(&dbCfg)
	mealDetailsRepo := repository.NewMealDetailsRepo(&dbCfg)
	foodsRepo := repository.NewFoodsRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)

	producer := mailqueue.NewProducer(&mailqueue.BrokerCfg{
		Broker:   cfg.GetString("KAFKA_BROKER"),
		Topic:    cfg.GetStringOr("KAFKA_VERIFICATION_TOPIC", "verification-emails"),
		Username: cfg.GetString("KAFKA_USERNAME"),
		Password: cfg.GetString("KAFKA_PASSWORD"),
	})

	owner := service.NewOwnershipVerifier(sessionsRepo, detailsRepo, setsRepo, mealsRepo, mealDetailsRepo)
	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(usersRepo, producer),
		WorkoutService:    service.NewWorkoutService(sessionsRepo, detailsRepo, setsRepo, exercisesRepo, owner),
		SetService:        service.NewSetService(setsRepo, detailsRepo, exercisesRepo, owner),
		MealService:       service.NewMealService(mealsRepo, mealDetailsRepo, foodsRepo, owner),
		GoalService:       service.NewGoalService(goalsRepo),
		ProgressService:   service.NewProgressService(sessionsRepo, setsRepo, mealsRepo),
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
		AllowUserOverride: cfg.GetStringOr("ALLOW_USER_OVERRIDE", "false") == "true",
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
