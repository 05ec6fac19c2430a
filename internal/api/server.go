package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ferrous/regiment/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	workoutService  service.WorkoutServiceI
	setService      service.SetServiceI
	mealService     service.MealServiceI
	goalService     service.GoalServiceI
	progressService service.ProgressServiceI
	jwtService      JWTServiceI
	// Lets trusted automation target another user's data via an explicit
	// user_id parameter. Ownership checks still run against the targeted
	// user, this never widens access.
	allowUserOverride bool
}

type ServicesList struct {
	UserService       service.UserServiceI
	WorkoutService    service.WorkoutServiceI
	SetService        service.SetServiceI
	MealService       service.MealServiceI
	GoalService       service.GoalServiceI
	ProgressService   service.ProgressServiceI
	JwtService        JWTServiceI
	AllowUserOverride bool
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		workoutService:    servicesOptions.WorkoutService,
		setService:        servicesOptions.SetService,
		mealService:       servicesOptions.MealService,
		goalService:       servicesOptions.GoalService,
		progressService:   servicesOptions.ProgressService,
		jwtService:        servicesOptions.JwtService,
		allowUserOverride: servicesOptions.AllowUserOverride,
	}
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Handler())
}

// Handler builds the routed mux. Call it once per Server.
func (s *Server) Handler() http.Handler {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/verify", s.Verify)
		r.Post("/auth/login", s.Login)
		r.Post("/admin/cleanup-unverified", s.CleanupUnverified)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Post("/sessions", s.CreateSession)
			r.Get("/sessions/{id}", s.GetSession)
			r.Put("/sessions", s.UpdateSessions)
			r.Delete("/sessions", s.DeleteSessions)
			r.Get("/sessions/{id}/details", s.GetSessionDetails)
			r.Post("/sessions/{id}/details", s.AddSessionDetail)
			r.Delete("/session-details/{id}", s.DeleteSessionDetail)
			r.Get("/session-details/{id}/sets", s.GetSets)
			r.Post("/sets", s.LogSet)
			r.Put("/sets/{id}", s.UpdateSet)

			r.Post("/meals", s.CreateMeal)
			r.Get("/meals", s.GetMeals)
			r.Get("/meals/{id}", s.GetMeal)
			r.Post("/meal-foods", s.AddMealFood)
			r.Put("/meal-foods/{id}", s.UpdateMealFood)
			r.Delete("/meal-foods/{id}", s.DeleteMealFood)

			r.Post("/nutrition-goals", s.CreateGoal)
			r.Get("/nutrition-goals", s.GetGoals)
			r.Get("/nutrition-goals/active", s.GetActiveGoal)

			r.Get("/summary", s.GetSummary)
			r.Get("/progress", s.GetSummary)
		})
	})
	return s.mx
}
