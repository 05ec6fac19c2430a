package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ferrous/regiment/internal/api"
	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/internal/service/mocks"
	"github.com/ferrous/regiment/pkg/entity"
	"github.com/ferrous/regiment/pkg/httputil"
	jwtservice "github.com/ferrous/regiment/pkg/jwt_service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type UserServiceMock struct {
	err error
}

func (usmock *UserServiceMock) ChangeState(err error) {
	usmock.err = err
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.err != nil {
		return nil, usmock.err
	}
	return &entity.User{
		ID:    uid,
		Email: email,
	}, nil
}

func (usmock *UserServiceMock) Verify(ctx context.Context, req *service.VerifyRequest) error {
	return usmock.err
}

func (usmock *UserServiceMock) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if usmock.err != nil {
		return nil, usmock.err
	}
	return &entity.User{
		ID:       uid,
		Email:    email,
		Verified: true,
	}, nil
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.err != nil {
		return nil, usmock.err
	}
	return &entity.User{
		ID:       uid,
		Email:    email,
		Verified: true,
	}, nil
}

func (usmock *UserServiceMock) CleanupUnverified(ctx context.Context) (int64, error) {
	if usmock.err != nil {
		return 0, usmock.err
	}
	return 2, nil
}

var (
	email = "test@example.com"
	uid   = uuid.New()
)

func authed(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), "User-ID", uid))
}

func decodeAPIResponse(t *testing.T, rr *httptest.ResponseRecorder) httputil.APIResponse {
	var resp httputil.APIResponse
	err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:    email,
		Password: "test_password",
	})
	if err != nil {
		t.Fatal(err)
	}
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		mock.ChangeState(nil)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("error existed user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		mock.ChangeState(errorvalues.ErrUserExists)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("error invalid credentials", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		mock.ChangeState(errorvalues.ErrValidation)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
		mock.ChangeState(nil)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestVerifyHandler(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.VerifyRequest{
		Email: email,
		Code:  "482913",
		Token: uuid.New().String(),
	})
	if err != nil {
		t.Fatal(err)
	}
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	testCases := []struct {
		Desc       string
		Error      error
		StatusCode int
	}{
		{
			Desc:       "verified",
			Error:      nil,
			StatusCode: http.StatusOK,
		},
		{
			Desc:       "error unexist user",
			Error:      errorvalues.ErrUserNotFound,
			StatusCode: http.StatusNotFound,
		},
		{
			Desc:       "error expired code",
			Error:      errorvalues.ErrVerificationExpired,
			StatusCode: http.StatusGone,
		},
		{
			Desc:       "error wrong code",
			Error:      errorvalues.ErrInvalidVerification,
			StatusCode: http.StatusForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify", bytes.NewReader(body))
			mock.ChangeState(tc.Error)
			serv.Verify(rr, req)
			assert.Equal(t, tc.StatusCode, rr.Result().StatusCode)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Email:    email,
		Password: "test_password",
	})
	if err != nil {
		t.Fatal(err)
	}
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtservice.New("secret"),
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		mock.ChangeState(nil)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error not verified", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		mock.ChangeState(errorvalues.ErrUserNotVerified)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("error wrong credentials", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		mock.ChangeState(errorvalues.ErrWrongCredentials)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

func TestAuthMiddleware(t *testing.T) {
	mock := UserServiceMock{}
	jwtService := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := api.GetUIDFromContext(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	token, err := jwtService.GenerateToken(&entity.User{ID: uid, Email: email})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("successful auth", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		mock.ChangeState(nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("error garbage token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("error deleted user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		mock.ChangeState(errorvalues.ErrUserNotFound)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestCreateSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	workoutService := mocks.NewMockWorkoutServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		WorkoutService: workoutService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.CreateSessionRequest{
		ScheduledDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Exercises: []api.ExerciseEntryRequest{
			{ExerciseID: uuid.New(), Sets: []api.SetEntryRequest{{Reps: 10, WeightKg: 80}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("created", func(t *testing.T) {
		workoutService.EXPECT().CreateSession(gomock.Any(), uid, gomock.Any()).
			Return(&entity.WorkoutSession{ID: uuid.New(), UserID: uid}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body)))
		serv.CreateSession(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("error second session same day", func(t *testing.T) {
		workoutService.EXPECT().CreateSession(gomock.Any(), uid, gomock.Any()).
			Return(nil, errorvalues.ErrSessionExists)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body)))
		serv.CreateSession(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
		assert.Equal(t, httputil.CodeConflict, decodeAPIResponse(t, rr).ErrorCode)
	})
	t.Run("error validation", func(t *testing.T) {
		workoutService.EXPECT().CreateSession(gomock.Any(), uid, gomock.Any()).
			Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body)))
		serv.CreateSession(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
		assert.Equal(t, httputil.CodeValidationError, decodeAPIResponse(t, rr).ErrorCode)
	})
	t.Run("error without auth context", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
		serv.CreateSession(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestCreateSessionUserOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	targetUID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.CreateSessionRequest{
		UserID:        targetUID,
		ScheduledDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("override applied when enabled", func(t *testing.T) {
		workoutService := mocks.NewMockWorkoutServiceI(ctrl)
		serv := api.New(&api.ServicesList{
			WorkoutService:    workoutService,
			AllowUserOverride: true,
		})
		workoutService.EXPECT().CreateSession(gomock.Any(), targetUID, gomock.Any()).
			Return(&entity.WorkoutSession{ID: uuid.New(), UserID: targetUID}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body)))
		serv.CreateSession(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("override ignored when disabled", func(t *testing.T) {
		workoutService := mocks.NewMockWorkoutServiceI(ctrl)
		serv := api.New(&api.ServicesList{
			WorkoutService: workoutService,
		})
		workoutService.EXPECT().CreateSession(gomock.Any(), uid, gomock.Any()).
			Return(&entity.WorkoutSession{ID: uuid.New(), UserID: uid}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body)))
		serv.CreateSession(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
}

func TestGetSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	workoutService := mocks.NewMockWorkoutServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		WorkoutService: workoutService,
	})
	sessionID := uuid.New()
	t.Run("provided", func(t *testing.T) {
		workoutService.EXPECT().GetSession(gomock.Any(), sessionID, uid).
			Return(&service.SessionWithDetails{Session: &entity.WorkoutSession{ID: sessionID}}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String(), nil))
		req.SetPathValue("id", sessionID.String())
		serv.GetSession(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error foreign session", func(t *testing.T) {
		workoutService.EXPECT().GetSession(gomock.Any(), sessionID, uid).
			Return(nil, errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String(), nil))
		req.SetPathValue("id", sessionID.String())
		serv.GetSession(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
		assert.Equal(t, httputil.CodeAccessDenied, decodeAPIResponse(t, rr).ErrorCode)
	})
	t.Run("error unexist session", func(t *testing.T) {
		workoutService.EXPECT().GetSession(gomock.Any(), sessionID, uid).
			Return(nil, errorvalues.ErrSessionNotFound)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String(), nil))
		req.SetPathValue("id", sessionID.String())
		serv.GetSession(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
		assert.Equal(t, httputil.CodeEntityNotFound, decodeAPIResponse(t, rr).ErrorCode)
	})
	t.Run("error invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc", nil))
		req.SetPathValue("id", "abc")
		serv.GetSession(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestUpdateSessionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	workoutService := mocks.NewMockWorkoutServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		WorkoutService: workoutService,
	})
	sessionID := uuid.New()
	t.Run("single update", func(t *testing.T) {
		body, _ := sonic.ConfigDefault.Marshal(api.UpdateSessionsRequest{
			SessionID: sessionID,
			Status:    entity.StatusCompleted,
		})
		workoutService.EXPECT().UpdateSession(gomock.Any(), uid, gomock.Any()).Return(nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/sessions", bytes.NewReader(body)))
		serv.UpdateSessions(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("batch update", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		body, _ := sonic.ConfigDefault.Marshal(api.UpdateSessionsRequest{
			SessionIDs: ids,
			Status:     entity.StatusMissed,
		})
		workoutService.EXPECT().UpdateStatusBatch(gomock.Any(), uid, ids, entity.StatusMissed).Return(nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/sessions", bytes.NewReader(body)))
		serv.UpdateSessions(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error no id provided", func(t *testing.T) {
		body, _ := sonic.ConfigDefault.Marshal(api.UpdateSessionsRequest{
			Status: entity.StatusMissed,
		})
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/sessions", bytes.NewReader(body)))
		serv.UpdateSessions(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("error foreign session in batch", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New()}
		body, _ := sonic.ConfigDefault.Marshal(api.UpdateSessionsRequest{
			SessionIDs: ids,
			Status:     entity.StatusMissed,
		})
		workoutService.EXPECT().UpdateStatusBatch(gomock.Any(), uid, ids, entity.StatusMissed).
			Return(errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPut, "/api/v1/sessions", bytes.NewReader(body)))
		serv.UpdateSessions(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

func TestGetMealHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mealService := mocks.NewMockMealServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MealService: mealService,
	})
	mealID := uuid.New()
	t.Run("provided with totals", func(t *testing.T) {
		mealService.EXPECT().GetMeal(gomock.Any(), mealID, uid).
			Return(&service.MealWithTotals{
				Meal:   &entity.Meal{ID: mealID, UserID: uid},
				Totals: entity.NutritionTotals{Calories: 300},
			}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/meals/"+mealID.String(), nil))
		req.SetPathValue("id", mealID.String())
		serv.GetMeal(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("foreign meal answered as missing", func(t *testing.T) {
		mealService.EXPECT().GetMeal(gomock.Any(), mealID, uid).
			Return(nil, errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/meals/"+mealID.String(), nil))
		req.SetPathValue("id", mealID.String())
		serv.GetMeal(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestCreateGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	goalService := mocks.NewMockGoalServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalService: goalService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.CreateGoalRequest{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Calories:  2400,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("created", func(t *testing.T) {
		goalService.EXPECT().CreateGoal(gomock.Any(), uid, gomock.Any()).
			Return(&entity.NutritionGoal{ID: uuid.New(), UserID: uid}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/nutrition-goals", bytes.NewReader(body)))
		serv.CreateGoal(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("error second goal same start date", func(t *testing.T) {
		goalService.EXPECT().CreateGoal(gomock.Any(), uid, gomock.Any()).
			Return(nil, errorvalues.ErrGoalExists)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/nutrition-goals", bytes.NewReader(body)))
		serv.CreateGoal(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
}

func TestGetSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	progressService := mocks.NewMockProgressServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ProgressService: progressService,
	})
	t.Run("provided", func(t *testing.T) {
		progressService.EXPECT().Summary(gomock.Any(), uid, service.PeriodWeekly, gomock.Nil()).
			Return(&entity.PeriodSummary{PeriodType: service.PeriodWeekly}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/summary?period_type=weekly", nil))
		serv.GetSummary(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("provided with start date", func(t *testing.T) {
		start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		progressService.EXPECT().Summary(gomock.Any(), uid, service.PeriodMonthly, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, got *time.Time) (*entity.PeriodSummary, error) {
				assert.NotNil(t, got)
				assert.Equal(t, start, *got)
				return &entity.PeriodSummary{PeriodType: service.PeriodMonthly}, nil
			})
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/summary?period_type=monthly&start_date=2026-03-02", nil))
		serv.GetSummary(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error unknown period type", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/summary?period_type=yearly", nil))
		serv.GetSummary(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
		assert.Equal(t, httputil.CodeValidationError, decodeAPIResponse(t, rr).ErrorCode)
	})
	t.Run("error invalid start date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/summary?period_type=weekly&start_date=03-02-2026", nil))
		serv.GetSummary(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("user_id override targets another user", func(t *testing.T) {
		target := uuid.New()
		overrideServ := api.New(&api.ServicesList{
			ProgressService:   progressService,
			AllowUserOverride: true,
		})
		progressService.EXPECT().Summary(gomock.Any(), target, service.PeriodWeekly, gomock.Nil()).
			Return(&entity.PeriodSummary{PeriodType: service.PeriodWeekly}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/summary?period_type=weekly&user_id="+target.String(), nil))
		overrideServ.GetSummary(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

// Both period-aggregation paths route to the same handler.
func TestSummaryRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	progressService := mocks.NewMockProgressServiceI(ctrl)
	mock := UserServiceMock{}
	jwtService := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService:     &mock,
		ProgressService: progressService,
		JwtService:      jwtService,
	})
	handler := serv.Handler()
	token, err := jwtService.GenerateToken(&entity.User{ID: uid, Email: email})
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{"/api/v1/summary", "/api/v1/progress"} {
		t.Run(path, func(t *testing.T) {
			progressService.EXPECT().Summary(gomock.Any(), uid, service.PeriodWeekly, gomock.Nil()).
				Return(&entity.PeriodSummary{PeriodType: service.PeriodWeekly}, nil)
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path+"?period_type=weekly", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		})
	}
}

func TestLogSetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	setService := mocks.NewMockSetServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		SetService: setService,
	})
	detailID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.LogSetRequest{
		SessionDetailID: detailID,
		SetNumber:       1,
		Reps:            10,
		WeightKg:        80,
		Completed:       true,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("logged", func(t *testing.T) {
		setService.EXPECT().LogSet(gomock.Any(), uid, gomock.Any()).
			Return(&entity.ExerciseSet{ID: uuid.New(), SessionDetailID: detailID}, nil)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sets", bytes.NewReader(body)))
		serv.LogSet(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("error foreign detail", func(t *testing.T) {
		setService.EXPECT().LogSet(gomock.Any(), uid, gomock.Any()).
			Return(nil, errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sets", bytes.NewReader(body)))
		serv.LogSet(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

func TestCleanupUnverifiedHandler(t *testing.T) {
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("cleaned", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/cleanup-unverified", nil)
		mock.ChangeState(nil)
		serv.CleanupUnverified(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/cleanup-unverified", nil)
		mock.ChangeState(assert.AnError)
		serv.CleanupUnverified(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}
