package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository/mocks"
	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/pkg/entity"
)

type setMocks struct {
	sessions  *mocks.MockSessionsRepositoryI
	details   *mocks.MockSessionDetailsRepositoryI
	sets      *mocks.MockSetsRepositoryI
	exercises *mocks.MockExercisesRepositoryI
}

func newSetService(ctrl *gomock.Controller) (*service.SetService, setMocks) {
	m := setMocks{
		sessions:  mocks.NewMockSessionsRepositoryI(ctrl),
		details:   mocks.NewMockSessionDetailsRepositoryI(ctrl),
		sets:      mocks.NewMockSetsRepositoryI(ctrl),
		exercises: mocks.NewMockExercisesRepositoryI(ctrl),
	}
	owner := service.NewOwnershipVerifier(
		m.sessions,
		m.details,
		m.sets,
		mocks.NewMockMealsRepositoryI(ctrl),
		mocks.NewMockMealDetailsRepositoryI(ctrl),
	)
	return service.NewSetService(m.sets, m.details, m.exercises, owner), m
}

func TestLogSet(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, m := newSetService(ctrl)
	ctx := context.Background()
	uid := uuid.New()
	sessionID := uuid.New()
	detailID := uuid.New()
	strengthID := uuid.New()
	cardioID := uuid.New()
	session := &entity.WorkoutSession{ID: sessionID, UserID: uid}
	expectChain := func(exerciseID uuid.UUID) {
		m.details.EXPECT().GetByID(gomock.Any(), detailID).Return(&entity.SessionDetail{
			ID:         detailID,
			SessionID:  sessionID,
			ExerciseID: exerciseID,
		}, nil)
		m.sessions.EXPECT().GetByID(gomock.Any(), sessionID).Return(session, nil)
	}
	t.Run("strength set drops duration", func(t *testing.T) {
		id := uuid.New()
		expectChain(strengthID)
		m.exercises.EXPECT().GetByID(gomock.Any(), strengthID).Return(&entity.Exercise{
			ID:   strengthID,
			Type: entity.ExerciseStrength,
		}, nil)
		m.sets.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, set *entity.ExerciseSet) (uuid.UUID, error) {
				assert.Equal(t, 10, set.Reps)
				assert.Equal(t, 80.0, set.WeightKg)
				assert.Equal(t, 0, set.DurationSeconds)
				return id, nil
			})
		m.sets.EXPECT().ListByDetail(gomock.Any(), detailID).Return([]*entity.ExerciseSet{
			{ID: id, Status: entity.StatusCompleted},
		}, nil)
		m.details.EXPECT().UpdateStatus(gomock.Any(), detailID, entity.StatusCompleted).Return(nil)
		set, err := serv.LogSet(ctx, uid, &service.LogSetRequest{
			SessionDetailID: detailID,
			SetNumber:       1,
			Reps:            10,
			WeightKg:        80,
			DurationSeconds: 300,
			Completed:       true,
		})
		assert.NoError(t, err)
		assert.Equal(t, id, set.ID)
		assert.Equal(t, entity.StatusCompleted, set.Status)
	})
	t.Run("cardio set drops reps and weight", func(t *testing.T) {
		id := uuid.New()
		expectChain(cardioID)
		m.exercises.EXPECT().GetByID(gomock.Any(), cardioID).Return(&entity.Exercise{
			ID:   cardioID,
			Type: entity.ExerciseCardio,
		}, nil)
		m.sets.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, set *entity.ExerciseSet) (uuid.UUID, error) {
				assert.Equal(t, 0, set.Reps)
				assert.Equal(t, 0.0, set.WeightKg)
				assert.Equal(t, 300, set.DurationSeconds)
				return id, nil
			})
		m.sets.EXPECT().ListByDetail(gomock.Any(), detailID).Return([]*entity.ExerciseSet{
			{ID: id, Status: entity.StatusUnfinished},
		}, nil)
		m.details.EXPECT().UpdateStatus(gomock.Any(), detailID, entity.StatusUnfinished).Return(nil)
		_, err := serv.LogSet(ctx, uid, &service.LogSetRequest{
			SessionDetailID: detailID,
			SetNumber:       1,
			Reps:            10,
			WeightKg:        80,
			DurationSeconds: 300,
		})
		assert.NoError(t, err)
	})
	t.Run("missing set number appends after siblings", func(t *testing.T) {
		expectChain(strengthID)
		m.exercises.EXPECT().GetByID(gomock.Any(), strengthID).Return(&entity.Exercise{
			ID:   strengthID,
			Type: entity.ExerciseStrength,
		}, nil)
		m.sets.EXPECT().ListByDetail(gomock.Any(), detailID).Return([]*entity.ExerciseSet{
			{SetNumber: 1}, {SetNumber: 2},
		}, nil)
		m.sets.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, set *entity.ExerciseSet) (uuid.UUID, error) {
				assert.Equal(t, 3, set.SetNumber)
				return uuid.New(), nil
			})
		m.sets.EXPECT().ListByDetail(gomock.Any(), detailID).Return(nil, nil)
		m.details.EXPECT().UpdateStatus(gomock.Any(), detailID, entity.StatusUnfinished).Return(nil)
		_, err := serv.LogSet(ctx, uid, &service.LogSetRequest{
			SessionDetailID: detailID,
			Reps:            8,
			WeightKg:        60,
		})
		assert.NoError(t, err)
	})
	t.Run("error wrong owner", func(t *testing.T) {
		m.details.EXPECT().GetByID(gomock.Any(), detailID).Return(&entity.SessionDetail{
			ID:        detailID,
			SessionID: sessionID,
		}, nil)
		m.sessions.EXPECT().GetByID(gomock.Any(), sessionID).Return(&entity.WorkoutSession{
			ID:     sessionID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.LogSet(ctx, uid, &service.LogSetRequest{
			SessionDetailID: detailID,
			SetNumber:       1,
		})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestUpdateSetFields(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, m := newSetService(ctrl)
	ctx := context.Background()
	uid := uuid.New()
	sessionID := uuid.New()
	detailID := uuid.New()
	setID := uuid.New()
	exerciseID := uuid.New()
	expectChain := func() {
		m.sets.EXPECT().GetByID(gomock.Any(), setID).Return(&entity.ExerciseSet{
			ID:              setID,
			SessionDetailID: detailID,
			SetNumber:       1,
			Reps:            10,
			WeightKg:        80,
			Status:          entity.StatusUnfinished,
		}, nil)
		m.details.EXPECT().GetByID(gomock.Any(), detailID).Return(&entity.SessionDetail{
			ID:         detailID,
			SessionID:  sessionID,
			ExerciseID: exerciseID,
		}, nil)
		m.sessions.EXPECT().GetByID(gomock.Any(), sessionID).Return(&entity.WorkoutSession{
			ID:     sessionID,
			UserID: uid,
		}, nil)
	}
	t.Run("updated and detail completed", func(t *testing.T) {
		expectChain()
		m.exercises.EXPECT().GetByID(gomock.Any(), exerciseID).Return(&entity.Exercise{
			ID:   exerciseID,
			Type: entity.ExerciseStrength,
		}, nil)
		m.sets.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, set *entity.ExerciseSet) error {
				assert.Equal(t, 12, set.Reps)
				assert.Equal(t, 70.0, set.WeightKg)
				assert.Equal(t, entity.StatusCompleted, set.Status)
				return nil
			})
		m.sets.EXPECT().ListByDetail(gomock.Any(), detailID).Return([]*entity.ExerciseSet{
			{ID: setID, Status: entity.StatusCompleted},
		}, nil)
		m.details.EXPECT().UpdateStatus(gomock.Any(), detailID, entity.StatusCompleted).Return(nil)
		set, err := serv.UpdateSet(ctx, uid, &service.UpdateSetRequest{
			SetID:     setID,
			Reps:      12,
			WeightKg:  70,
			Completed: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, set.Status)
	})
	t.Run("cardio update ignores reps and weight", func(t *testing.T) {
		expectChain()
		m.exercises.EXPECT().GetByID(gomock.Any(), exerciseID).Return(&entity.Exercise{
			ID:   exerciseID,
			Type: entity.ExerciseCardio,
		}, nil)
		m.sets.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, set *entity.ExerciseSet) error {
				assert.Equal(t, 900, set.DurationSeconds)
				assert.Equal(t, 10, set.Reps)
				assert.Equal(t, 80.0, set.WeightKg)
				return nil
			})
		m.sets.EXPECT().ListByDetail(gomock.Any(), detailID).Return(nil, nil)
		m.details.EXPECT().UpdateStatus(gomock.Any(), detailID, entity.StatusUnfinished).Return(nil)
		_, err := serv.UpdateSet(ctx, uid, &service.UpdateSetRequest{
			SetID:           setID,
			Reps:            99,
			WeightKg:        99,
			DurationSeconds: 900,
		})
		assert.NoError(t, err)
	})
	t.Run("error set not found", func(t *testing.T) {
		m.sets.EXPECT().GetByID(gomock.Any(), setID).Return(nil, errorvalues.ErrSetNotFound)
		_, err := serv.UpdateSet(ctx, uid, &service.UpdateSetRequest{SetID: setID})
		assert.ErrorIs(t, err, errorvalues.ErrSetNotFound)
	})
}
