package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/pkg/entity"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// ProgressService builds the rolling-window progress report. Everything is
// derived on read from the raw rows, nothing here writes.
type ProgressService struct {
	sessionsRepo repository.SessionsRepositoryI
	setsRepo     repository.SetsRepositoryI
	mealsRepo    repository.MealsRepositoryI
}

func NewProgressService(
	sessionsRepo repository.SessionsRepositoryI,
	setsRepo repository.SetsRepositoryI,
	mealsRepo repository.MealsRepositoryI,
) *ProgressService {
	if sessionsRepo == nil || setsRepo == nil || mealsRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		sessionsRepo: sessionsRepo,
		setsRepo:     setsRepo,
		mealsRepo:    mealsRepo,
	}
}

// Summary aggregates one window of the given user's activity. A nil start
// anchors the window so it ends tomorrow, which keeps today inside it. The
// previous window of equal length directly before feeds the score trend.
func (ps *ProgressService) Summary(ctx context.Context, uid uuid.UUID, periodType string, start *time.Time) (*entity.PeriodSummary, error) {
	if err := validate.Var(periodType, "period_type"); err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown period type: "+periodType))
	}
	days := 7
	if periodType == PeriodMonthly {
		days = 30
	}

	var from time.Time
	if start != nil {
		from = start.UTC().Truncate(24 * time.Hour)
	} else {
		tomorrow := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
		from = tomorrow.AddDate(0, 0, -days)
	}
	to := from.AddDate(0, 0, days)
	prevFrom := from.AddDate(0, 0, -days)

	loads, err := ps.setsRepo.ListLoadsForPeriod(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("sets repository error: " + err.Error())
	}
	prevLoads, err := ps.setsRepo.ListLoadsForPeriod(ctx, uid, prevFrom, from)
	if err != nil {
		return nil, errors.New("sets repository error: " + err.Error())
	}
	sessions, err := ps.sessionsRepo.ListByUserAndRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	servings, err := ps.mealsRepo.ListServingsForPeriod(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}

	completed := 0
	completedDates := make([]time.Time, 0, len(sessions))
	for _, session := range sessions {
		if session.Status == entity.StatusCompleted {
			completed++
			completedDates = append(completedDates, session.ScheduledDate)
		}
	}

	score := PeriodScore(loads)
	return &entity.PeriodSummary{
		PeriodType:        periodType,
		StartDate:         from,
		EndDate:           to,
		SessionsCompleted: completed,
		TotalScore:        int(math.Round(score)),
		ScoreChangePct:    ChangePct(score, PeriodScore(prevLoads)),
		Streak:            LongestStreak(completedDates),
		Volume:            PeriodVolume(loads),
		MuscleSplit:       MuscleSplit(loads),
		NutritionAverages: AverageNutrition(servings, days),
	}, nil
}
