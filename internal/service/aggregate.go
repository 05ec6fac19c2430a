package service

import (
	"math"
	"sort"
	"time"

	"github.com/ferrous/regiment/internal/repository"
	"github.com/ferrous/regiment/pkg/entity"
)

// Pure aggregation over explicitly fetched snapshots. Everything here is
// recompute-fully-and-replace: no incremental maintenance.

// RollupNutrition sums per-serving values over a meal's servings, each total
// rounded half-up to two decimals. Missing per-serving values are zero in
// the store already.
func RollupNutrition(servings []repository.Serving) entity.NutritionTotals {
	var t entity.NutritionTotals
	for _, s := range servings {
		t.Calories += s.Food.Calories * s.NumbersOfServing
		t.Protein += s.Food.Protein * s.NumbersOfServing
		t.Carbs += s.Food.Carbs * s.NumbersOfServing
		t.Fat += s.Food.Fat * s.NumbersOfServing
		t.Fiber += s.Food.Fiber * s.NumbersOfServing
		t.Sugar += s.Food.Sugar * s.NumbersOfServing
		t.Zinc += s.Food.Zinc * s.NumbersOfServing
		t.Magnesium += s.Food.Magnesium * s.NumbersOfServing
		t.Calcium += s.Food.Calcium * s.NumbersOfServing
		t.Iron += s.Food.Iron * s.NumbersOfServing
		t.VitaminA += s.Food.VitaminA * s.NumbersOfServing
		t.VitaminC += s.Food.VitaminC * s.NumbersOfServing
		t.VitaminB12 += s.Food.VitaminB12 * s.NumbersOfServing
		t.VitaminD += s.Food.VitaminD * s.NumbersOfServing
	}
	t.Calories = round2(t.Calories)
	t.Protein = round2(t.Protein)
	t.Carbs = round2(t.Carbs)
	t.Fat = round2(t.Fat)
	t.Fiber = round2(t.Fiber)
	t.Sugar = round2(t.Sugar)
	t.Zinc = round2(t.Zinc)
	t.Magnesium = round2(t.Magnesium)
	t.Calcium = round2(t.Calcium)
	t.Iron = round2(t.Iron)
	t.VitaminA = round2(t.VitaminA)
	t.VitaminC = round2(t.VitaminC)
	t.VitaminB12 = round2(t.VitaminB12)
	t.VitaminD = round2(t.VitaminD)
	return t
}

// SessionScore is the gr_score for one session's full set snapshot:
// Σ reps × weight × difficulty factor, rounded to an integer. A zero factor
// means the exercise row predates the factor column, treated as 1.0.
func SessionScore(sets []repository.ScoredSet) int {
	var sum float64
	for _, s := range sets {
		factor := s.DifficultyFactor
		if factor == 0 {
			factor = 1.0
		}
		sum += float64(s.Reps) * s.WeightKg * factor
	}
	return int(math.Round(sum))
}

// LongestStreak finds the longest run of consecutive calendar days among
// the given dates. Duplicates collapse; empty input yields 0, a single
// date yields 1. The caller bounds the input to the window, so the streak
// is local to it.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	uniq := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		uniq[day] = struct{}{}
	}
	days := make([]time.Time, 0, len(uniq))
	for d := range uniq {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

// PeriodVolume sums reps × weight over every set of COMPLETED sessions,
// flooring weight at 1 so bodyweight sets still contribute their reps.
func PeriodVolume(loads []repository.SetLoad) float64 {
	var volume float64
	for _, l := range loads {
		if l.SessionStatus != entity.StatusCompleted {
			continue
		}
		volume += float64(l.Reps) * math.Max(l.WeightKg, 1)
	}
	return volume
}

// PeriodScore totals the force metric over sets of COMPLETED sessions,
// the window-wide counterpart of SessionScore.
func PeriodScore(loads []repository.SetLoad) float64 {
	var sum float64
	for _, l := range loads {
		if l.SessionStatus != entity.StatusCompleted {
			continue
		}
		factor := l.DifficultyFactor
		if factor == 0 {
			factor = 1.0
		}
		sum += float64(l.Reps) * l.WeightKg * factor
	}
	return sum
}

// MuscleSplit groups the force metric by exercise category and normalizes
// to integer percentages of the grand total. Categories rounding to 0%
// are dropped.
func MuscleSplit(loads []repository.SetLoad) map[string]int {
	forces := make(map[string]float64)
	var total float64
	for _, l := range loads {
		factor := l.DifficultyFactor
		if factor == 0 {
			factor = 1.0
		}
		force := float64(l.Reps) * l.WeightKg * factor
		forces[l.Category] += force
		total += force
	}
	split := make(map[string]int)
	if total == 0 {
		return split
	}
	for category, force := range forces {
		pct := int(math.Round(force / total * 100))
		if pct > 0 {
			split[category] = pct
		}
	}
	return split
}

// ChangePct is the rounded percentage change between periods, 0 when the
// previous period was empty.
func ChangePct(current, previous float64) int {
	if previous == 0 {
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// DeriveDetailStatus is the pure function a session detail's status is
// maintained by: COMPLETED iff every child set is COMPLETED.
func DeriveDetailStatus(sets []*entity.ExerciseSet) string {
	if len(sets) == 0 {
		return entity.StatusUnfinished
	}
	for _, s := range sets {
		if s.Status != entity.StatusCompleted {
			return entity.StatusUnfinished
		}
	}
	return entity.StatusCompleted
}

// AverageNutrition divides window macro sums by the window's calendar day
// count (not the days with data), rounding to whole units.
func AverageNutrition(servings []repository.Serving, days int) entity.NutritionAverages {
	if days <= 0 {
		return entity.NutritionAverages{}
	}
	var calories, protein, carbs, fat, fiber float64
	for _, s := range servings {
		calories += s.Food.Calories * s.NumbersOfServing
		protein += s.Food.Protein * s.NumbersOfServing
		carbs += s.Food.Carbs * s.NumbersOfServing
		fat += s.Food.Fat * s.NumbersOfServing
		fiber += s.Food.Fiber * s.NumbersOfServing
	}
	d := float64(days)
	return entity.NutritionAverages{
		Calories: int(math.Round(calories / d)),
		Protein:  int(math.Round(protein / d)),
		Carbs:    int(math.Round(carbs / d)),
		Fat:      int(math.Round(fat / d)),
		Fiber:    int(math.Round(fiber / d)),
	}
}

// round2 rounds half-up on the cent digit; totals are non-negative here.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
