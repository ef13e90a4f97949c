package wage

import (
	"math"
	"sort"

	"shift-wage-bot/internal/model"
)

const (
	RegularBaseRate = 1.0
	SpecialBaseRate = 1.5
)

// ActiveRulesSorted отбрасывает неактивные правила и сортирует остальные по порогу.
// При равных порогах порядок задаётся множителем и ID, чтобы результат не зависел
// от порядка хранения.
func ActiveRulesSorted(rules []model.OvertimeRule) []model.OvertimeRule {
	active := make([]model.OvertimeRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if a.DailyThreshold != b.DailyThreshold {
			return a.DailyThreshold < b.DailyThreshold
		}
		if a.Multiplier != b.Multiplier {
			return a.Multiplier < b.Multiplier
		}
		return a.ID < b.ID
	})
	return active
}

// CalculateTiers раскладывает часы одной смены по ставкам.
//
// Сначала базовые часы дня по базовой ставке, затем ступени переработки по
// возрастанию порога. Ступень покрывает часы от своего порога до порога
// следующего активного правила. Часы выше последней ступени не оплачиваются.
func CalculateTiers(totalHours float64, isSpecialDay bool, rules []model.OvertimeRule, settings model.WageSettings) []Breakdown {
	baseHours := settings.BaseHoursWeekday
	baseRate := RegularBaseRate
	baseType := TypeRegular
	if isSpecialDay {
		baseHours = settings.BaseHoursSpecialDay
		baseRate = SpecialBaseRate
		baseType = TypeSpecial
	}

	breakdowns := make([]Breakdown, 0, len(rules)+1)
	remaining := totalHours

	consumed := math.Min(remaining, baseHours)
	if consumed > 0 {
		breakdowns = append(breakdowns, Breakdown{
			Hours:  consumed,
			Rate:   baseRate,
			Amount: consumed * settings.HourlyWage * baseRate,
			Type:   baseType,
		})
		remaining -= consumed
	}
	// граница уже оплаченных часов внутри смены
	billedUpTo := math.Max(consumed, 0)

	sorted := ActiveRulesSorted(rules)
	for i, rule := range sorted {
		if remaining <= 0 {
			break
		}
		if totalHours <= rule.DailyThreshold {
			break
		}
		upper := totalHours
		if i+1 < len(sorted) && sorted[i+1].DailyThreshold < upper {
			upper = sorted[i+1].DailyThreshold
		}
		lower := math.Max(rule.DailyThreshold, billedUpTo)
		if upper <= lower {
			continue
		}
		overtimeHours := math.Min(remaining, upper-lower)
		breakdowns = append(breakdowns, Breakdown{
			Hours:  overtimeHours,
			Rate:   rule.Multiplier,
			Amount: overtimeHours * settings.HourlyWage * rule.Multiplier,
			Type:   TypeOvertime,
		})
		remaining -= overtimeHours
		billedUpTo = lower + overtimeHours
	}

	return breakdowns
}
