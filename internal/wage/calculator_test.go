package wage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift-wage-bot/internal/model"
)

const eps = 0.01

func testSettings() model.WageSettings {
	return model.WageSettings{
		HourlyWage:                   40.04,
		TaxDeductionPercent:          11.78,
		BaseHoursWeekday:             8,
		BaseHoursSpecialDay:          8,
		WeeklyOvertimeThresholdHours: 40,
		WeeklyOvertimeMultiplier:     1.5,
	}
}

func weekdayRules() []model.OvertimeRule {
	return []model.OvertimeRule{
		{ID: "r1", Name: "OT 1.25", DailyThreshold: 8, Multiplier: 1.25, IsActive: true},
		{ID: "r2", Name: "OT 1.5", DailyThreshold: 10, Multiplier: 1.5, IsActive: true},
	}
}

func specialRules() []model.OvertimeRule {
	return []model.OvertimeRule{
		{ID: "s1", DailyThreshold: 8, Multiplier: 1.75, IsActive: true},
		{ID: "s2", DailyThreshold: 10, Multiplier: 2.0, IsActive: true},
	}
}

// 2025-01-06 — понедельник
func at(day, hour, min int) time.Time {
	return time.Date(2025, time.January, day, hour, min, 0, 0, time.UTC)
}

func shift(id string, start, end time.Time) model.Shift {
	return model.Shift{ID: id, EmployeeID: 1, StartTime: start, EndTime: end}
}

func assertBreakdown(t *testing.T, want, got Breakdown) {
	t.Helper()
	assert.Equal(t, want.Type, got.Type)
	assert.InDelta(t, want.Hours, got.Hours, 1e-9)
	assert.InDelta(t, want.Rate, got.Rate, 1e-9)
	assert.InDelta(t, want.Amount, got.Amount, eps)
}

func TestCalculateWeekdayShiftWithTwoTiers(t *testing.T) {
	s := shift("a", at(6, 9, 0), at(6, 21, 0))
	calc := Calculate(s, weekdayRules(), testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 3)
	assertBreakdown(t, Breakdown{Type: TypeRegular, Hours: 8, Rate: 1.0, Amount: 320.32}, calc.Breakdowns[0])
	assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 2, Rate: 1.25, Amount: 100.10}, calc.Breakdowns[1])
	assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 2, Rate: 1.5, Amount: 120.12}, calc.Breakdowns[2])

	assert.InDelta(t, 12, calc.TotalHours, 1e-9)
	assert.InDelta(t, 540.54, calc.GrossWage, eps)
	assert.InDelta(t, 540.54*0.1178, calc.TaxDeduction, eps)
	assert.InDelta(t, 476.86, calc.NetWage, eps)
	assert.False(t, calc.IsSpecialDay)
	assert.False(t, calc.IsFestiveDay)
}

func TestCalculateSpecialDayShift(t *testing.T) {
	s := shift("b", at(6, 9, 0), at(6, 20, 0))
	s.IsSpecialDayOverride = true
	calc := Calculate(s, specialRules(), testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 3)
	assertBreakdown(t, Breakdown{Type: TypeSpecial, Hours: 8, Rate: 1.5, Amount: 480.48}, calc.Breakdowns[0])
	assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 2, Rate: 1.75, Amount: 140.14}, calc.Breakdowns[1])
	assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 1, Rate: 2.0, Amount: 80.08}, calc.Breakdowns[2])
	assert.InDelta(t, 700.70, calc.GrossWage, eps)
	assert.True(t, calc.IsSpecialDay)
}

func TestIsSpecialWorkDay(t *testing.T) {
	saturday := at(11, 10, 0)
	sunday := at(12, 10, 0)
	monday := at(6, 10, 0)

	tests := []struct {
		name              string
		date              time.Time
		startWorkOnSunday bool
		want              bool
	}{
		{"saturday, week from sunday", saturday, true, true},
		{"sunday, week from sunday", sunday, true, false},
		{"sunday, week from monday", sunday, false, true},
		{"saturday, week from monday", saturday, false, false},
		{"monday", monday, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSpecialWorkDay(tt.date, tt.startWorkOnSunday))
		})
	}
}

func TestSaturdayShiftIsSpecialWithoutOverride(t *testing.T) {
	s := shift("c", at(11, 9, 0), at(11, 17, 0))
	settings := testSettings()
	settings.StartWorkOnSunday = true

	calc := Calculate(s, weekdayRules(), settings, []model.Shift{s})
	assert.True(t, calc.IsSpecialDay)
	require.Len(t, calc.Breakdowns, 1)
	assert.Equal(t, TypeSpecial, calc.Breakdowns[0].Type)
}

func TestShiftOfExactlyBaseHours(t *testing.T) {
	s := shift("d", at(7, 9, 0), at(7, 17, 0))
	calc := Calculate(s, weekdayRules(), testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 1)
	assertBreakdown(t, Breakdown{Type: TypeRegular, Hours: 8, Rate: 1.0, Amount: 320.32}, calc.Breakdowns[0])
}

func TestShorterThanBaseHours(t *testing.T) {
	s := shift("e", at(7, 9, 0), at(7, 13, 30))
	calc := Calculate(s, weekdayRules(), testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 1)
	assert.InDelta(t, 4.5, calc.Breakdowns[0].Hours, 1e-9)
}

// Известная особенность: недельная переработка считается от всех часов недели
// и добавляется к расчёту каждой смены поверх дневных ступеней.
func TestWeeklyOvertimeIsAddedOnTopOfDailyTiers(t *testing.T) {
	var week []model.Shift
	for d := 6; d <= 10; d++ {
		week = append(week, shift(string(rune('a'+d)), at(d, 8, 0), at(d, 17, 0)))
	}

	b, ok := CalculateWeeklyOvertime(week[0], week, testSettings())
	require.True(t, ok)
	assertBreakdown(t, Breakdown{Type: TypeWeeklyOvertime, Hours: 5, Rate: 1.5, Amount: 5 * 40.04 * 1.5}, b)

	for _, s := range week {
		calc := Calculate(s, weekdayRules(), testSettings(), week)
		require.Len(t, calc.Breakdowns, 3)
		assertBreakdown(t, Breakdown{Type: TypeRegular, Hours: 8, Rate: 1.0, Amount: 320.32}, calc.Breakdowns[0])
		assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 1, Rate: 1.25, Amount: 50.05}, calc.Breakdowns[1])
		assertBreakdown(t, b, calc.Breakdowns[2])
		// дневная часть покрывает все 9 часов, недельная добавляет ещё 5
		assert.InDelta(t, 9, calc.DailyHours(), 1e-9)
		assert.InDelta(t, 320.32+50.05+300.30, calc.GrossWage, eps)
	}
}

func TestWeeklyOvertimeNotExceeded(t *testing.T) {
	var week []model.Shift
	for d := 6; d <= 10; d++ {
		week = append(week, shift("w", at(d, 9, 0), at(d, 17, 0)))
	}
	_, ok := CalculateWeeklyOvertime(week[0], week, testSettings())
	assert.False(t, ok, "ровно 40 часов не превышают порог")
}

func TestWeeklyOvertimeIgnoresShiftsFromOtherWeeks(t *testing.T) {
	target := shift("t", at(6, 8, 0), at(6, 20, 0))
	week := []model.Shift{
		target,
		shift("x", at(7, 8, 0), at(7, 20, 0)),
		shift("y", at(8, 8, 0), at(8, 20, 0)),
		// следующая неделя
		shift("z", at(13, 8, 0), at(13, 20, 0)),
	}
	assert.InDelta(t, 36, WeeklyHours(target, week), 1e-9)
	_, ok := CalculateWeeklyOvertime(target, week, testSettings())
	assert.False(t, ok)
}

// Неделя для недельной переработки всегда ISO (с понедельника), даже если
// рабочая неделя настроена с воскресенья. Воскресенье 12.01 относится к неделе
// с понедельником 06.01, а не к неделе, начинающейся с него.
func TestWeeklyBoundaryIgnoresStartWorkOnSunday(t *testing.T) {
	sunday := shift("sun", at(12, 8, 0), at(12, 20, 0))
	nextMonday := shift("mon", at(13, 8, 0), at(13, 20, 0))
	prevWeek := []model.Shift{
		shift("a", at(6, 8, 0), at(6, 20, 0)),
		shift("b", at(7, 8, 0), at(7, 20, 0)),
		shift("c", at(8, 8, 0), at(8, 20, 0)),
		sunday,
		nextMonday,
	}

	settings := testSettings()
	settings.StartWorkOnSunday = true

	assert.InDelta(t, 48, WeeklyHours(sunday, prevWeek), 1e-9)
	b, ok := CalculateWeeklyOvertime(sunday, prevWeek, settings)
	require.True(t, ok)
	assert.InDelta(t, 8, b.Hours, 1e-9)

	start, end := ISOWeekBounds(sunday.StartTime)
	assert.Equal(t, at(6, 0, 0), start)
	assert.Equal(t, at(13, 0, 0), end)
}

func TestCoverageOfNonWeeklyHours(t *testing.T) {
	rules := append(weekdayRules(), model.OvertimeRule{ID: "r3", DailyThreshold: 12, Multiplier: 2, IsActive: true})
	durations := []time.Duration{
		30 * time.Minute, 7*time.Hour + 45*time.Minute, 8 * time.Hour, 9*time.Hour + 10*time.Minute,
		10 * time.Hour, 11*time.Hour + 59*time.Minute, 12 * time.Hour, 16*time.Hour + 20*time.Minute, 23 * time.Hour,
	}
	for _, special := range []bool{false, true} {
		for _, d := range durations {
			s := shift("cov", at(7, 0, 30), at(7, 0, 30).Add(d))
			s.IsSpecialDayOverride = special
			calc := Calculate(s, rules, testSettings(), []model.Shift{s})
			assert.InDelta(t, d.Hours(), calc.DailyHours(), 1e-9, "duration %s special=%v", d, special)
		}
	}
}

func TestRuleOrderDoesNotChangeResult(t *testing.T) {
	rules := []model.OvertimeRule{
		{ID: "a", DailyThreshold: 8, Multiplier: 1.25, IsActive: true},
		{ID: "b", DailyThreshold: 10, Multiplier: 1.5, IsActive: true},
		{ID: "c", DailyThreshold: 12, Multiplier: 2, IsActive: true},
		{ID: "d", DailyThreshold: 10, Multiplier: 1.75, IsActive: true},
	}
	s := shift("o", at(6, 6, 0), at(6, 21, 0))
	want := Calculate(s, rules, testSettings(), []model.Shift{s})

	reversed := make([]model.OvertimeRule, len(rules))
	for i, r := range rules {
		reversed[len(rules)-1-i] = r
	}
	rotated := append(append([]model.OvertimeRule{}, rules[2:]...), rules[:2]...)

	assert.Equal(t, want, Calculate(s, reversed, testSettings(), []model.Shift{s}))
	assert.Equal(t, want, Calculate(s, rotated, testSettings(), []model.Shift{s}))
}

func TestCalculateIsIdempotent(t *testing.T) {
	s := shift("i", at(6, 9, 0), at(6, 22, 15))
	week := []model.Shift{s}
	first := Calculate(s, weekdayRules(), testSettings(), week)
	second := Calculate(s, weekdayRules(), testSettings(), week)
	assert.Equal(t, first, second)
}

func TestNoRulesProducesOnlyBaseBreakdown(t *testing.T) {
	s := shift("n", at(6, 9, 0), at(6, 21, 0))
	calc := Calculate(s, nil, testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 1)
	assert.Equal(t, TypeRegular, calc.Breakdowns[0].Type)
	assert.InDelta(t, 8, calc.Breakdowns[0].Hours, 1e-9)
	assert.InDelta(t, 320.32, calc.GrossWage, eps)
}

func TestInactiveRulesAreIgnored(t *testing.T) {
	rules := weekdayRules()
	rules[1].IsActive = false
	s := shift("ia", at(6, 9, 0), at(6, 21, 0))
	calc := Calculate(s, rules, testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 2)
	assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 4, Rate: 1.25, Amount: 200.20}, calc.Breakdowns[1])
}

func TestHoursBeyondCoveredTiersStayUnbilled(t *testing.T) {
	rules := []model.OvertimeRule{{ID: "late", DailyThreshold: 10, Multiplier: 1.5, IsActive: true}}
	s := shift("u", at(6, 9, 0), at(6, 21, 0))
	calc := Calculate(s, rules, testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 2)
	assert.InDelta(t, 8, calc.Breakdowns[0].Hours, 1e-9)
	assert.InDelta(t, 2, calc.Breakdowns[1].Hours, 1e-9)
	assert.InDelta(t, 10, calc.DailyHours(), 1e-9)
}

func TestThresholdBelowBaseHoursDoesNotOverlapBase(t *testing.T) {
	rules := []model.OvertimeRule{
		{ID: "early", DailyThreshold: 6, Multiplier: 1.25, IsActive: true},
		{ID: "late", DailyThreshold: 10, Multiplier: 1.5, IsActive: true},
	}
	s := shift("tb", at(6, 9, 0), at(6, 21, 0))
	calc := Calculate(s, rules, testSettings(), []model.Shift{s})

	require.Len(t, calc.Breakdowns, 3)
	assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 2, Rate: 1.25, Amount: 100.10}, calc.Breakdowns[1])
	assertBreakdown(t, Breakdown{Type: TypeOvertime, Hours: 2, Rate: 1.5, Amount: 120.12}, calc.Breakdowns[2])
}

func TestOvernightShiftIntoSundayIsFullySpecial(t *testing.T) {
	s := shift("night", at(11, 22, 0), at(12, 6, 0))
	calc := Calculate(s, weekdayRules(), testSettings(), []model.Shift{s})

	assert.True(t, calc.IsSpecialDay)
	require.Len(t, calc.Breakdowns, 1)
	assertBreakdown(t, Breakdown{Type: TypeSpecial, Hours: 8, Rate: 1.5, Amount: 480.48}, calc.Breakdowns[0])
}

type fixedFestive map[string]bool

func (f fixedFestive) IsFestiveDay(date time.Time) bool {
	return f[date.Format("2006-01-02")]
}

func TestFestiveCalendarIsPluggable(t *testing.T) {
	s := shift("f", at(7, 9, 0), at(7, 17, 0))

	calc := Calculate(s, nil, testSettings(), []model.Shift{s})
	assert.False(t, calc.IsFestiveDay)
	assert.False(t, calc.IsSpecialDay)

	engine := NewEngine(fixedFestive{"2025-01-07": true})
	calc = engine.Calculate(s, nil, testSettings(), []model.Shift{s})
	assert.True(t, calc.IsFestiveDay)
	assert.True(t, calc.IsSpecialDay)
	assert.Equal(t, TypeSpecial, calc.Breakdowns[0].Type)
}

func TestZeroTaxKeepsNetEqualToGross(t *testing.T) {
	settings := testSettings()
	settings.TaxDeductionPercent = 0
	s := shift("z", at(6, 9, 0), at(6, 17, 0))
	calc := Calculate(s, nil, settings, []model.Shift{s})
	assert.Equal(t, calc.GrossWage, calc.NetWage)
	assert.Zero(t, calc.TaxDeduction)
}
