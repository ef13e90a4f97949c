// Package wage считает заработок за смену: базовые часы, дневные ступени
// переработки, недельную переработку и налог. Пакет не делает I/O и не хранит
// состояние: все данные (правила, настройки, смены недели) передаёт вызывающий.
package wage

type BreakdownType string

const (
	TypeRegular        BreakdownType = "regular"
	TypeSpecial        BreakdownType = "special"
	TypeOvertime       BreakdownType = "overtime"
	TypeWeeklyOvertime BreakdownType = "weeklyOvertime"
)

// Breakdown — одна строка расчёта: часы, множитель и сумма.
type Breakdown struct {
	Hours  float64       `json:"hours"`
	Rate   float64       `json:"rate"`
	Amount float64       `json:"amount"`
	Type   BreakdownType `json:"type"`
}

type Calculation struct {
	TotalHours   float64     `json:"totalHours"`
	GrossWage    float64     `json:"grossWage"`
	TaxDeduction float64     `json:"taxDeduction"`
	NetWage      float64     `json:"netWage"`
	Breakdowns   []Breakdown `json:"breakdowns"`
	IsSpecialDay bool        `json:"isSpecialDay"`
	IsFestiveDay bool        `json:"isFestiveDay"`
}

// DailyHours суммирует часы всех строк, кроме недельной переработки.
func (c Calculation) DailyHours() float64 {
	var total float64
	for _, b := range c.Breakdowns {
		if b.Type != TypeWeeklyOvertime {
			total += b.Hours
		}
	}
	return total
}

// WeeklyOvertime возвращает строку недельной переработки, если она есть.
func (c Calculation) WeeklyOvertime() (Breakdown, bool) {
	for _, b := range c.Breakdowns {
		if b.Type == TypeWeeklyOvertime {
			return b, true
		}
	}
	return Breakdown{}, false
}
