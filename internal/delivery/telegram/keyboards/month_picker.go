package keyboards

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"
)

var shortMonths = []string{"Янв", "Фев", "Мар", "Апр", "Май", "Июн", "Июл", "Авг", "Сен", "Окт", "Ноя", "Дек"}

// BuildMonthKeyboard строит выбор месяца за год. action — ключ callback,
// на который уйдёт выбранный месяц в формате YYYY-MM; текущий месяц помечен точкой.
func BuildMonthKeyboard(year int, action string, now time.Time) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}

	rows := []telebot.Row{}
	for i := 0; i < 12; i += 3 {
		row := make(telebot.Row, 0, 3)
		for j := i; j < i+3; j++ {
			label := shortMonths[j]
			if year == now.Year() && time.Month(j+1) == now.Month() {
				label = "• " + label
			}
			row = append(row, markup.Data(label, action, MonthPayload(year, time.Month(j+1))))
		}
		rows = append(rows, row)
	}

	prev := markup.Data("← "+strconv.Itoa(year-1), "month_prev", action+":"+strconv.Itoa(year))
	next := markup.Data(strconv.Itoa(year+1)+" →", "month_next", action+":"+strconv.Itoa(year))
	rows = append(rows, markup.Row(prev, next))

	markup.Inline(rows...)
	title := fmt.Sprintf("Выберите месяц: %d", year)
	return title, markup
}

func MonthPayload(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonth разбирает YYYY-MM.
func ParseMonth(payload string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", payload)
	if err != nil {
		return 0, 0, fmt.Errorf("month %q: %w", payload, err)
	}
	return t.Year(), t.Month(), nil
}
