package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/internal/wage"
)

// Day — клетка календарной сетки. Нулевая Date означает пустую клетку.
type Day struct {
	Date    time.Time
	Special bool
}

func (d Day) Empty() bool { return d.Date.IsZero() }

// BuildMonth раскладывает месяц по неделям. Неделя начинается с понедельника
// или, если сотрудник работает с воскресенья, с воскресенья; особый день
// недели (воскресенье или суббота соответственно) помечается.
func BuildMonth(year int, month time.Month, loc *time.Location, startWorkOnSunday bool) [][]Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	weekStart := time.Monday
	if startWorkOnSunday {
		weekStart = time.Sunday
	}
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7

	var weeks [][]Day
	week := make([]Day, offset, 7)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		week = append(week, Day{Date: d, Special: wage.IsSpecialWorkDay(d, startWorkOnSunday)})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]Day, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Day{})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func weekdayHeader(startWorkOnSunday bool) []string {
	if startWorkOnSunday {
		return []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}
	}
	return []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
}

var ruMonths = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Markup строит инлайн-календарь за месяц.
func Markup(year int, month time.Month, loc *time.Location, startWorkOnSunday bool) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row

	header := telebot.Row{}
	for _, name := range weekdayHeader(startWorkOnSunday) {
		header = append(header, markup.Data(name, "cal_ignore"))
	}
	rows = append(rows, header)

	for _, week := range BuildMonth(year, month, loc, startWorkOnSunday) {
		row := make(telebot.Row, 0, 7)
		for _, d := range week {
			if d.Empty() {
				row = append(row, markup.Data(" ", "cal_ignore"))
				continue
			}
			label := strconv.Itoa(d.Date.Day())
			if d.Special {
				label += "★"
			}
			row = append(row, markup.Data(label, "cal_day", d.Date.Format("2006-01-02")))
		}
		rows = append(rows, row)
	}

	cur := fmt.Sprintf("%04d-%02d", year, int(month))
	rows = append(rows, telebot.Row{
		markup.Data("<", "cal_prev", cur),
		markup.Data(">", "cal_next", cur),
	})
	markup.Inline(rows...)
	title := "Выберите дату: " + ruMonths[month-1] + " " + strconv.Itoa(year) + "\n★ — особый день"
	return title, markup
}

// CalendarController показывает календарь и обрабатывает его callback-и.
type CalendarController struct {
	Location *time.Location
	// StartWorkOnSunday возвращает настройку пользователя, от которой зависит
	// первый день недели в сетке.
	StartWorkOnSunday func(c telebot.Context) bool
	OnDate            func(date time.Time, c telebot.Context) error
}

func (cc *CalendarController) loc() *time.Location {
	if cc.Location == nil {
		return time.Local
	}
	return cc.Location
}

func (cc *CalendarController) sundayStart(c telebot.Context) bool {
	if cc.StartWorkOnSunday == nil {
		return false
	}
	return cc.StartWorkOnSunday(c)
}

// ShowCalendar отправляет календарь текущего месяца.
func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now().In(cc.loc())
	return cc.send(c, now.Year(), now.Month())
}

func (cc *CalendarController) send(c telebot.Context, year int, month time.Month) error {
	title, markup := Markup(year, month, cc.loc(), cc.sundayStart(c))
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// HandleCallback принимает data в виде "key|payload".
func (cc *CalendarController) HandleCallback(c telebot.Context, data string) error {
	key, payload, _ := strings.Cut(data, "|")
	switch key {
	case "cal_day":
		date, err := time.ParseInLocation("2006-01-02", payload, cc.loc())
		if err != nil {
			return c.Send("Ошибка даты")
		}
		if cc.OnDate == nil {
			return nil
		}
		return cc.OnDate(date, c)
	case "cal_prev", "cal_next":
		year, month, err := ShiftMonth(payload, key == "cal_next")
		if err != nil {
			return c.Send("Ошибка месяца")
		}
		return cc.send(c, year, month)
	}
	return nil
}

// ShiftMonth сдвигает месяц YYYY-MM на один вперёд или назад.
func ShiftMonth(payload string, forward bool) (int, time.Month, error) {
	t, err := time.Parse("2006-01", payload)
	if err != nil {
		return 0, 0, err
	}
	step := -1
	if forward {
		step = 1
	}
	t = t.AddDate(0, step, 0)
	return t.Year(), t.Month(), nil
}
