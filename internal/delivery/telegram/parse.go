package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrBadShiftInput = errors.New("ожидается формат 09:00-21:00 [!] [# заметка]")

// ShiftInput — разобранный ввод смены.
type ShiftInput struct {
	Start    time.Time
	End      time.Time
	Override bool
	Notes    string
}

// ParseShiftInput разбирает "09:00-21:00 [!] [# заметка]" для указанной даты.
// "!" помечает смену как особый день. Если конец не позже начала,
// смена заканчивается на следующий день.
func ParseShiftInput(date time.Time, text string, loc *time.Location) (ShiftInput, error) {
	var in ShiftInput
	body, notes, _ := strings.Cut(text, "#")
	in.Notes = strings.TrimSpace(notes)

	if strings.Contains(body, "!") {
		in.Override = true
		body = strings.ReplaceAll(body, "!", "")
	}
	body = strings.NewReplacer("–", "-", "—", "-").Replace(body)
	from, to, ok := strings.Cut(body, "-")
	if !ok {
		return ShiftInput{}, ErrBadShiftInput
	}
	start, err := clock(date, from, loc)
	if err != nil {
		return ShiftInput{}, err
	}
	end, err := clock(date, to, loc)
	if err != nil {
		return ShiftInput{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	in.Start, in.End = start, end
	return in, nil
}

func clock(date time.Time, s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadShiftInput, strings.TrimSpace(s))
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// ParseRuleArgs разбирает аргументы /addrule: порог, множитель и необязательное имя.
func ParseRuleArgs(args []string) (threshold, multiplier float64, name string, err error) {
	if len(args) < 2 {
		return 0, 0, "", errors.New("использование: /addrule <порог ч> <множитель> [название]")
	}
	if threshold, err = parseNumber(args[0]); err != nil {
		return 0, 0, "", fmt.Errorf("порог %q: %w", args[0], err)
	}
	if multiplier, err = parseNumber(args[1]); err != nil {
		return 0, 0, "", fmt.Errorf("множитель %q: %w", args[1], err)
	}
	return threshold, multiplier, strings.Join(args[2:], " "), nil
}

// ParseIndex разбирает номер правила из списка /rules.
func ParseIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("укажите номер правила из /rules")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("некорректный номер %q", args[0])
	}
	return n, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
