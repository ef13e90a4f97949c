package flows

import (
	"context"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/internal/delivery/telegram/keyboards"
	"shift-wage-bot/internal/delivery/telegram/middleware"
	"shift-wage-bot/internal/delivery/telegram/router"
	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/report"
)

const requestTimeout = 15 * time.Second

// RegisterSalary — итоги месяца и выбор другого месяца.
func RegisterSalary(r *router.CallbackRouter, wages domain.WageService, loc *time.Location) {
	r.Register("salary_other_month", func(c telebot.Context, _ string) error {
		now := time.Now().In(loc)
		title, markup := keyboards.BuildMonthKeyboard(now.Year(), "pick_month", now)
		return middleware.EditOrSend(c, title, markup)
	})

	// payload: "<action>:<year>", action — ключ, которому уйдёт выбранный месяц
	flip := func(step int) router.HandlerFunc {
		return func(c telebot.Context, payload string) error {
			action, yearStr, ok := strings.Cut(payload, ":")
			y, err := strconv.Atoi(yearStr)
			if !ok || err != nil {
				return nil
			}
			title, markup := keyboards.BuildMonthKeyboard(y+step, action, time.Now().In(loc))
			return middleware.EditOrSend(c, title, markup)
		}
	}
	r.Register("month_prev", flip(-1))
	r.Register("month_next", flip(1))

	r.Register("pick_month", func(c telebot.Context, payload string) error {
		y, m, err := keyboards.ParseMonth(payload)
		if err != nil {
			return nil
		}
		return SendSummary(c, wages, y, m)
	})
}

// SendSummary отправляет итоги за месяц.
func SendSummary(c telebot.Context, wages domain.WageService, year int, month time.Month) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	summary, err := wages.MonthlySummary(ctx, c.Sender().ID, year, month)
	if err != nil {
		return middleware.EditOrSend(c, ErrorText("Ошибка при расчёте зарплаты", err))
	}
	return middleware.EditOrSend(c, report.FormatSummary(summary), keyboards.SalaryMonth())
}
