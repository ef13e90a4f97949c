package telegram

import (
	"context"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/internal/app/service"
	"shift-wage-bot/internal/delivery/telegram/flows"
	"shift-wage-bot/internal/delivery/telegram/keyboards"
	"shift-wage-bot/internal/delivery/telegram/middleware"
	"shift-wage-bot/internal/delivery/telegram/router"
	"shift-wage-bot/internal/domain"
	"shift-wage-bot/pkg/calendar"
	"shift-wage-bot/pkg/logger"
)

const requestTimeout = 15 * time.Second

type Handler struct {
	Bot       *telebot.Bot
	Shifts    *service.ShiftServiceImpl
	Wages     domain.WageService
	Rules     *service.RuleService
	Settings  *service.SettingsService
	Employees *service.EmployeeService
	Async     *service.AsyncService
	Calendar  *calendar.CalendarController
	Location  *time.Location

	pending pendingShifts
}

const helpText = `Добавьте смену кнопкой «📅 Добавить смену» и пришлите время: 09:00-21:00
«!» после времени — особый день, «# текст» — заметка.

/settings — настройки расчёта
/set <ключ> <значение> — изменить настройку (wage, tax, base, basespecial, sunday, weekly, weeklyrate)
/rules — правила переработки
/addrule <порог ч> <множитель> [название]
/delrule <n>, /togglerule <n>
/report pdf|xlsx [ГГГГ-ММ] — отчёт за месяц`

func (h *Handler) loc() *time.Location {
	if h.Location == nil {
		return time.Local
	}
	return h.Location
}

func (h *Handler) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func (h *Handler) Register() {
	h.Bot.Use(middleware.Recover(), middleware.Logging())

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/help", func(c telebot.Context) error { return c.Send(helpText) })
	h.Bot.Handle("/employees", h.handleEmployees)
	h.Bot.Handle("/settings", h.handleSettings)
	h.Bot.Handle("/set", h.handleSet)
	h.Bot.Handle("/rules", h.handleRules)
	h.Bot.Handle("/addrule", h.handleAddRule)
	h.Bot.Handle("/delrule", h.handleDeleteRule)
	h.Bot.Handle("/togglerule", h.handleToggleRule)
	h.Bot.Handle("/report", h.handleReport)

	if h.Calendar != nil {
		h.Calendar.OnDate = h.onDatePicked
		h.Calendar.StartWorkOnSunday = h.startsOnSunday
	}

	r := router.New()
	r.Register("addshift_today", func(c telebot.Context, _ string) error {
		return h.askShiftTime(c, time.Now().In(h.loc()))
	})
	r.Register("addshift_other", func(c telebot.Context, _ string) error {
		if h.Calendar == nil {
			return nil
		}
		return h.Calendar.ShowCalendar(c)
	})
	r.Register("del_shift", h.onDeleteShift)
	r.RegisterPrefix("cal_", func(c telebot.Context, data string) error {
		if h.Calendar == nil {
			return nil
		}
		return h.Calendar.HandleCallback(c, data)
	})
	flows.RegisterSalary(r, h.Wages, h.loc())
	flows.RegisterPayout(r, h.Shifts)
	flows.RegisterReport(r, h.Wages, h.Async, h.loc())
	r.Attach(h.Bot)

	h.Bot.Handle(telebot.OnText, h.handleText)
}

func (h *Handler) handleText(c telebot.Context) error {
	text := strings.TrimSpace(c.Text())
	switch text {
	case keyboards.BtnAddShift.Text:
		return c.Send("Это сегодняшняя смена?", keyboards.ShiftDate())
	case keyboards.BtnSalary.Text:
		h.pending.Clear(c.Chat().ID)
		now := time.Now().In(h.loc())
		return flows.SendSummary(c, h.Wages, now.Year(), now.Month())
	case keyboards.BtnPayout.Text:
		h.pending.Clear(c.Chat().ID)
		return c.Send("Отметить все смены как выплаченные?", keyboards.Payout())
	case keyboards.BtnReport.Text:
		return c.Send("Отчёт за текущий месяц:", keyboards.ReportFormat())
	case keyboards.BtnSettings.Text:
		return h.handleSettings(c)
	}

	if date, ok := h.pending.Get(c.Chat().ID); ok {
		return h.addShift(c, date, text)
	}
	return c.Send(helpText, keyboards.MainMenu())
}

func (h *Handler) handleStart(c telebot.Context) error {
	ctx, cancel := h.ctx()
	defer cancel()
	empID := c.Sender().ID
	if _, err := h.Employees.GetEmployeeByID(ctx, empID); err != nil {
		if !domain.IsNotFound(err) {
			logger.WithError(err).WithField("employee_id", empID).Error("load employee")
		}
		if err := h.Employees.CreateOrUpdateEmployee(ctx, employeeFromContext(c)); err != nil {
			logger.WithError(err).WithField("employee_id", empID).Error("register employee")
		} else {
			logger.WithField("employee_id", empID).Info("employee registered")
		}
	}
	return c.Send("Добро пожаловать! Я считаю зарплату по сменам.\n\n"+helpText, keyboards.MainMenu())
}

func (h *Handler) handleEmployees(c telebot.Context) error {
	ctx, cancel := h.ctx()
	defer cancel()
	employees, err := h.Employees.GetAllEmployees(ctx)
	if err != nil {
		return c.Send(flows.ErrorText("Ошибка при получении сотрудников", err))
	}
	if len(employees) == 0 {
		return c.Send("Сотрудники не найдены.")
	}
	var b strings.Builder
	b.WriteString("Список сотрудников:\n")
	for _, e := range employees {
		b.WriteString(e.Name + " (" + e.Role + ")\n")
	}
	return c.Send(b.String())
}

func (h *Handler) handleReport(c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Отчёт за текущий месяц:", keyboards.ReportFormat())
	}
	format, ok := flows.ParseFormat(strings.ToLower(args[0]))
	if !ok {
		return c.Send("Формат отчёта: pdf или xlsx")
	}
	now := time.Now().In(h.loc())
	year, month := now.Year(), now.Month()
	if len(args) > 1 {
		y, m, err := keyboards.ParseMonth(args[1])
		if err != nil {
			return c.Send("Месяц в формате ГГГГ-ММ, например 2025-01")
		}
		year, month = y, m
	}
	return flows.SendReport(c, h.Wages, h.Async, format, year, month)
}

// employeeFromContext создает Employee из данных Telegram
func employeeFromContext(c telebot.Context) domain.Employee {
	return domain.Employee{
		ID:     c.Sender().ID,
		Name:   strings.TrimSpace(c.Sender().FirstName + " " + c.Sender().LastName),
		ChatID: c.Chat().ID,
		Role:   "employee",
	}
}
