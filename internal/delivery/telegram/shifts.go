package telegram

import (
	"time"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/internal/delivery/telegram/flows"
	"shift-wage-bot/internal/delivery/telegram/keyboards"
	"shift-wage-bot/internal/delivery/telegram/middleware"
	"shift-wage-bot/internal/model"
	"shift-wage-bot/internal/report"
	"shift-wage-bot/pkg/logger"
)

func (h *Handler) askShiftTime(c telebot.Context, date time.Time) error {
	h.pending.Set(c.Chat().ID, date)
	return middleware.EditOrSend(c, "Смена "+date.Format("02.01.2006")+". Пришлите время, например 09:00-21:00")
}

func (h *Handler) onDatePicked(date time.Time, c telebot.Context) error {
	return h.askShiftTime(c, date)
}

func (h *Handler) startsOnSunday(c telebot.Context) bool {
	ctx, cancel := h.ctx()
	defer cancel()
	s, err := h.Settings.GetSettings(ctx, c.Sender().ID)
	if err != nil {
		logger.WithError(err).Warn("load settings for calendar")
		return false
	}
	return s.StartWorkOnSunday
}

func (h *Handler) addShift(c telebot.Context, date time.Time, text string) error {
	in, err := ParseShiftInput(date, text, h.loc())
	if err != nil {
		return c.Send("Не понял время: " + err.Error())
	}

	ctx, cancel := h.ctx()
	defer cancel()
	shift, err := h.Shifts.AddShift(ctx, model.Shift{
		EmployeeID:           c.Sender().ID,
		StartTime:            in.Start,
		EndTime:              in.End,
		IsSpecialDayOverride: in.Override,
		Notes:                in.Notes,
	})
	if err != nil {
		return c.Send(flows.ErrorText("Ошибка при добавлении смены", err))
	}
	h.pending.Clear(c.Chat().ID)
	logger.WithField("employee_id", shift.EmployeeID).WithField("shift_id", shift.ID).Info("shift added")

	calc, err := h.Wages.CalculateShift(ctx, shift.EmployeeID, shift.ID)
	if err != nil {
		return c.Send("Смена добавлена, но расчёт не удался. " + flows.ErrorText("Ошибка", err))
	}
	return c.Send("Смена добавлена!\n\n"+report.FormatCalculation(calc), keyboards.ShiftActions(shift.ID))
}

func (h *Handler) onDeleteShift(c telebot.Context, shiftID string) error {
	ctx, cancel := h.ctx()
	defer cancel()
	if err := h.Shifts.DeleteShift(ctx, c.Sender().ID, shiftID); err != nil {
		return middleware.EditOrSend(c, flows.ErrorText("Ошибка при удалении смены", err))
	}
	return middleware.EditOrSend(c, "Смена удалена.")
}
