package flows

import (
	"context"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/internal/app/service"
	"shift-wage-bot/internal/delivery/telegram/middleware"
	"shift-wage-bot/internal/delivery/telegram/router"
	"shift-wage-bot/pkg/logger"
)

func RegisterPayout(r *router.CallbackRouter, shifts *service.ShiftServiceImpl) {
	r.Register("payout_all", func(c telebot.Context, _ string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := shifts.MarkAllPaid(ctx, c.Sender().ID); err != nil {
			return middleware.EditOrSend(c, ErrorText("Ошибка при выплате", err))
		}
		logger.WithField("employee_id", c.Sender().ID).Info("all shifts marked paid")
		return middleware.EditOrSend(c, "Все смены отмечены как выплаченные.")
	})
}
