package middleware

import (
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"shift-wage-bot/pkg/logger"
)

// Logging пишет в лог каждый апдейт и ошибку обработчика.
func Logging() telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			start := time.Now()
			err := next(c)
			fields := logrus.Fields{
				"update_id":   c.Update().ID,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if u := c.Sender(); u != nil {
				fields["user_id"] = u.ID
			}
			entry := logger.WithFields(fields)
			if err != nil {
				entry.WithError(err).Error("update handling failed")
				return err
			}
			entry.Debug("update handled")
			return nil
		}
	}
}

// Recover не даёт панике в обработчике уронить поллер.
func Recover() telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.WithField("panic", r).Error("handler panicked")
					err = c.Send("Внутренняя ошибка, попробуйте ещё раз.")
				}
			}()
			return next(c)
		}
	}
}
