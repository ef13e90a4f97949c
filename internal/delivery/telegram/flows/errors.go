package flows

import (
	"shift-wage-bot/internal/domain"
	"shift-wage-bot/pkg/logger"
)

// ErrorText превращает ошибку в сообщение пользователю. Внутренние ошибки
// пишутся в лог и не показываются.
func ErrorText(prefix string, err error) string {
	switch {
	case domain.IsValidation(err):
		return prefix + ": некорректные данные (" + err.Error() + ")"
	case domain.IsNotFound(err):
		return prefix + ": не найдено"
	}
	logger.WithError(err).Error(prefix)
	return prefix + ". Попробуйте позже."
}
