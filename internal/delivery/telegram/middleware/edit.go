package middleware

import (
	"strings"

	"gopkg.in/telebot.v3"
)

// EditOrSend редактирует сообщение с кнопкой, а если это невозможно
// (например, команда пришла текстом), отправляет новое.
// Ошибку "message is not modified" считает успехом.
func EditOrSend(c telebot.Context, text string, opts ...any) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	err := c.Edit(text, opts...)
	if err == nil || IsNotModified(err) {
		return nil
	}
	return c.Send(text, opts...)
}

func IsNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not modified")
}
