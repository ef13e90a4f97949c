package router

import (
	"strings"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/pkg/logger"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter разбирает data инлайн-кнопок вида "\fkey|payload"
// и вызывает обработчик, зарегистрированный на key.
type CallbackRouter struct {
	handlers map[string]HandlerFunc
	prefixes map[string]HandlerFunc
}

func New() *CallbackRouter {
	return &CallbackRouter{
		handlers: make(map[string]HandlerFunc),
		prefixes: make(map[string]HandlerFunc),
	}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

// RegisterPrefix направляет все ключи с префиксом в один обработчик
// (например, "cal_" для календаря). Обработчик получает полный data.
func (r *CallbackRouter) RegisterPrefix(prefix string, h HandlerFunc) {
	r.prefixes[prefix] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		handled, err := r.Dispatch(c)
		if !handled {
			logger.WithField("data", c.Data()).Warn("unhandled callback")
		}
		return err
	})
}

// Dispatch отвечает на callback и вызывает обработчик.
// handled=false, если ключ никому не принадлежит.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	_ = c.Respond()
	h, payload, ok := r.Lookup(c.Data())
	if !ok {
		return false, nil
	}
	return true, h(c, payload)
}

// Lookup находит обработчик для сырых данных callback.
func (r *CallbackRouter) Lookup(raw string) (HandlerFunc, string, bool) {
	key, payload := ParseData(raw)
	logger.Debugf("callback key=%q payload=%q", key, payload)
	if h, ok := r.handlers[key]; ok {
		return h, payload, true
	}
	for prefix, h := range r.prefixes {
		if strings.HasPrefix(key, prefix) {
			return h, key + "|" + payload, true
		}
	}
	return nil, "", false
}

// ParseData отделяет ключ кнопки от payload.
func ParseData(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return raw, ""
}
