package telegram

import (
	"strings"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/internal/delivery/telegram/flows"
	"shift-wage-bot/internal/report"
)

func (h *Handler) handleSettings(c telebot.Context) error {
	ctx, cancel := h.ctx()
	defer cancel()
	s, err := h.Settings.GetSettings(ctx, c.Sender().ID)
	if err != nil {
		return c.Send(flows.ErrorText("Ошибка при загрузке настроек", err))
	}
	return c.Send(report.FormatSettings(s) + "\n\nИзменить: /set <ключ> <значение>")
}

func (h *Handler) handleSet(c telebot.Context) error {
	args := c.Args()
	if len(args) != 2 {
		return c.Send("Использование: /set <ключ> <значение>, например /set wage 40.04")
	}
	ctx, cancel := h.ctx()
	defer cancel()
	s, err := h.Settings.Set(ctx, c.Sender().ID, strings.ToLower(args[0]), args[1])
	if err != nil {
		return c.Send(flows.ErrorText("Настройка не сохранена", err))
	}
	return c.Send("Сохранено.\n\n" + report.FormatSettings(s))
}

func (h *Handler) handleRules(c telebot.Context) error {
	ctx, cancel := h.ctx()
	defer cancel()
	rules, err := h.Rules.ListRules(ctx, c.Sender().ID)
	if err != nil {
		return c.Send(flows.ErrorText("Ошибка при загрузке правил", err))
	}
	return c.Send(report.FormatRules(rules))
}

func (h *Handler) handleAddRule(c telebot.Context) error {
	threshold, multiplier, name, err := ParseRuleArgs(c.Args())
	if err != nil {
		return c.Send(err.Error())
	}
	ctx, cancel := h.ctx()
	defer cancel()
	if _, err := h.Rules.AddRule(ctx, c.Sender().ID, name, threshold, multiplier); err != nil {
		return c.Send(flows.ErrorText("Правило не добавлено", err))
	}
	return h.handleRules(c)
}

func (h *Handler) handleDeleteRule(c telebot.Context) error {
	n, err := ParseIndex(c.Args())
	if err != nil {
		return c.Send(err.Error())
	}
	ctx, cancel := h.ctx()
	defer cancel()
	rule, err := h.Rules.RuleAt(ctx, c.Sender().ID, n)
	if err == nil {
		err = h.Rules.DeleteRule(ctx, c.Sender().ID, rule.ID)
	}
	if err != nil {
		return c.Send(flows.ErrorText("Правило не удалено", err))
	}
	return h.handleRules(c)
}

func (h *Handler) handleToggleRule(c telebot.Context) error {
	n, err := ParseIndex(c.Args())
	if err != nil {
		return c.Send(err.Error())
	}
	ctx, cancel := h.ctx()
	defer cancel()
	rule, err := h.Rules.RuleAt(ctx, c.Sender().ID, n)
	if err == nil {
		err = h.Rules.SetActive(ctx, c.Sender().ID, rule.ID, !rule.IsActive)
	}
	if err != nil {
		return c.Send(flows.ErrorText("Правило не изменено", err))
	}
	return h.handleRules(c)
}
