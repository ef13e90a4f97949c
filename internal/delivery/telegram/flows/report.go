package flows

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"gopkg.in/telebot.v3"

	"shift-wage-bot/internal/app/service"
	"shift-wage-bot/internal/delivery/telegram/router"
	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/report"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatPDF, FormatXLSX:
		return Format(s), true
	}
	return "", false
}

func RegisterReport(r *router.CallbackRouter, wages domain.WageService, async *service.AsyncService, loc *time.Location) {
	for _, f := range []Format{FormatPDF, FormatXLSX} {
		r.Register("report_"+string(f), func(c telebot.Context, _ string) error {
			now := time.Now().In(loc)
			return SendReport(c, wages, async, f, now.Year(), now.Month())
		})
	}
}

// SendReport строит отчёт за месяц в пуле воркеров и отправляет документом.
func SendReport(c telebot.Context, wages domain.WageService, async *service.AsyncService, format Format, year int, month time.Month) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	summary, err := wages.MonthlySummary(ctx, c.Sender().ID, year, month)
	if err != nil {
		return c.Send(ErrorText("Ошибка при построении отчёта", err))
	}

	v, err := async.SubmitAsync(ctx, func() (any, error) {
		if format == FormatXLSX {
			return report.RenderXLSX(summary)
		}
		return report.RenderPDF(summary)
	})
	if err != nil {
		return c.Send(ErrorText("Ошибка при построении отчёта", err))
	}

	doc := &telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(v.([]byte))),
		FileName: fmt.Sprintf("salary-%04d-%02d.%s", year, int(month), format),
		Caption:  report.FormatSummary(summary),
	}
	if format == FormatXLSX {
		doc.MIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	} else {
		doc.MIME = "application/pdf"
	}
	return c.Send(doc)
}
