package keyboards

import "gopkg.in/telebot.v3"

var (
	BtnAddShift = telebot.Btn{Text: "📅 Добавить смену"}
	BtnSalary   = telebot.Btn{Text: "💰 Посмотреть зарплату"}
	BtnPayout   = telebot.Btn{Text: "💸 Выплатить"}
	BtnReport   = telebot.Btn{Text: "📄 Отчёт"}
	BtnSettings = telebot.Btn{Text: "⚙️ Настройки"}
)

func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(BtnAddShift.Text)),
		markup.Row(markup.Text(BtnSalary.Text), markup.Text(BtnPayout.Text)),
		markup.Row(markup.Text(BtnReport.Text), markup.Text(BtnSettings.Text)),
	)
	return markup
}

func ShiftDate() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Сегодня", "addshift_today"),
		markup.Data("Другая дата", "addshift_other"),
	))
	return markup
}

func SalaryMonth() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("Другой месяц", "salary_other_month")))
	return markup
}

func Payout() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("Выплатить всё", "payout_all")))
	return markup
}

func ReportFormat() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("PDF", "report_pdf"),
		markup.Data("Excel", "report_xlsx"),
	))
	return markup
}

// ShiftActions — кнопки под расчётом только что добавленной смены.
func ShiftActions(shiftID string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("🗑 Удалить смену", "del_shift", shiftID)))
	return markup
}
