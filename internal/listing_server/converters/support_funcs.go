package converters

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"job_listing/internal/job_query"

	"github.com/dustin/go-humanize"
)

// формат сумм es-PE: точка - разделитель тысяч, запятая - десятичных
const salaryFormat = "#.###,##"

// FormatSalaryAmount - сумма из строки зарплаты в виде "S/ 1.025,00"; пусто, если сумма не распознана
func FormatSalaryAmount(salary string) string {
	amount, ok := job_query.ParseSalaryAmount(salary)
	if !ok {
		return ""
	}
	return "S/ " + humanize.FormatFloat(salaryFormat, amount)
}

// шкала "сколько времени назад"; после недели показывается дата
var relTimeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "hace un momento", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s %d minuto", DivBy: time.Minute},
	{D: time.Hour, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s %d hora", DivBy: time.Hour},
	{D: humanize.Day, Format: "%s %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s %d día", DivBy: humanize.Day},
	{D: 8 * humanize.Day, Format: "%s %d días", DivBy: humanize.Day},
}

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// TimeAgo - давность публикации по-испански. Публикация "из будущего" - "hace un momento"
func TimeAgo(postedAt, now time.Time) string {
	if postedAt.IsZero() {
		return ""
	}
	if postedAt.After(now) {
		return relTimeMagnitudes[0].Format
	}
	if now.Sub(postedAt) >= 8*humanize.Day {
		return FormatDateES(postedAt)
	}
	return humanize.CustomRelTime(postedAt, now, "hace", "en", relTimeMagnitudes)
}

// FormatDateES - "15 de marzo de 2025"
func FormatDateES(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
}

// CompanyInitials - до двух первых букв слов названия компании, заглавными
func CompanyInitials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}
