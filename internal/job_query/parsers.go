package job_query

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"job_listing/internal/domain/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// сумма в формате es-PE: тысячи через точку, копейки (céntimos) через запятую.
// валюта "S/" или "S/." и суффикс периода " · Mensual" необязательны
var salaryPattern = regexp.MustCompile(`^(?:S/\.?\s*)?(\d{1,3}(?:\.\d{3})+|\d+)(?:,(\d{1,2}))?(?:\s*·.*)?$`)

// первое целое число в строке опыта ("3-5 años" -> 3)
var yearsPattern = regexp.MustCompile(`\d+`)

var noExperienceMarkers = []string{"sin experiencia", "no requiere", "sin exp"}

var upperES = cases.Upper(language.Spanish)

// ParseSalaryAmount - сумма зарплаты из строки отображения. false - строку разобрать нельзя
func ParseSalaryAmount(s string) (float64, bool) {
	m := salaryPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	number := strings.ReplaceAll(m[1], ".", "")
	if m[2] != "" {
		number += "." + m[2]
	}

	amount, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// ParseExperienceYears - требуемый опыт в годах. false - строку разобрать нельзя
func ParseExperienceYears(s string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return 0, false
	}

	for _, marker := range noExperienceMarkers {
		if strings.Contains(lower, marker) {
			return 0, true
		}
	}

	digits := yearsPattern.FindString(lower)
	if digits == "" {
		return 0, false
	}

	years, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return years, true
}

// StripAccents убирает диакритику: "Ícá" -> "Ica"
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeLocationCode - код локации: без диакритики, в верхнем регистре
func NormalizeLocationCode(s string) models.LocationCode {
	return models.LocationCode(upperES.String(StripAccents(strings.TrimSpace(s))))
}

// RecordLocationCode - код локации вакансии. Явный код записи приоритетнее,
// иначе берётся последняя часть адреса компании ("Subtanjalla, Ica" -> "ICA")
func RecordLocationCode(job models.JobRecord) models.LocationCode {
	if job.LocationCode != "" {
		return NormalizeLocationCode(job.LocationCode)
	}

	location := job.Company.Location
	if idx := strings.LastIndex(location, ","); idx >= 0 {
		location = location[idx+1:]
	}
	return NormalizeLocationCode(location)
}
