// фильтрация и поиск по коллекции вакансий
package job_query

import (
	"strings"
	"time"

	"job_listing/internal/domain/models"
)

const (
	weekWindow  = 7 * 24 * time.Hour
	monthWindow = 30 * 24 * time.Hour
)

// Filter - записи, удовлетворяющие всем заданным фильтрам, в исходном порядке.
// Функция чистая: момент оценки фильтра по дате передаётся явно.
// Результат никогда не nil
func Filter(jobs []models.JobRecord, criteria models.FilterCriteria, now time.Time) []models.JobRecord {
	result := make([]models.JobRecord, 0, len(jobs))
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	for _, job := range jobs {
		if matches(job, criteria, query, now) {
			result = append(result, job)
		}
	}
	return result
}

// Matches - проходит ли одна запись все фильтры
func Matches(job models.JobRecord, criteria models.FilterCriteria, now time.Time) bool {
	return matches(job, criteria, strings.ToLower(strings.TrimSpace(criteria.Query)), now)
}

func matches(job models.JobRecord, c models.FilterCriteria, lowerQuery string, now time.Time) bool {
	if lowerQuery != "" && !matchQuery(job, lowerQuery) {
		return false
	}
	if c.JobType != "" && job.Type != c.JobType {
		return false
	}
	if c.SalaryRange != "" && !matchSalary(job, c.SalaryRange) {
		return false
	}
	if c.Location != "" && RecordLocationCode(job) != NormalizeLocationCode(string(c.Location)) {
		return false
	}
	if c.Experience != "" && !matchExperience(job, c.Experience) {
		return false
	}
	if c.Date != "" && !matchDate(job.PostedAt, c.Date, now) {
		return false
	}
	return true
}

// поиск подстроки без учёта регистра в названии вакансии или названии компании
func matchQuery(job models.JobRecord, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(job.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(job.Company.Name), lowerQuery)
}

func matchSalary(job models.JobRecord, r models.SalaryRange) bool {
	b, ok := salaryBands[r]
	if !ok {
		return false
	}
	amount, ok := ParseSalaryAmount(job.Salary)
	return ok && b.contains(amount)
}

func matchExperience(job models.JobRecord, r models.ExperienceRange) bool {
	b, ok := experienceBands[r]
	if !ok {
		return false
	}
	years, ok := ParseExperienceYears(job.Experience)
	return ok && b.contains(float64(years))
}

// today - тот же календарный день, что и now (в часовом поясе now);
// week/month - опубликовано не раньше чем 7/30 дней назад.
// Публикации из будущего и без даты не проходят
func matchDate(postedAt time.Time, d models.DatePosted, now time.Time) bool {
	if postedAt.IsZero() || postedAt.After(now) {
		return false
	}

	switch d {
	case models.DatePostedToday:
		py, pm, pd := postedAt.In(now.Location()).Date()
		ny, nm, nd := now.Date()
		return py == ny && pm == nm && pd == nd
	case models.DatePostedWeek:
		return now.Sub(postedAt) <= weekWindow
	case models.DatePostedMonth:
		return now.Sub(postedAt) <= monthWindow
	default:
		return false
	}
}
