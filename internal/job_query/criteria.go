package job_query

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"job_listing/internal/domain/models"
)

// ErrInvalidCriteria - значение фильтра вне допустимого набора
var ErrInvalidCriteria = errors.New("invalid filter criteria")

// синонимы ключей фильтров (старое имя salary -> salaryRange)
var keyAliases = map[string]string{
	"salary": models.FilterKeySalaryRange,
}

// CriteriaError - ошибка конкретного фильтра
type CriteriaError struct {
	Key   string
	Value string
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("invalid value %q for filter %q", e.Value, e.Key)
}

func (e *CriteriaError) Unwrap() error {
	return ErrInvalidCriteria
}

// ParseCriteria собирает FilterCriteria из пар ключ-значение.
// Неизвестные ключи игнорируются, пустые значения означают отсутствие фильтра.
// Синоним учитывается, только если основной ключ не задан
func ParseCriteria(params map[string]string) (models.FilterCriteria, error) {
	var c models.FilterCriteria

	for rawKey, rawValue := range params {
		key := rawKey
		if canonical, ok := keyAliases[rawKey]; ok {
			if strings.TrimSpace(params[canonical]) != "" {
				continue
			}
			key = canonical
		}
		value := strings.TrimSpace(rawValue)
		if value == "" {
			continue
		}

		switch key {
		case models.FilterKeyQuery:
			c.Query = value
		case models.FilterKeyJobType:
			c.JobType = models.JobType(strings.ToUpper(value))
		case models.FilterKeySalaryRange:
			c.SalaryRange = models.SalaryRange(value)
		case models.FilterKeyLocation:
			c.Location = NormalizeLocationCode(value)
		case models.FilterKeyExperience:
			c.Experience = models.ExperienceRange(value)
		case models.FilterKeyDate:
			c.Date = models.DatePosted(strings.ToLower(value))
		}
	}

	if err := Validate(c); err != nil {
		return models.FilterCriteria{}, err
	}
	return c, nil
}

// Validate проверяет, что все заданные значения входят в допустимые наборы
func Validate(c models.FilterCriteria) error {
	if c.JobType != "" && !slices.Contains(models.JobTypes, c.JobType) {
		return &CriteriaError{Key: models.FilterKeyJobType, Value: string(c.JobType)}
	}
	if c.SalaryRange != "" && !slices.Contains(models.SalaryRanges, c.SalaryRange) {
		return &CriteriaError{Key: models.FilterKeySalaryRange, Value: string(c.SalaryRange)}
	}
	if c.Location != "" && !slices.Contains(models.LocationCodes, NormalizeLocationCode(string(c.Location))) {
		return &CriteriaError{Key: models.FilterKeyLocation, Value: string(c.Location)}
	}
	if c.Experience != "" && !slices.Contains(models.ExperienceRanges, c.Experience) {
		return &CriteriaError{Key: models.FilterKeyExperience, Value: string(c.Experience)}
	}
	if c.Date != "" && !slices.Contains(models.DatePostedValues, c.Date) {
		return &CriteriaError{Key: models.FilterKeyDate, Value: string(c.Date)}
	}
	return nil
}

// CanonicalKey - стабильное строковое представление фильтров (для ключей кэша)
func CanonicalKey(c models.FilterCriteria) string {
	return strings.Join([]string{
		models.FilterKeyQuery + "=" + strings.ToLower(strings.TrimSpace(c.Query)),
		models.FilterKeyJobType + "=" + string(c.JobType),
		models.FilterKeySalaryRange + "=" + string(c.SalaryRange),
		models.FilterKeyLocation + "=" + string(NormalizeLocationCode(string(c.Location))),
		models.FilterKeyExperience + "=" + string(c.Experience),
		models.FilterKeyDate + "=" + string(c.Date),
	}, "&")
}
