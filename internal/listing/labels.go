package listing

import (
	"job_listing/internal/domain/models"
)

// ActiveFilter - заданный фильтр с подписями для отображения
type ActiveFilter struct {
	Key        string
	Value      string
	KeyLabel   string
	ValueLabel string
}

// FilterOption - допустимое значение фильтра и его подпись
type FilterOption struct {
	Value string
	Label string
}

// FilterGroup - фильтр и все его значения (для построения панели фильтров)
type FilterGroup struct {
	Key     string
	Label   string
	Options []FilterOption
}

var keyLabels = map[string]string{
	models.FilterKeyQuery:       "Búsqueda",
	models.FilterKeyJobType:     "Tipo de trabajo",
	models.FilterKeySalaryRange: "Salario",
	models.FilterKeyLocation:    "Ubicación",
	models.FilterKeyExperience:  "Experiencia",
	models.FilterKeyDate:        "Fecha",
}

var valueLabels = map[string]map[string]string{
	models.FilterKeyJobType: {
		string(models.JobTypeFullTime):  "Tiempo completo",
		string(models.JobTypePartTime):  "Medio tiempo",
		string(models.JobTypeContract):  "Contrato",
		string(models.JobTypeTemporary): "Temporal",
	},
	models.FilterKeySalaryRange: {
		string(models.Salary0To1000):    "0 - 1,000",
		string(models.Salary1001To2000): "1,001 - 2,000",
		string(models.Salary2001To3000): "2,001 - 3,000",
		string(models.Salary3001Plus):   "3,001+",
	},
	models.FilterKeyLocation: {
		string(models.LocationIca):     "Ica",
		string(models.LocationChincha): "Chincha",
		string(models.LocationPisco):   "Pisco",
	},
	models.FilterKeyExperience: {
		string(models.Experience0To1):  "0 - 1 año",
		string(models.Experience1To3):  "1 - 3 años",
		string(models.Experience3To5):  "3 - 5 años",
		string(models.Experience5Plus): "5+ años",
	},
	models.FilterKeyDate: {
		string(models.DatePostedToday): "Hoy",
		string(models.DatePostedWeek):  "Última semana",
		string(models.DatePostedMonth): "Último mes",
	},
}

// подпись ключа фильтра; неизвестный ключ возвращается как есть
func KeyLabel(key string) string {
	if label, ok := keyLabels[key]; ok {
		return label
	}
	return key
}

// подпись значения фильтра; неизвестное значение возвращается как есть
func ValueLabel(key, value string) string {
	if label, ok := valueLabels[key][value]; ok {
		return label
	}
	return value
}

// пары ключ-значение фильтров в фиксированном порядке
func criteriaPairs(c models.FilterCriteria) [][2]string {
	return [][2]string{
		{models.FilterKeyQuery, c.Query},
		{models.FilterKeyJobType, string(c.JobType)},
		{models.FilterKeySalaryRange, string(c.SalaryRange)},
		{models.FilterKeyLocation, string(c.Location)},
		{models.FilterKeyExperience, string(c.Experience)},
		{models.FilterKeyDate, string(c.Date)},
	}
}

// ActiveFilters - заданные фильтры в порядке панели фильтров
func ActiveFilters(c models.FilterCriteria) []ActiveFilter {
	active := make([]ActiveFilter, 0, 6)
	for _, kv := range criteriaPairs(c) {
		if kv[1] == "" {
			continue
		}
		active = append(active, ActiveFilter{
			Key:        kv[0],
			Value:      kv[1],
			KeyLabel:   KeyLabel(kv[0]),
			ValueLabel: ValueLabel(kv[0], kv[1]),
		})
	}
	return active
}

// FilterCatalog - все фильтры с допустимыми значениями
func FilterCatalog() []FilterGroup {
	groups := []FilterGroup{
		{Key: models.FilterKeyJobType, Options: options(models.FilterKeyJobType, models.JobTypes)},
		{Key: models.FilterKeySalaryRange, Options: options(models.FilterKeySalaryRange, models.SalaryRanges)},
		{Key: models.FilterKeyLocation, Options: options(models.FilterKeyLocation, models.LocationCodes)},
		{Key: models.FilterKeyExperience, Options: options(models.FilterKeyExperience, models.ExperienceRanges)},
		{Key: models.FilterKeyDate, Options: options(models.FilterKeyDate, models.DatePostedValues)},
	}
	for i := range groups {
		groups[i].Label = KeyLabel(groups[i].Key)
	}
	return groups
}

func options[T ~string](key string, values []T) []FilterOption {
	out := make([]FilterOption, 0, len(values))
	for _, v := range values {
		out = append(out, FilterOption{Value: string(v), Label: ValueLabel(key, string(v))})
	}
	return out
}
