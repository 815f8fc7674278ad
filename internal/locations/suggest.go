// подсказки локаций по началу названия
package locations

import (
	"sort"
	"strings"

	"job_listing/internal/domain/models"
	"job_listing/internal/job_query"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// минимальная длина строки, с которой имеет смысл показывать подсказки
const MinPrefixLength = 3

// DefaultLimit - количество подсказок по умолчанию
const DefaultLimit = 10

var idReplacer = strings.NewReplacer(", ", "-", ",", "-", " ", "-")

// нормализация для сравнения: без диакритики и регистра
func normalize(s string) string {
	return strings.ToLower(job_query.StripAccents(strings.TrimSpace(s)))
}

// Suggest - локации, подходящие под prefix.
// Совпадения по началу названия (или части адреса после запятой) идут в порядке справочника;
// если таких нет - нечёткие совпадения по возрастанию расстояния. Без повторов по id
func Suggest(catalog []models.Location, prefix string, limit int) []models.Location {
	needle := normalize(prefix)
	if needle == "" || limit <= 0 {
		return []models.Location{}
	}
	result := make([]models.Location, 0, limit)

	seen := make(map[string]struct{}, len(catalog))
	add := func(loc models.Location) bool {
		if _, ok := seen[loc.ID]; ok {
			return true
		}
		seen[loc.ID] = struct{}{}
		result = append(result, loc)
		return len(result) < limit
	}

	names := make([]string, len(catalog))
	for i, loc := range catalog {
		names[i] = normalize(loc.Name)
	}

	for i, loc := range catalog {
		if strings.HasPrefix(names[i], needle) || strings.Contains(names[i], ", "+needle) {
			if !add(loc) {
				return result
			}
		}
	}

	// нечёткий поиск нужен только для опечаток, когда точных совпадений нет
	if len(result) > 0 {
		return result
	}

	ranks := fuzzy.RankFindNormalizedFold(needle, names)
	sort.Stable(ranks)
	for _, r := range ranks {
		if !add(catalog[r.OriginalIndex]) {
			return result
		}
	}

	return result
}

// FromJobs - справочник локаций, собранный из адресов компаний.
// id - нормализованный адрес, name - адрес как в вакансии
func FromJobs(jobs []models.JobRecord) []models.Location {
	out := make([]models.Location, 0)
	seen := make(map[string]struct{})
	for _, job := range jobs {
		name := strings.TrimSpace(job.Company.Location)
		if name == "" {
			continue
		}
		id := idReplacer.Replace(normalize(name))
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, models.Location{ID: id, Name: name})
	}
	return out
}

// Merge объединяет справочники, сохраняя порядок и первую запись для каждого id
func Merge(lists ...[]models.Location) []models.Location {
	out := make([]models.Location, 0)
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, loc := range list {
			if _, ok := seen[loc.ID]; ok {
				continue
			}
			seen[loc.ID] = struct{}{}
			out = append(out, loc)
		}
	}
	return out
}
