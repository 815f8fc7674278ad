package job_source

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"job_listing/internal/domain/models"
)

// вакансия в формате внешнего API (camelCase, id числом или строкой)
type remoteJob struct {
	ID           models.JobID  `json:"id"`
	Title        string        `json:"title"`
	Company      remoteCompany `json:"company"`
	Salary       string        `json:"salary"`
	ContractType string        `json:"contractType"`
	Schedule     string        `json:"schedule"`
	Duration     string        `json:"duration"`
	Description  string        `json:"description"`
	Requirements []string      `json:"requirements"`
	Benefits     []string      `json:"benefits"`
	PostedAt     time.Time     `json:"postedAt"`
	Type         string        `json:"type"`
	LocationCode string        `json:"locationCode"`
	Experience   string        `json:"experience"`
	URL          string        `json:"url"`
}

type remoteCompany struct {
	Name      string          `json:"name"`
	Logo      string          `json:"logo"`
	Rating    json.RawMessage `json:"rating"`    // 4.3 или "4,3"
	Employees json.RawMessage `json:"employees"` // 500 или "500+"
	Location  string          `json:"location"`
	Verified  bool            `json:"verified"`
}

// список вакансий: либо массив, либо {"jobs": [...]}
type remoteJobList struct {
	Jobs []remoteJob `json:"jobs"`
}

type remoteLocation struct {
	ID   models.JobID `json:"id"` // тот же формат: число или строка
	Name string       `json:"name"`
}

// текстовое значение json-скаляра: строка без кавычек, число как есть
func scalarText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return s
}

// приведение к доменной модели; html в описании сводится к тексту
func (r remoteJob) toDomain() models.JobRecord {
	return models.JobRecord{
		ID:    r.ID,
		Title: strings.TrimSpace(r.Title),
		Company: models.Company{
			Name:      strings.TrimSpace(r.Company.Name),
			Logo:      r.Company.Logo,
			Rating:    scalarText(r.Company.Rating),
			Employees: scalarText(r.Company.Employees),
			Location:  strings.TrimSpace(r.Company.Location),
			Verified:  r.Company.Verified,
		},
		Salary:       r.Salary,
		ContractType: r.ContractType,
		Schedule:     r.Schedule,
		Duration:     r.Duration,
		Description:  htmlToText(r.Description),
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
		PostedAt:     r.PostedAt,
		Type:         models.JobType(strings.ToUpper(strings.TrimSpace(r.Type))),
		LocationCode: r.LocationCode,
		Experience:   r.Experience,
		URL:          r.URL,
	}
}

// разбор ответа со списком вакансий
func decodeJobList(body []byte) ([]models.JobRecord, error) {
	var items []remoteJob
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
	} else {
		var wrapped remoteJobList
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, err
		}
		items = wrapped.Jobs
	}

	jobs := make([]models.JobRecord, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		jobs = append(jobs, item.toDomain())
	}
	return jobs, nil
}
