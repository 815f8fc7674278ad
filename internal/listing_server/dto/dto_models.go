package dto

import (
	"strings"

	"job_listing/internal/domain/models"
)

// JobsQuery - query-параметры GET /jobs
type JobsQuery struct {
	Query       string `form:"query" validate:"max=100"`
	JobType     string `form:"jobType" validate:"max=32"`
	SalaryRange string `form:"salaryRange" validate:"max=32"`
	Salary      string `form:"salary" validate:"max=32"` // старое имя salaryRange
	Location    string `form:"location" validate:"max=64"`
	Experience  string `form:"experience" validate:"max=32"`
	Date        string `form:"date" validate:"max=32"`
	Page        int    `form:"page,default=1"` // вне диапазона -> PAGE_OUT_OF_RANGE
	PerPage     int    `form:"per_page"`       // 0 -> значение из конфига; границы проверяет сервис по ListingConfig.MaxPerPage
}

// ApplyDefaults приводит синонимы и пробелы до валидации
func (q *JobsQuery) ApplyDefaults() {
	q.Query = strings.TrimSpace(q.Query)
	if strings.TrimSpace(q.SalaryRange) == "" {
		q.SalaryRange = q.Salary
	}
	q.Salary = ""
}

// Params - фильтры в виде пар ключ-значение (как их принимает разбор критериев)
func (q *JobsQuery) Params() map[string]string {
	return map[string]string{
		models.FilterKeyQuery:       q.Query,
		models.FilterKeyJobType:     q.JobType,
		models.FilterKeySalaryRange: q.SalaryRange,
		models.FilterKeyLocation:    q.Location,
		models.FilterKeyExperience:  q.Experience,
		models.FilterKeyDate:        q.Date,
	}
}

// LocationsQuery - query-параметры GET /locations
type LocationsQuery struct {
	Q     string `form:"q" validate:"max=64"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=50"`
}

func (q *LocationsQuery) ApplyDefaults() {
	q.Q = strings.TrimSpace(q.Q)
}

// CompanyResponse - работодатель в ответе
type CompanyResponse struct {
	Name      string `json:"name"`
	Logo      string `json:"logo,omitempty"`
	Initials  string `json:"initials"` // замена логотипа, если картинка не загрузилась
	Rating    string `json:"rating,omitempty"`
	Employees string `json:"employees,omitempty"`
	Location  string `json:"location"`
	Verified  bool   `json:"verified"`
}

// JobResponse - DTO вакансии
type JobResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      CompanyResponse `json:"company"`
	Salary       string          `json:"salary"`        // как у источника: "S/ 1.025,00 · Mensual"
	SalaryAmount string          `json:"salary_amount"` // "S/ 1.025,00" или пусто, если не распознана
	ContractType string          `json:"contract_type,omitempty"`
	Schedule     string          `json:"schedule,omitempty"`
	Duration     string          `json:"duration,omitempty"`
	Description  string          `json:"description,omitempty"`
	Requirements []string        `json:"requirements"`
	Benefits     []string        `json:"benefits"`
	PostedAt     string          `json:"posted_at,omitempty"` // RFC3339
	PostedAgo    string          `json:"posted_ago"`          // "hace 3 horas"
	Type         string          `json:"type"`
	TypeLabel    string          `json:"type_label"`
	LocationCode string          `json:"location_code,omitempty"`
	Experience   string          `json:"experience,omitempty"`
	URL          string          `json:"url,omitempty"`
}

// LayoutResponse - навигация по страницам
type LayoutResponse struct {
	Pages            []int  `json:"pages"`
	ShowFirst        bool   `json:"show_first"`
	LeadingEllipsis  bool   `json:"leading_ellipsis"`
	ShowLast         bool   `json:"show_last"`
	TrailingEllipsis bool   `json:"trailing_ellipsis"`
	HasPrev          bool   `json:"has_prev"`
	HasNext          bool   `json:"has_next"`
	PrevPage         int    `json:"prev_page,omitempty"`
	NextPage         int    `json:"next_page,omitempty"`
	Hidden           bool   `json:"hidden"`
	Summary          string `json:"summary"`
}

// ActiveFilterResponse - снятый пользователем фильтр в виде "тега"
type ActiveFilterResponse struct {
	Key        string `json:"key"`
	Value      string `json:"value"`
	KeyLabel   string `json:"key_label"`
	ValueLabel string `json:"value_label"`
}

// JobsResponse - ответ GET /jobs
type JobsResponse struct {
	Items         []JobResponse          `json:"items"`
	Page          int                    `json:"page"`
	PerPage       int                    `json:"per_page"`
	TotalItems    int                    `json:"total_items"`
	TotalPages    int                    `json:"total_pages"`
	Layout        LayoutResponse         `json:"layout"`
	ActiveFilters []ActiveFilterResponse `json:"active_filters"`
}

// LocationResponse - подсказка локации
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FilterOptionResponse - значение фильтра с подписью
type FilterOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterGroupResponse - группа значений одного фильтра
type FilterGroupResponse struct {
	Key     string                 `json:"key"`
	Label   string                 `json:"label"`
	Options []FilterOptionResponse `json:"options"`
}

// UpstreamHealth - состояние внешнего API
type UpstreamHealth struct {
	Healthy   bool   `json:"healthy"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthResponse - ответ GET /health
type HealthResponse struct {
	Status   string          `json:"status"` // ok | degraded
	Source   string          `json:"source"`
	Upstream *UpstreamHealth `json:"upstream,omitempty"`
}
