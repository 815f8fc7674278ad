package converters

import (
	"time"

	"job_listing/internal/domain/models"
	"job_listing/internal/listing"
	"job_listing/internal/listing_server/dto"
)

// конвертация страницы выдачи в DTO; now - часы, по которым считается "hace N horas"
func PageToDTO(page listing.Page, criteria models.FilterCriteria, now time.Time) dto.JobsResponse {
	items := make([]dto.JobResponse, 0, len(page.Items))
	for _, job := range page.Items {
		items = append(items, JobToDTO(job, now))
	}

	active := listing.ActiveFilters(criteria)
	activeDTO := make([]dto.ActiveFilterResponse, 0, len(active))
	for _, f := range active {
		activeDTO = append(activeDTO, dto.ActiveFilterResponse{
			Key:        f.Key,
			Value:      f.Value,
			KeyLabel:   f.KeyLabel,
			ValueLabel: f.ValueLabel,
		})
	}

	return dto.JobsResponse{
		Items:         items,
		Page:          page.State.CurrentPage,
		PerPage:       page.State.ItemsPerPage,
		TotalItems:    page.State.TotalItems,
		TotalPages:    page.TotalPages,
		Layout:        layoutToDTO(page.Layout),
		ActiveFilters: activeDTO,
	}
}

func layoutToDTO(l listing.Layout) dto.LayoutResponse {
	pages := l.Pages
	if pages == nil {
		pages = []int{}
	}
	return dto.LayoutResponse{
		Pages:            pages,
		ShowFirst:        l.ShowFirst,
		LeadingEllipsis:  l.LeadingEllipsis,
		ShowLast:         l.ShowLast,
		TrailingEllipsis: l.TrailingEllipsis,
		HasPrev:          l.HasPrev,
		HasNext:          l.HasNext,
		PrevPage:         l.PrevPage,
		NextPage:         l.NextPage,
		Hidden:           l.Hidden,
		Summary:          l.Summary,
	}
}

// Вспомогательная функция для конвертации одной вакансии
func JobToDTO(job models.JobRecord, now time.Time) dto.JobResponse {
	postedAt := ""
	if !job.PostedAt.IsZero() {
		postedAt = job.PostedAt.Format(time.RFC3339)
	}

	return dto.JobResponse{
		ID:    job.ID.String(),
		Title: job.Title,
		Company: dto.CompanyResponse{
			Name:      job.Company.Name,
			Logo:      job.Company.Logo,
			Initials:  CompanyInitials(job.Company.Name),
			Rating:    job.Company.Rating,
			Employees: job.Company.Employees,
			Location:  job.Company.Location,
			Verified:  job.Company.Verified,
		},
		Salary:       job.Salary,
		SalaryAmount: FormatSalaryAmount(job.Salary),
		ContractType: job.ContractType,
		Schedule:     job.Schedule,
		Duration:     job.Duration,
		Description:  job.Description,
		Requirements: nonNil(job.Requirements),
		Benefits:     nonNil(job.Benefits),
		PostedAt:     postedAt,
		PostedAgo:    TimeAgo(job.PostedAt, now),
		Type:         string(job.Type),
		TypeLabel:    listing.ValueLabel(models.FilterKeyJobType, string(job.Type)),
		LocationCode: job.LocationCode,
		Experience:   job.Experience,
		URL:          job.URL,
	}
}

// конвертация справочника локаций
func LocationsToDTO(locs []models.Location) []dto.LocationResponse {
	out := make([]dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return out
}

// конвертация каталога фильтров
func FilterCatalogToDTO(groups []listing.FilterGroup) []dto.FilterGroupResponse {
	out := make([]dto.FilterGroupResponse, 0, len(groups))
	for _, g := range groups {
		options := make([]dto.FilterOptionResponse, 0, len(g.Options))
		for _, o := range g.Options {
			options = append(options, dto.FilterOptionResponse{Value: o.Value, Label: o.Label})
		}
		out = append(out, dto.FilterGroupResponse{Key: g.Key, Label: g.Label, Options: options})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
