// сборка страницы выдачи: срез отфильтрованных вакансий, окно страниц и флаги навигации
package listing

import (
	"fmt"

	"job_listing/internal/domain/models"
	"job_listing/internal/paginator"
)

// Layout - всё, что нужно для отрисовки навигации по страницам
type Layout struct {
	Pages            []int // окно видимых номеров
	ShowFirst        bool  // показать ссылку на первую страницу перед окном
	LeadingEllipsis  bool  // между первой страницей и окном есть пропуск
	ShowLast         bool  // показать ссылку на последнюю страницу после окна
	TrailingEllipsis bool  // между окном и последней страницей есть пропуск
	HasPrev          bool
	HasNext          bool
	PrevPage         int
	NextPage         int
	Hidden           bool // страниц не больше одной - навигация не нужна
	Summary          string
}

// Page - одна страница выдачи
type Page struct {
	Items      []models.JobRecord
	State      models.PaginationState
	TotalPages int
	Layout     Layout
}

// Paginate режет отфильтрованный набор на страницы.
// page должна быть в [1, max(1, totalPages)]
func Paginate(filtered []models.JobRecord, page, itemsPerPage, maxVisible int) (Page, error) {
	totalItems := len(filtered)

	totalPages, err := paginator.TotalPages(totalItems, itemsPerPage)
	if err != nil {
		return Page{}, err
	}
	if maxVisible <= 0 {
		return Page{}, fmt.Errorf("%w: maxPagesVisible must be positive, got %d", paginator.ErrInvalidConfig, maxVisible)
	}
	if !paginator.ValidPage(page, totalPages) {
		return Page{}, fmt.Errorf("%w: page %d, total %d", paginator.ErrOutOfRange, page, totalPages)
	}

	window := []int{}
	if totalPages > 0 {
		window, err = paginator.VisibleWindow(totalPages, page, maxVisible)
		if err != nil {
			return Page{}, err
		}
	}

	start, end := paginator.PageBounds(page, itemsPerPage, totalItems)
	items := make([]models.JobRecord, end-start)
	copy(items, filtered[start:end])

	return Page{
		Items: items,
		State: models.PaginationState{
			CurrentPage:     page,
			ItemsPerPage:    itemsPerPage,
			TotalItems:      totalItems,
			MaxPagesVisible: maxVisible,
		},
		TotalPages: totalPages,
		Layout:     buildLayout(window, page, totalPages),
	}, nil
}

func buildLayout(window []int, page, totalPages int) Layout {
	l := Layout{
		Pages:  window,
		Hidden: totalPages <= 1,
	}

	if totalPages > 0 {
		l.Summary = fmt.Sprintf("Página %d de %d", page, totalPages)
	}

	if len(window) > 0 {
		first, last := window[0], window[len(window)-1]
		l.ShowFirst = first > 1
		l.LeadingEllipsis = first > 2
		l.ShowLast = last < totalPages
		l.TrailingEllipsis = last < totalPages-1
	}

	if page > 1 {
		l.HasPrev = true
		l.PrevPage = page - 1
	}
	if page < totalPages {
		l.HasNext = true
		l.NextPage = page + 1
	}

	return l
}
