package listing

import (
	"context"
	"fmt"
	"sync"

	"job_listing/internal/domain/models"
	"job_listing/internal/paginator"
)

// Querier - получение отфильтрованного набора вакансий
type Querier interface {
	Query(ctx context.Context, criteria models.FilterCriteria) ([]models.JobRecord, error)
}

// Session - состояние списка вакансий у одного клиента: текущие фильтры и текущая страница.
// Любое изменение фильтров возвращает на первую страницу
type Session struct {
	mu         sync.Mutex
	querier    Querier
	perPage    int
	maxVisible int
	criteria   models.FilterCriteria
	page       int
}

// конструктор сессии; размеры страницы и окна проверяются сразу
func NewSession(querier Querier, perPage, maxVisible int) (*Session, error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("%w: itemsPerPage must be positive, got %d", paginator.ErrInvalidConfig, perPage)
	}
	if maxVisible <= 0 {
		return nil, fmt.Errorf("%w: maxPagesVisible must be positive, got %d", paginator.ErrInvalidConfig, maxVisible)
	}
	return &Session{
		querier:    querier,
		perPage:    perPage,
		maxVisible: maxVisible,
		page:       1,
	}, nil
}

// Criteria - текущие фильтры
func (s *Session) Criteria() models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// CurrentPage - номер текущей страницы
func (s *Session) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Current - текущая страница выдачи
func (s *Session) Current(ctx context.Context) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(ctx)
}

// ApplyCriteria заменяет фильтры и возвращает первую страницу
func (s *Session) ApplyCriteria(ctx context.Context, criteria models.FilterCriteria) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = criteria
	s.page = 1
	return s.render(ctx)
}

// SetQuery меняет только строку поиска
func (s *Session) SetQuery(ctx context.Context, query string) (Page, error) {
	c := s.Criteria()
	c.Query = query
	return s.ApplyCriteria(ctx, c)
}

// RemoveFilter снимает один фильтр по ключу
func (s *Session) RemoveFilter(ctx context.Context, key string) (Page, error) {
	c := s.Criteria()
	switch key {
	case models.FilterKeyQuery:
		c.Query = ""
	case models.FilterKeyJobType:
		c.JobType = ""
	case models.FilterKeySalaryRange, "salary":
		c.SalaryRange = ""
	case models.FilterKeyLocation:
		c.Location = ""
	case models.FilterKeyExperience:
		c.Experience = ""
	case models.FilterKeyDate:
		c.Date = ""
	}
	return s.ApplyCriteria(ctx, c)
}

// ClearFilters снимает все фильтры, кроме строки поиска
func (s *Session) ClearFilters(ctx context.Context) (Page, error) {
	c := s.Criteria()
	return s.ApplyCriteria(ctx, models.FilterCriteria{Query: c.Query})
}

// GoToPage переходит на страницу; при ошибке состояние не меняется
func (s *Session) GoToPage(ctx context.Context, page int) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered, err := s.querier.Query(ctx, s.criteria)
	if err != nil {
		return Page{}, err
	}

	totalPages, err := paginator.TotalPages(len(filtered), s.perPage)
	if err != nil {
		return Page{}, err
	}

	target, err := paginator.GoToPage(page, totalPages)
	if err != nil {
		return Page{}, err
	}

	s.page = target
	return Paginate(filtered, s.page, s.perPage, s.maxVisible)
}

// Next - следующая страница
func (s *Session) Next(ctx context.Context) (Page, error) {
	return s.GoToPage(ctx, s.CurrentPage()+1)
}

// Prev - предыдущая страница
func (s *Session) Prev(ctx context.Context) (Page, error) {
	return s.GoToPage(ctx, s.CurrentPage()-1)
}

// сборка текущей страницы; вызывается под мьютексом.
// если набор уменьшился и текущей страницы больше нет - возвращаемся на первую
func (s *Session) render(ctx context.Context) (Page, error) {
	filtered, err := s.querier.Query(ctx, s.criteria)
	if err != nil {
		return Page{}, err
	}

	totalPages, err := paginator.TotalPages(len(filtered), s.perPage)
	if err != nil {
		return Page{}, err
	}
	if !paginator.ValidPage(s.page, totalPages) {
		s.page = 1
	}

	return Paginate(filtered, s.page, s.perPage, s.maxVisible)
}
