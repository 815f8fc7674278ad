// арифметика постраничного вывода: количество страниц, окно видимых номеров, проверка перехода
package paginator

import (
	"errors"
	"fmt"
)

var (
	// неположительный размер страницы или окна
	ErrInvalidConfig = errors.New("invalid pagination config")
	// номер страницы вне [1, totalPages]
	ErrOutOfRange = errors.New("page out of range")
)

// значения по умолчанию
const (
	DefaultItemsPerPage    = 10
	DefaultMaxPagesVisible = 5
)

// TotalPages = ceil(totalItems / itemsPerPage), 0 для пустого набора
func TotalPages(totalItems, itemsPerPage int) (int, error) {
	if itemsPerPage <= 0 {
		return 0, fmt.Errorf("%w: itemsPerPage must be positive, got %d", ErrInvalidConfig, itemsPerPage)
	}
	if totalItems < 0 {
		return 0, fmt.Errorf("%w: totalItems must be non-negative, got %d", ErrInvalidConfig, totalItems)
	}
	return (totalItems + itemsPerPage - 1) / itemsPerPage, nil
}

// VisibleWindow - непрерывный диапазон номеров страниц вокруг текущей.
// Длина окна всегда min(maxVisible, totalPages)
func VisibleWindow(totalPages, currentPage, maxVisible int) ([]int, error) {
	if maxVisible <= 0 {
		return nil, fmt.Errorf("%w: maxVisible must be positive, got %d", ErrInvalidConfig, maxVisible)
	}
	if totalPages < 0 {
		return nil, fmt.Errorf("%w: totalPages must be non-negative, got %d", ErrInvalidConfig, totalPages)
	}
	if totalPages == 0 {
		return []int{}, nil
	}
	if currentPage < 1 || currentPage > totalPages {
		return nil, fmt.Errorf("%w: page %d, total %d", ErrOutOfRange, currentPage, totalPages)
	}

	if totalPages <= maxVisible {
		return pageRange(1, totalPages), nil
	}

	half := maxVisible / 2
	switch {
	case currentPage <= half:
		return pageRange(1, maxVisible), nil
	case currentPage+half >= totalPages:
		return pageRange(totalPages-maxVisible+1, totalPages), nil
	default:
		// для чётного maxVisible слева от текущей на одну страницу больше, длина сохраняется
		start := currentPage - half
		return pageRange(start, start+maxVisible-1), nil
	}
}

// GoToPage проверяет запрошенный переход; значение не подрезается к границам
func GoToPage(requestedPage, totalPages int) (int, error) {
	if requestedPage < 1 || requestedPage > totalPages {
		return 0, fmt.Errorf("%w: page %d, total %d", ErrOutOfRange, requestedPage, totalPages)
	}
	return requestedPage, nil
}

// ValidPage - допустим ли номер страницы для набора из totalPages страниц.
// Пустой набор имеет единственную допустимую страницу 1
func ValidPage(page, totalPages int) bool {
	return page >= 1 && page <= max(1, totalPages)
}

// PageBounds - границы среза [start, end) для страницы page
func PageBounds(page, itemsPerPage, totalItems int) (start, end int) {
	start = (page - 1) * itemsPerPage
	if start > totalItems {
		start = totalItems
	}
	end = min(start+itemsPerPage, totalItems)
	return start, end
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}
