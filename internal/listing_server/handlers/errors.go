package handlers

import (
	"errors"
	"net/http"

	"job_listing/internal/job_query"
	"job_listing/internal/job_source"
	"job_listing/internal/paginator"
	"job_listing/shared/circuitbreaker"
)

type APIError struct {
	Code    string `json:"code"`    // для фронтенда: "PAGE_OUT_OF_RANGE"
	Message string `json:"message"` // для пользователя
	Field   string `json:"field,omitempty"`
}

// функция - маппер для формирования нужного результата в зависимости от типа ошибки
func ToAPIError(err error) (int, APIError) {
	var criteriaErr *job_query.CriteriaError

	switch {
	case errors.As(err, &criteriaErr):
		return http.StatusBadRequest, APIError{
			Code:    "INVALID_FILTER",
			Message: "Valor de filtro no válido: " + criteriaErr.Value,
			Field:   criteriaErr.Key,
		}
	case errors.Is(err, job_query.ErrInvalidCriteria):
		return http.StatusBadRequest, APIError{
			Code:    "INVALID_FILTER",
			Message: "Valor de filtro no válido",
		}
	case errors.Is(err, paginator.ErrOutOfRange):
		return http.StatusBadRequest, APIError{
			Code:    "PAGE_OUT_OF_RANGE",
			Message: "La página solicitada no existe",
			Field:   "page",
		}
	case errors.Is(err, paginator.ErrInvalidConfig):
		return http.StatusBadRequest, APIError{
			Code:    "INVALID_PAGINATION",
			Message: "Parámetros de paginación no válidos",
			Field:   "per_page",
		}
	case errors.Is(err, job_source.ErrJobNotFound):
		return http.StatusNotFound, APIError{
			Code:    "JOB_NOT_FOUND",
			Message: "El empleo no existe",
		}
	case errors.Is(err, job_source.ErrSourceUnavailable),
		errors.Is(err, circuitbreaker.ErrCircuitOpen),
		errors.Is(err, circuitbreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, APIError{
			Code:    "SOURCE_UNAVAILABLE",
			Message: "El servicio de empleos no está disponible, inténtelo más tarde",
		}
	default:
		return http.StatusInternalServerError, APIError{
			Code:    "INTERNAL_ERROR",
			Message: "Something went wrong",
		}
	}
}
