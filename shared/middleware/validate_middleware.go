package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ключ, под которым провалидированный запрос кладётся в контекст gin
const ValidatedQueryKey = "validatedQuery"

// создаём экземпляр валидатора один раз при загрузке пакета
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в ошибках показываем имя query-параметра, а не имя поля структуры
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// form:"page,default=1" -> page
		if name, _, _ := strings.Cut(fld.Tag.Get("form"), ","); name != "" && name != "-" {
			return name
		}
		return fld.Name
	})
	return v
}

// QueryError - тело ошибки разбора запроса, тот же формат {"error": {...}}, что и у хэндлеров
type QueryError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Field   string            `json:"field,omitempty"`   // первый параметр с ошибкой
	Details map[string]string `json:"details,omitempty"` // параметр -> нарушенное правило
}

func abortWithQueryError(c *gin.Context, qe QueryError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": qe})
}

// Defaulter - модель запроса, которая умеет проставлять значения по умолчанию до валидации
type Defaulter interface {
	ApplyDefaults()
}

// ValidateQueryMiddleware создает middleware для разбора и валидации query-параметров
// model - указатель на структуру запроса с тегами form и validate
func ValidateQueryMiddleware(model interface{}) gin.HandlerFunc {
	modelType := reflect.TypeOf(model).Elem()

	return func(c *gin.Context) {
		request := reflect.New(modelType).Interface()

		// разбор без встроенной валидации gin (теги binding не используются)
		if err := c.ShouldBindQuery(request); err != nil {
			abortWithQueryError(c, QueryError{Code: "INVALID_QUERY", Message: "Invalid query parameters"})
			return
		}

		if d, ok := request.(Defaulter); ok {
			d.ApplyDefaults()
		}

		if err := validate.Struct(request); err != nil {
			var validationErrs validator.ValidationErrors
			if !errors.As(err, &validationErrs) {
				abortWithQueryError(c, QueryError{Code: "INVALID_QUERY", Message: err.Error()})
				return
			}

			details := make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				details[fe.Field()] = fe.Tag()
			}

			abortWithQueryError(c, QueryError{
				Code:    "VALIDATION_FAILED",
				Message: "Validation failed",
				Field:   validationErrs[0].Field(),
				Details: details,
			})
			return
		}

		c.Set(ValidatedQueryKey, request)
		c.Next()
	}
}
