package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// page_size -> Page Size
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func invalidInput(format string, args ...any) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// MapValidationError turns the first validator failure into an
// INVALID_INPUT error naming the field and, for bounds, the violated limit.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(
			CodeInvalidInput,
			"Invalid input",
			http.StatusBadRequest,
		)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required", "notblank":
		return RequiredField(field)
	case "min", "gte":
		return invalidInput("%s must be at least %s", field, e.Param())
	case "max", "lte":
		return invalidInput("%s must be at most %s", field, e.Param())
	case "gt":
		return invalidInput("%s must be greater than %s", field, e.Param())
	case "oneof":
		return invalidInput("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return InvalidField(field)
	}
}
