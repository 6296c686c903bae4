package validation

import (
	"reflect"
	"strings"

	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const CodeValidationFailed = "Validation.Failed"

// Init registers the json tag as the reported field name on gin's built-in
// validator, so binding errors speak the wire vocabulary.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

var titleCaser = cases.Title(language.English)

func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapBindingError converts a gin binding error into the ordered error list
// the outcome contract expects.
func MapBindingError(err error) []result.Error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []result.Error{result.NewError(CodeValidationFailed, "The request body is invalid.")}
	}

	errs := make([]result.Error, 0, len(verrs))
	for _, e := range verrs {
		field := formatFieldName(e.Field())
		var description string
		switch e.Tag() {
		case "required":
			description = field + " is required."
		case "email":
			description = field + " must be a valid email address."
		case "min":
			description = field + " is too short."
		case "max":
			description = field + " is too long."
		case "gt":
			description = field + " must be greater than " + e.Param() + "."
		default:
			description = field + " is invalid."
		}
		errs = append(errs, result.NewError(CodeValidationFailed, description))
	}
	return errs
}
