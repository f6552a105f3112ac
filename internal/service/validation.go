package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/team-pulse-api/internal/survey"
	appErrors "github.com/noah-isme/team-pulse-api/pkg/errors"
)

// NewValidator returns a validator that reports json field names and knows the survey tags:
// survey_option=<questionId> requires an exact option label, survey_open_field requires an
// open-ended question id.
func NewValidator(schema *survey.Schema) *validator.Validate {
	if schema == nil {
		schema = survey.Default()
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("survey_option", func(fl validator.FieldLevel) bool {
		return schema.IsValidOption(fl.Param(), fl.Field().String())
	})
	_ = v.RegisterValidation("survey_open_field", func(fl validator.FieldLevel) bool {
		q, ok := schema.Question(fl.Field().String())
		return ok && q.Kind == survey.KindOpenEnded
	})
	return v
}

// validationError converts the first validator failure into a VALIDATION_ERROR naming the field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	fe := verrs[0]
	field := fe.Field()
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "survey_option":
		msg = fmt.Sprintf("%s has an unsupported value", field)
	case "survey_open_field":
		msg = fmt.Sprintf("%s is not an open-ended question", field)
	case "gt":
		msg = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s exceeds the maximum of %s", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of %s", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}
	return appErrors.Validation(field, msg)
}
