package lead

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tcerrors "github.com/alexisbeaulieu97/techconsult/pkg/errors"
)

// Hints shown next to a field that blocks submission.
const (
	HintRequired     = "Please fill out this field."
	HintInvalidEmail = "Please include a valid email address."
	HintSelectOption = "Please select an item in the list."
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
			return ServiceType(fl.Field().String()).Valid()
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the required-field rules and returns a
// *errors.ValidationError for the first failing field in tab order.
func Validate(data FormData) error {
	err := validatorInstance().Struct(data)
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return tcerrors.NewValidationError("", err.Error(), err)
	}

	fe := ves[0]
	return tcerrors.NewValidationError(fe.Field(), hintFor(fe), err)
}

func hintFor(fe validator.FieldError) string {
	if fe.Field() == FieldServiceType.Key() {
		return HintSelectOption
	}
	if fe.Tag() == "email" {
		return HintInvalidEmail
	}
	return HintRequired
}
