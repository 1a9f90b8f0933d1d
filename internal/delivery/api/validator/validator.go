// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"khitma/internal/domain/schedule"
	"khitma/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagIANATimezone accepts empty strings and IANA zone names other than "Local".
const TagIANATimezone = "iana_tz"

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the project's custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation(TagIANATimezone, validateTimezone)

	return &Validator{validate: v}
}

// Validate runs the struct's validate tags and returns a readable summary.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, "field '"+fe.Field()+"' failed '"+fe.Tag()+"'")
	}

	return errors.New(strings.Join(msgs, "; "))
}

func validateTimezone(fl validator.FieldLevel) bool {
	tz := fl.Field().String()
	if tz == "" {
		return true
	}
	_, err := schedule.LoadLocation(tz)

	return err == nil
}
