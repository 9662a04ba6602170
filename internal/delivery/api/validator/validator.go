// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"votegate/internal/domain/entity"
	domainerrors "votegate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// New registers the votegate tags:
//   - phone: E.164 after stripping spaces and dashes
//   - otpcode: 4 to 8 digits
//   - otppurpose: registration or login
func New() (*CustomValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return nil, errors.Wrap(err, "register phone validation")
	}
	err := v.RegisterValidation("otppurpose", func(fl validator.FieldLevel) bool {
		return entity.OTPPurpose(fl.Field().String()).IsValid()
	})
	if err != nil {
		return nil, errors.Wrap(err, "register otppurpose validation")
	}
	v.RegisterAlias("otpcode", "numeric,min=4,max=8")

	return &CustomValidator{validate: v}, nil
}

// MustNew is New for callers that cannot recover from a broken tag table.
func MustNew() *CustomValidator {
	cv, err := New()
	if err != nil {
		panic(err)
	}

	return cv
}

// Validate returns ErrValidationFailed with per-field details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	details := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}

	return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(details), err.Error())
}

var phoneReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

var e164 = validator.New()

func validatePhone(fl validator.FieldLevel) bool {
	return e164.Var(phoneReplacer.Replace(fl.Field().String()), "e164") == nil
}
