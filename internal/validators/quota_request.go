package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/galaxy-admin/models"
)

// Field names accepted by [QuotaRequestValidator].
const (
	FieldEmail   = "Email"
	FieldAmount  = "Amount"
	FieldExpires = "Expires"
)

// amountTag is the struct tag rule for Galaxy quota amounts.
const amountTag = "galaxy_amount"

// amountPattern matches the amounts the Galaxy quota API parses, such as
// "500G", "1.5TB", "10000MB" or "unlimited". The unit follows the number
// without a space, since request file lines are split on whitespace.
var amountPattern = regexp.MustCompile(`(?i)^(unlimited|\d+(\.\d+)?([kmgtpe]i?b?|b|bytes?)?)$`)

var quotaRequestFields = []string{FieldEmail, FieldAmount, FieldExpires}

type QuotaRequestValidator struct {
	validate *validator.Validate
}

func NewQuotaRequestValidator() Validator {
	v := validator.New()
	// the tag name is constant and the func non-nil, registration cannot fail
	_ = v.RegisterValidation(amountTag, func(fl validator.FieldLevel) bool {
		return amountPattern.MatchString(fl.Field().String())
	})
	return &QuotaRequestValidator{validate: v}
}

func (v *QuotaRequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QuotaRequest:
		return v.validateQuotaRequest(value, fields...)
	case *models.QuotaRequest:
		return v.validateQuotaRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *QuotaRequestValidator) validateQuotaRequest(req models.QuotaRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = quotaRequestFields
	}
	for _, f := range fields {
		if !slices.Contains(quotaRequestFields, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	tagged := slices.DeleteFunc(slices.Clone(fields), func(f string) bool { return f == FieldExpires })
	if len(tagged) > 0 {
		if err := v.validate.StructPartial(req, tagged...); err != nil {
			return mapFieldError(err)
		}
	}

	if slices.Contains(fields, FieldExpires) && req.Expires.IsZero() {
		return ErrNoExpiryDate
	}
	return nil
}

// mapFieldError turns the first failed rule into a package error.
func mapFieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch {
	case fe.Field() == FieldEmail:
		return fmt.Errorf("%w: %q", ErrInvalidEmail, fe.Value())
	case fe.Field() == FieldAmount && fe.Tag() == "required":
		return ErrEmptyAmount
	case fe.Field() == FieldAmount:
		return fmt.Errorf("%w: %q", ErrInvalidAmount, fe.Value())
	}
	return err
}
