package validator

import (
	"testing"

	domainerrors "votegate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otpRequest struct {
	Phone   string `json:"phone" validate:"required,phone"`
	Code    string `json:"code" validate:"required,otpcode"`
	Purpose string `json:"purpose" validate:"omitempty,otppurpose"`
}

func TestValidate(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		req    otpRequest
		fields []FieldError
	}{
		{name: "valid", req: otpRequest{Phone: "+237 600-000-000", Code: "123456", Purpose: "login"}},
		{name: "purpose optional", req: otpRequest{Phone: "+237600000000", Code: "1234"}},
		{name: "missing plus", req: otpRequest{Phone: "237600000000", Code: "123456"}, fields: []FieldError{{Field: "phone", Rule: "phone"}}},
		{name: "letters in code", req: otpRequest{Phone: "+237600000000", Code: "12a456"}, fields: []FieldError{{Field: "code", Rule: "otpcode"}}},
		{name: "unknown purpose", req: otpRequest{Phone: "+237600000000", Code: "123456", Purpose: "reset"}, fields: []FieldError{{Field: "purpose", Rule: "otppurpose"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.fields == nil {
				assert.NoError(t, err)

				return
			}

			require.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.fields, appErr.Details())
		})
	}
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() { MustNew() })
}
