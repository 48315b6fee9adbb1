package exceptions

import (
	"errors"
	"testing"

	"pawcare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Month int    `validate:"gte=1,lte=12"`
	Kind  string `validate:"oneof=walk run swim"`
}

func TestFormatValidationErrors(t *testing.T) {
	validate := validator.New()

	t.Run("First Error Only", func(t *testing.T) {
		err := validate.Struct(sampleRequest{Month: 3, Kind: "walk"})

		assert.Equal(t, "name is required", FormatFirstValidationError(err))
	})

	t.Run("All Errors Joined", func(t *testing.T) {
		err := validate.Struct(sampleRequest{Month: 13, Kind: "fly"})

		assert.Equal(t, "name is required, month must be less than or equal to 12, kind must be one of [walk, run, swim]", FormatAllValidationErrors(err))
	})

	t.Run("Nil Error Falls Back To Generic Message", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatAllValidationErrors(nil))
	})

	t.Run("Non Validator Error Falls Back To Generic Message", func(t *testing.T) {
		err := errors.New("broken pipe")

		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(err))
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatAllValidationErrors(err))
	})
}
