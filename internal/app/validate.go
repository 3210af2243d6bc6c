package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"ohlcv-tools/internal/saver"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// export_format accepts the formats saver.NewBarSaver knows.
	_ = v.RegisterValidation("export_format", func(fl validator.FieldLevel) bool {
		return slices.Contains(saver.Formats, strings.ToLower(strings.TrimSpace(fl.Field().String())))
	})
	return v
}

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}
