// Package validation registers custom validator tags used by request DTOs.
package validation

import (
	"fmt"

	"skillswap/pkg/timeutil"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ClockTag validates "HH:MM" wall-clock strings.
const ClockTag = "hhmm"

// Register installs the custom tags on v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(ClockTag, validateClock); err != nil {
		return fmt.Errorf("register %s: %w", ClockTag, err)
	}
	return nil
}

// RegisterGin installs the custom tags on gin's default binding validator.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func validateClock(fl validator.FieldLevel) bool {
	return timeutil.IsClock(fl.Field().String())
}
