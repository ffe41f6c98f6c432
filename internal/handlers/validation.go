package handlers

import (
	"fmt"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxPartitionLength = 32

// validatePartition accepts printable labels of at most 32 bytes.
func validatePartition(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	if label == "" || len(label) > maxPartitionLength {
		return false
	}
	for _, r := range label {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// registerValidators adds the custom binding tags used by the DTOs.
func registerValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("partition", validatePartition); err != nil {
		return fmt.Errorf("register partition validator: %w", err)
	}
	return nil
}

// mustRegisterValidators installs the custom tags on gin's validator. A
// failure leaves DTO binding broken, so it stops startup.
func mustRegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("gin binding engine is not go-playground/validator")
	}
	if err := registerValidators(v); err != nil {
		panic(err)
	}
}
