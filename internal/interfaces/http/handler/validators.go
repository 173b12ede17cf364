package handler

import (
	"sync"

	"github.com/cargoflow/backend/internal/domain/finance"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the domain-aware binding validations on gin's
// shared validator engine. Call once before serving requests.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("chargekind", func(fl validator.FieldLevel) bool {
			return finance.ChargeKind(fl.Field().String()).IsValid()
		})
	})
}
