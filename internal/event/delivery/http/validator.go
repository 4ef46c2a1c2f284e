package http

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cie-dashboard/pkg/calendar"
)

var registerOnce sync.Once

// registerValidators adds the "isodate" and "direction" tags to gin's validator.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("isodate", validateISODate)
		_ = v.RegisterValidation("direction", validateDirection)
	})
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDate(fl.Field().String())
	return err == nil
}

func validateDirection(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDirection(fl.Field().String())
	return err == nil
}
