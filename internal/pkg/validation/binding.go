package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/devraj/lecturehall/internal/app/models"
)

// RegisterCustomValidators installs domain rules on gin's binding validator.
// Called once during router setup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("courselevel", func(fl validator.FieldLevel) bool {
		return models.CourseLevel(fl.Field().String()).IsValid()
	})
}
