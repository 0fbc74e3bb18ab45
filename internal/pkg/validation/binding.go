package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Enum is implemented by closed string types such as models.Program
type Enum interface {
	IsValid() bool
}

var registerOnce sync.Once

// RegisterBindingValidators adds the `enum` tag to gin's validator engine and
// reports fields by their JSON names.
// Usage: `binding:"omitempty,enum"` or `binding:"dive,enum"` for slices.
func RegisterBindingValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		err = v.RegisterValidation("enum", validateEnum)
	})
	return err
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func validateEnum(fl validator.FieldLevel) bool {
	if e, ok := fl.Field().Interface().(Enum); ok {
		return e.IsValid()
	}
	return false
}
