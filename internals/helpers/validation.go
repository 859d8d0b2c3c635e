// file: internals/helpers/validation.go
package helper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator: singleton validator.v10 (struct tag based).
// Nama field error mengikuti tag json/query, bukan nama field Go,
// supaya peta 422 cocok dengan payload yang dikirim client.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
			}
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct: jalankan validator & balas 422 dengan peta field error.
func ValidateStruct(c *fiber.Ctx, s any) error {
	if err := Validator().Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "Invalid input")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			f := strings.ToLower(fe.Field())
			fieldErrors[f] = append(fieldErrors[f], fe.Tag())
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
