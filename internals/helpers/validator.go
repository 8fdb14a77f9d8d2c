package helper

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"cyberku_backend/internals/constants"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// level challenge valid hanya yang ada di constants.AllowedChallengeLevels
		_ = validate.RegisterValidation("challenge_level", func(fl validator.FieldLevel) bool {
			return constants.IsAllowedChallengeLevel(fl.Field().String())
		})
	})
	return validate
}

// ValidateStruct menjalankan validator.v10 lalu merapikan hasilnya
// ke map field → pesan (dipakai JsonValidationError).
func ValidateStruct(s any) map[string][]string {
	if err := Validator().Struct(s); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string][]string, len(ve))
			for _, fe := range ve {
				out[fe.Field()] = append(out[fe.Field()], fe.Tag())
			}
			return out
		}
		return map[string][]string{"_": {err.Error()}}
	}
	return nil
}
