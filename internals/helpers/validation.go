package helper

import (
	"github.com/go-playground/validator/v10"
)

// ValidationErrorsToMap mengubah error validator.v10 menjadi map field → pesan
// untuk dikirim lewat JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"input tidak valid"}
		return out
	}
	for _, fe := range ve {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "email":
			msg = "format email tidak valid"
		case "min":
			msg = "minimal " + fe.Param()
		case "max":
			msg = "maksimal " + fe.Param()
		case "gte":
			msg = "harus >= " + fe.Param()
		case "lte":
			msg = "harus <= " + fe.Param()
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param()
		default:
			msg = "format tidak valid"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
