package dto

import "github.com/go-playground/validator/v10"

// ErrorResponse corpo de erro HTTP. O cliente extrai a mensagem por uma
// cadeia de formatos legados; este envelope cobre os formatos {code,message}.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New()

// Validate aplica as tags `validate` de um DTO de entrada.
func Validate(in any) error {
	return validate.Struct(in)
}
