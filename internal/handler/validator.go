package handler

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// validateStruct runs struct-tag validation on a decoded request body.
func validateStruct(s interface{}) error {
	return validate.Struct(s)
}
