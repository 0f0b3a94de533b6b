package validator

import (
	v10 "github.com/go-playground/validator/v10"
)

// Validator checks structs against their `validate` tags.
type Validator interface {
	Validate(interface{}) error
}

type validator struct {
	v *v10.Validate
}

func New() Validator {
	return &validator{v: v10.New()}
}

func (v *validator) Validate(obj interface{}) error {
	return v.v.Struct(obj)
}
