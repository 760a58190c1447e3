package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("us_phone", validateUSPhone)
}

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	errs := []error{}
	for _, fieldError := range err.(validator.ValidationErrors) {
		errs = append(errs, fmt.Errorf("%s failed validation on the %s rule", fieldError.Field(), fieldError.Tag()))
	}
	return &errs
}

var ValidatorInstance = Validator{}
