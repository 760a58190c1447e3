package validator

import (
	"valuegate.jvcp.co/application/utils"
	"github.com/go-playground/validator/v10"
)

func validateUSPhone(fl validator.FieldLevel) bool {
	_, err := utils.NormalizePhoneNumber(fl.Field().String())
	return err == nil
}
