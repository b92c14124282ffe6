package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldRule is a single-field validator: it returns the accepted value or a
// *ValidationError describing the broken rule.
type fieldRule func(string) (string, error)

// fieldRules maps each struct tag to the rule it runs.
var fieldRules = map[string]fieldRule{
	"author_name":   ValidateName,
	"author_phone":  ValidatePhoneNumber,
	"post_title":    ValidateTitle,
	"post_content":  ValidateContent,
	"post_summary":  ValidateSummary,
	"post_category": ValidateCategory,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	for tag, rule := range fieldRules {
		if err := v.RegisterValidation(tag, tagFunc(rule)); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	return v
}

func tagFunc(rule fieldRule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := rule(fl.Field().String())
		return err == nil
	}
}

// validateStruct runs the tagged rules on a record and reports the first
// failure as a *ValidationError.
func validateStruct(record interface{}) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	rule, ok := fieldRules[fe.Tag()]
	if !ok {
		return newValidationError(fe.Field(), fe.Error())
	}
	value, _ := fe.Value().(string)
	if _, ruleErr := rule(value); ruleErr != nil {
		return ruleErr
	}
	return newValidationError(fe.Field(), fe.Error())
}
