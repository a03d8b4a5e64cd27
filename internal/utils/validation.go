package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FormErrorKey holds errors that do not belong to a single field
const FormErrorKey = "_form"

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the numeric-string rules used by the produk forms to gin's validator.
// It runs once; later calls return the first result.
func RegisterValidators() error {
	registerOnce.Do(func() {
		registerErr = registerRules(binding.Validator.Engine())
	})
	return registerErr
}

func registerRules(engine interface{}) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unsupported validator engine %T", engine)
	}
	rules := []struct {
		tag string
		fn  validator.Func
	}{
		{"integer", isInteger},
		{"positive", isPositive},
		{"nonnegative", isNonNegative},
	}
	for _, r := range rules {
		if err := v.RegisterValidation(r.tag, r.fn); err != nil {
			return fmt.Errorf("failed to register %q rule: %w", r.tag, err)
		}
	}
	return nil
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 64)
	return err == nil
}

func isPositive(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && f > 0
}

func isNonNegative(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && f >= 0
}

// ValidationMessages maps a binding error to form field name -> message.
// Field names come from the "form" tag and labels from the "label" tag of form.
func ValidationMessages(err error, form interface{}) map[string]string {
	messages := make(map[string]string)
	if err == nil {
		return messages
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		messages[FormErrorKey] = "Invalid request: " + err.Error()
		return messages
	}

	t := reflect.TypeOf(form)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, fe := range verrs {
		name, label := fe.StructField(), fe.StructField()
		if t != nil && t.Kind() == reflect.Struct {
			if sf, ok := t.FieldByName(fe.StructField()); ok {
				if tag := sf.Tag.Get("form"); tag != "" {
					name = tag
				}
				if tag := sf.Tag.Get("label"); tag != "" {
					label = tag
				}
			}
		}
		if _, exists := messages[name]; exists {
			continue
		}
		messages[name] = fieldMessage(label, fe)
	}
	return messages
}

func fieldMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be a number", label)
	case "integer":
		return fmt.Sprintf("%s must be a whole number", label)
	case "positive":
		return fmt.Sprintf("%s must be a positive number", label)
	case "nonnegative":
		return fmt.Sprintf("%s cannot be negative", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
