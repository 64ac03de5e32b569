package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phoneNumberPattern = regexp.MustCompile(`^\+?[1-9]\d{5,14}$`)

var projectStatuses = map[string]struct{}{
	"notStarted": {},
	"inProgress": {},
	"completed":  {},
	"delayed":    {},
}

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs json tag names and the custom tags on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phonenumber", phoneNumberValidator); err != nil {
		log.Fatal("register phonenumber validator failed")
	}
	if err := v.RegisterValidation("projectstatus", projectStatusValidator); err != nil {
		log.Fatal("register projectstatus validator failed")
	}
}

// RegisterGinEnum adds tag to gin's validator, accepting an empty value or one of values.
func RegisterGinEnum(tag string, values ...string) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterEnum(v, tag, values...)
	}
}

func RegisterEnum(v *validator.Validate, tag string, values ...string) {
	allowed := make(map[string]struct{}, len(values))
	for _, value := range values {
		allowed[value] = struct{}{}
	}

	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, ok := allowed[value]
		return ok
	})
	if err != nil {
		log.Fatalf("register %s validator failed", tag)
	}
}

func IsPhoneNumber(phone string) bool {
	return phoneNumberPattern.MatchString(phone)
}

var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsPhoneNumber(fl.Field().String())
}

var projectStatusValidator validator.Func = func(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	if status == "" {
		return true
	}
	_, ok := projectStatuses[status]
	return ok
}
