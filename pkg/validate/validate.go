package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var matriculaRe = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z-]*$`)

// facility names, matched case-insensitively like the path parameter
var facilities = map[string]struct{}{
	"cubicle":     {},
	"laboratory":  {},
	"projector":   {},
	"restaurant":  {},
	"viproom":     {},
	"meetingroom": {},
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("matricula", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return matriculaRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("facility", func(fl validator.FieldLevel) bool { //nolint:errcheck
		_, ok := facilities[strings.ToLower(fl.Field().String())]
		return ok
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
