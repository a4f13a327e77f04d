package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"github.com/anjiri1684/tutor_booking/models"
	"github.com/go-playground/validator/v10"
)

const (
	msgRequired = "Обязательное поле"
	msgInvalid  = "Недопустимое значение"
	msgTime     = "Неверный формат времени"
)

// lengthMessages are shown for min/max failures on the contact fields.
var lengthMessages = map[string]string{
	"name":  "Введите от 2 до 30 символов",
	"phone": "Введите от 10 до 16 символов",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterValidation("time_budget", func(fl validator.FieldLevel) bool {
		return models.IsTimeBudget(fl.Field().String())
	})
	v.RegisterValidation("slot_time", func(fl validator.FieldLevel) bool {
		_, err := normalizeSlotTime(fl.Field().String())
		return err == nil
	})
	return v
}

// formError turns validator output into field messages for the form.
func formError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		switch fe.Tag() {
		case "required":
			fields[name] = msgRequired
		case "min", "max":
			if msg, ok := lengthMessages[name]; ok {
				fields[name] = msg
			} else {
				fields[name] = msgInvalid
			}
		case "slot_time":
			fields[name] = msgTime
		default:
			fields[name] = msgInvalid
		}
	}
	return errdefs.NewValidationError(fields)
}
