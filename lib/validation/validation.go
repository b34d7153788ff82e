package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apimodels "advokat-site-backend/models/api"
)

var validate = newValidator()

// fieldLabels - человекочитаемые названия полей форм для сообщений об ошибках
var fieldLabels = map[string]string{
	"name":    "Имя",
	"email":   "Email",
	"phone":   "Телефон",
	"date":    "Дата",
	"time":    "Время",
	"service": "Услуга",
	"message": "Сообщение",
	"subject": "Тема",
}

func newValidator() *validator.Validate {
	v := validator.New()
	// в ошибках используем имена полей из json тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("ru_phone", validPhone)
	_ = v.RegisterValidation("calendar_date", validDate)
	_ = v.RegisterValidation("hhmm", validTimeOfDay)
	return v
}

// Check проверяет структуру формы по validate тегам.
// Возвращает nil, если данные корректны, иначе ошибки по каждому полю.
func Check(s interface{}) apimodels.FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apimodels.FieldErrors{"form": {"не удалось проверить данные формы"}}
	}
	result := apimodels.FieldErrors{}
	for _, e := range vErrs {
		result[e.Field()] = append(result[e.Field()], message(e))
	}
	return result
}

func message(e validator.FieldError) string {
	label := fieldLabel(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: обязательное поле", label)
	case "min":
		return fmt.Sprintf("%s: минимум %s символов", label, e.Param())
	case "max":
		return fmt.Sprintf("%s: максимум %s символов", label, e.Param())
	case "email":
		return fmt.Sprintf("%s: неверный формат адреса", label)
	case "ru_phone":
		return fmt.Sprintf("%s: неверный формат номера", label)
	case "calendar_date":
		return fmt.Sprintf("%s: укажите дату в формате ГГГГ-ММ-ДД", label)
	case "hhmm":
		return fmt.Sprintf("%s: укажите время в формате ЧЧ:ММ", label)
	default:
		return fmt.Sprintf("%s: значение не прошло проверку (%s)", label, e.Tag())
	}
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

var phoneRe = regexp.MustCompile(`^\+?\d[\d\s()-]{4,}\d$`)

func validPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return len(value) >= 6 && phoneRe.MatchString(value)
}

// датапикер на сайте исторически присылал обе формы записи даты
var dateLayouts = []string{"2006-01-02", "02.01.2006"}

func validDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func validTimeOfDay(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}
