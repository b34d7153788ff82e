package bookingapimodels

import (
	"strings"

	apimodels "advokat-site-backend/models/api"
)

type AppointmentData struct {
	Name    string `json:"name" validate:"required,min=2"`          // Имя клиента
	Email   string `json:"email" validate:"required,email"`         // Email клиента
	Phone   string `json:"phone" validate:"required,ru_phone"`      // Телефон клиента
	Date    string `json:"date" validate:"required,calendar_date"`  // Желаемая дата приёма
	Time    string `json:"time" validate:"required,hhmm"`           // Желаемое время приёма
	Service string `json:"service" validate:"required"`             // Код услуги
	Message string `json:"message,omitempty" validate:"omitempty"`  // Комментарий к записи
}

// Normalized возвращает копию с полями без краевых пробелов
func (r AppointmentData) Normalized() AppointmentData {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Service = strings.TrimSpace(r.Service)
	r.Message = strings.TrimSpace(r.Message)
	return r
}

type SubmitResult struct {
	Success bool
	Data    *AppointmentData
	Errors  apimodels.FieldErrors
	Message string
}
