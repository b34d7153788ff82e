package contactapimodels

import (
	"strings"

	apimodels "advokat-site-backend/models/api"
)

type ContactData struct {
	Name    string `json:"name" validate:"required,min=2"`         // Имя отправителя
	Email   string `json:"email" validate:"required,email"`        // Email отправителя
	Phone   string `json:"phone" validate:"required,ru_phone"`     // Телефон отправителя
	Message string `json:"message" validate:"required,min=10"`     // Текст сообщения
	Subject string `json:"subject,omitempty" validate:"omitempty"` // Тема сообщения
}

// Normalized возвращает копию с полями без краевых пробелов
func (r ContactData) Normalized() ContactData {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.Subject = strings.TrimSpace(r.Subject)
	return r
}

type SubmitResult struct {
	Success bool
	Data    *ContactData
	Errors  apimodels.FieldErrors
	Message string
}
