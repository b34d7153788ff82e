package booking

import (
	"strings"

	serviceprovider "advokat-site-backend/lib/dicts/service"
	bookingapimodels "advokat-site-backend/models/api/booking"
)

// buildMessage собирает текст уведомления о записи.
// Маркеры * - внешний контракт с каналом в telegram, менять нельзя.
func buildMessage(data bookingapimodels.AppointmentData) string {
	var b strings.Builder
	b.WriteString("🔔 *Новая запись на консультацию*\n\n")
	b.WriteString("*Имя:* " + data.Name + "\n")
	b.WriteString("*Email:* " + data.Email + "\n")
	b.WriteString("*Телефон:* " + data.Phone + "\n")
	b.WriteString("*Дата:* " + data.Date + "\n")
	b.WriteString("*Время:* " + data.Time + "\n")
	b.WriteString("*Услуга:* " + serviceprovider.Instance.Label(data.Service) + "\n")
	if data.Message != "" {
		b.WriteString("*Сообщение:* " + data.Message + "\n")
	}
	return b.String()
}
