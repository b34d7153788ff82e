package contact

import (
	"strings"

	contactapimodels "advokat-site-backend/models/api/contact"
)

// buildMessage собирает текст уведомления с формы обратной связи.
// Маркеры * - внешний контракт с каналом в telegram, менять нельзя.
func buildMessage(data contactapimodels.ContactData) string {
	var b strings.Builder
	b.WriteString("✉️ *Новое сообщение с сайта*\n\n")
	b.WriteString("*Имя:* " + data.Name + "\n")
	b.WriteString("*Email:* " + data.Email + "\n")
	b.WriteString("*Телефон:* " + data.Phone + "\n")
	if data.Subject != "" {
		b.WriteString("*Тема:* " + data.Subject + "\n")
	}
	b.WriteString("*Сообщение:* " + data.Message + "\n")
	return b.String()
}
