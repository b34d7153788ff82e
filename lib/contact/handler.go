package contact

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"advokat-site-backend/lib/smtp"
	telegramclient "advokat-site-backend/lib/telegram"
	"advokat-site-backend/lib/validation"
	contactapimodels "advokat-site-backend/models/api/contact"
)

// RetryMessage показывается пользователю, когда сообщение не удалось доставить
const RetryMessage = "Не удалось отправить сообщение. Попробуйте ещё раз или позвоните нам."

type Provider interface {
	Submit(ctx context.Context, data contactapimodels.ContactData) contactapimodels.SubmitResult
}

var Instance Provider

func NewHandler(notifyEmail string) {
	Instance = impl{
		notifier:    telegramclient.Instance,
		mailer:      smtp.Instance,
		notifyEmail: notifyEmail,
	}
}

type impl struct {
	notifier    telegramclient.Provider
	mailer      smtp.Provider
	notifyEmail string
}

// Submit проводит сообщение с формы обратной связи.
// В отличие от записи на консультацию, недоставленное уведомление здесь
// означает потерю обращения, поэтому отдаём пользователю ошибку.
func (i impl) Submit(ctx context.Context, data contactapimodels.ContactData) contactapimodels.SubmitResult {
	data = data.Normalized()
	if errs := validation.Check(data); errs != nil {
		return contactapimodels.SubmitResult{
			Success: false,
			Errors:  errs,
		}
	}
	message := buildMessage(data)
	if !i.notifier.SendMessage(ctx, message) {
		log.WithField("email", data.Email).
			Error("сообщение с формы обратной связи не доставлено")
		return contactapimodels.SubmitResult{
			Success: false,
			Message: RetryMessage,
		}
	}
	i.sendEmailCopy(message)
	return contactapimodels.SubmitResult{
		Success: true,
		Data:    &data,
	}
}

func (i impl) sendEmailCopy(message string) {
	if i.mailer == nil || i.notifyEmail == "" {
		return
	}
	body := strings.ReplaceAll(message, "*", "")
	go func() {
		if err := i.mailer.SendEMail(i.notifyEmail, body, "новое сообщение с сайта"); err != nil {
			log.WithError(err).Warn("копия сообщения не отправлена на почту")
		}
	}()
}
