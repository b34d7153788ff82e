package booking

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"advokat-site-backend/lib/smtp"
	telegramclient "advokat-site-backend/lib/telegram"
	"advokat-site-backend/lib/validation"
	bookingapimodels "advokat-site-backend/models/api/booking"
)

type Provider interface {
	Submit(ctx context.Context, data bookingapimodels.AppointmentData) bookingapimodels.SubmitResult
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

// Submit проводит заявку на консультацию: проверка, сборка уведомления, отправка.
// Запись считается принятой после успешной проверки данных,
// недоставленное уведомление не отменяет её.
func (i impl) Submit(ctx context.Context, data bookingapimodels.AppointmentData) bookingapimodels.SubmitResult {
	data = data.Normalized()
	if errs := validation.Check(data); errs != nil {
		return bookingapimodels.SubmitResult{
			Success: false,
			Errors:  errs,
		}
	}
	message := buildMessage(data)
	if !i.notifier.SendMessage(ctx, message) {
		log.WithField("email", data.Email).
			Warn("запись на консультацию принята, но уведомление не доставлено")
	}
	i.sendEmailCopy(message)
	return bookingapimodels.SubmitResult{
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
		if err := i.mailer.SendEMail(i.notifyEmail, body, "новая запись на консультацию"); err != nil {
			log.WithError(err).Warn("копия уведомления о записи не отправлена на почту")
		}
	}()
}
