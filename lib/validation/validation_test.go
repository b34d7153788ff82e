package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	bookingapimodels "advokat-site-backend/models/api/booking"
	contactapimodels "advokat-site-backend/models/api/contact"
)

func validAppointment() bookingapimodels.AppointmentData {
	return bookingapimodels.AppointmentData{
		Name:    "Иван Иванов",
		Email:   "i@x.ru",
		Phone:   "+79001234567",
		Date:    "2025-03-01",
		Time:    "10:00",
		Service: "criminal",
	}
}

func TestCheckAppointment(t *testing.T) {
	t.Run(`корректная заявка проходит проверку`, func(t *testing.T) {
		errs := Check(validAppointment())
		require.Nil(t, errs)
	})

	t.Run(`комментарий не обязателен`, func(t *testing.T) {
		data := validAppointment()
		data.Message = ""
		require.Nil(t, Check(data))
	})

	t.Run(`пустое имя - ошибка по полю name`, func(t *testing.T) {
		data := validAppointment()
		data.Name = ""
		errs := Check(data)
		require.NotNil(t, errs)
		require.Contains(t, errs, "name")
		require.NotEmpty(t, errs["name"])
	})

	t.Run(`имя из одного символа - ошибка по полю name`, func(t *testing.T) {
		data := validAppointment()
		data.Name = "И"
		errs := Check(data)
		require.Contains(t, errs, "name")
	})

	t.Run(`некорректный email`, func(t *testing.T) {
		data := validAppointment()
		data.Email = "not-an-email"
		errs := Check(data)
		require.Contains(t, errs, "email")
	})

	t.Run(`короткий телефон`, func(t *testing.T) {
		data := validAppointment()
		data.Phone = "+791"
		errs := Check(data)
		require.Contains(t, errs, "phone")
	})

	t.Run(`телефон с буквами`, func(t *testing.T) {
		data := validAppointment()
		data.Phone = "позвоните мне"
		errs := Check(data)
		require.Contains(t, errs, "phone")
	})

	t.Run(`нераспознаваемая дата`, func(t *testing.T) {
		data := validAppointment()
		data.Date = "not-a-date"
		errs := Check(data)
		require.Contains(t, errs, "date")
	})

	t.Run(`дата в российском формате проходит`, func(t *testing.T) {
		data := validAppointment()
		data.Date = "01.03.2025"
		require.Nil(t, Check(data))
	})

	t.Run(`время вне суток`, func(t *testing.T) {
		data := validAppointment()
		data.Time = "25:00"
		errs := Check(data)
		require.Contains(t, errs, "time")
	})

	t.Run(`несколько ошибок приходят по своим полям`, func(t *testing.T) {
		data := validAppointment()
		data.Name = ""
		data.Email = "bad"
		errs := Check(data)
		require.Contains(t, errs, "name")
		require.Contains(t, errs, "email")
	})
}

func validContact() contactapimodels.ContactData {
	return contactapimodels.ContactData{
		Name:    "Пётр Петров",
		Email:   "p@x.ru",
		Phone:   "+79007654321",
		Message: "Нужна консультация по наследственному делу",
	}
}

func TestCheckContact(t *testing.T) {
	t.Run(`корректное сообщение проходит проверку`, func(t *testing.T) {
		require.Nil(t, Check(validContact()))
	})

	t.Run(`тема не обязательна`, func(t *testing.T) {
		data := validContact()
		data.Subject = ""
		require.Nil(t, Check(data))
	})

	t.Run(`короткое сообщение - ошибка по полю message`, func(t *testing.T) {
		data := validContact()
		data.Message = "коротко"
		errs := Check(data)
		require.Contains(t, errs, "message")
	})

	t.Run(`отсутствующее сообщение - ошибка по полю message`, func(t *testing.T) {
		data := validContact()
		data.Message = ""
		errs := Check(data)
		require.Contains(t, errs, "message")
	})

	t.Run(`сообщения об ошибках на русском с названием поля`, func(t *testing.T) {
		data := validContact()
		data.Name = ""
		errs := Check(data)
		require.Contains(t, errs["name"][0], "Имя")
	})
}
