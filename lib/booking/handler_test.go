package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	serviceprovider "advokat-site-backend/lib/dicts/service"
	bookingapimodels "advokat-site-backend/models/api/booking"
)

type stubNotifier struct {
	calls    int
	result   bool
	lastText string
}

func (s *stubNotifier) SendMessage(ctx context.Context, text string) bool {
	s.calls++
	s.lastText = text
	return s.result
}

func validRequest() bookingapimodels.AppointmentData {
	return bookingapimodels.AppointmentData{
		Name:    "Иван Иванов",
		Email:   "i@x.ru",
		Phone:   "+79001234567",
		Date:    "2025-03-01",
		Time:    "10:00",
		Service: "criminal",
	}
}

func TestSubmit(t *testing.T) {
	serviceprovider.NewHandler()

	t.Run(`корректная заявка принимается`, func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		handler := impl{notifier: notifier}
		result := handler.Submit(context.Background(), validRequest())
		require.True(t, result.Success)
		require.NotNil(t, result.Data)
		require.Equal(t, "Иван Иванов", result.Data.Name)
		require.Equal(t, 1, notifier.calls)
	})

	t.Run(`при ошибке валидации уведомление не отправляется`, func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		handler := impl{notifier: notifier}
		data := validRequest()
		data.Date = "not-a-date"
		result := handler.Submit(context.Background(), data)
		require.False(t, result.Success)
		require.Contains(t, result.Errors, "date")
		require.Equal(t, 0, notifier.calls)
	})

	t.Run(`недоставленное уведомление не отменяет запись`, func(t *testing.T) {
		notifier := &stubNotifier{result: false}
		handler := impl{notifier: notifier}
		result := handler.Submit(context.Background(), validRequest())
		require.True(t, result.Success)
		require.NotNil(t, result.Data)
		require.Equal(t, 1, notifier.calls)
	})

	t.Run(`пробелы по краям полей срезаются`, func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		handler := impl{notifier: notifier}
		data := validRequest()
		data.Name = "  Иван Иванов  "
		result := handler.Submit(context.Background(), data)
		require.True(t, result.Success)
		require.Equal(t, "Иван Иванов", result.Data.Name)
	})
}

func TestBuildMessage(t *testing.T) {
	serviceprovider.NewHandler()

	t.Run(`все поля попадают в текст, код услуги заменяется названием`, func(t *testing.T) {
		data := validRequest()
		data.Message = "хочу обсудить дело"
		text := buildMessage(data)
		require.Contains(t, text, "*Новая запись на консультацию*")
		require.Contains(t, text, "*Имя:* Иван Иванов")
		require.Contains(t, text, "*Email:* i@x.ru")
		require.Contains(t, text, "*Телефон:* +79001234567")
		require.Contains(t, text, "*Дата:* 2025-03-01")
		require.Contains(t, text, "*Время:* 10:00")
		require.Contains(t, text, "*Услуга:* Уголовные дела")
		require.Contains(t, text, "*Сообщение:* хочу обсудить дело")
	})

	t.Run(`пустой комментарий не печатается`, func(t *testing.T) {
		text := buildMessage(validRequest())
		require.NotContains(t, text, "Сообщение")
	})

	t.Run(`неизвестный код услуги печатается как есть`, func(t *testing.T) {
		data := validRequest()
		data.Service = "xyz123"
		require.Contains(t, buildMessage(data), "*Услуга:* xyz123")
	})

	t.Run(`формат детерминирован`, func(t *testing.T) {
		data := validRequest()
		require.Equal(t, buildMessage(data), buildMessage(data))
	})

	t.Run(`порядок блоков фиксированный`, func(t *testing.T) {
		text := buildMessage(validRequest())
		idxName := strings.Index(text, "*Имя:*")
		idxEmail := strings.Index(text, "*Email:*")
		idxPhone := strings.Index(text, "*Телефон:*")
		idxDate := strings.Index(text, "*Дата:*")
		require.True(t, idxName < idxEmail && idxEmail < idxPhone && idxPhone < idxDate)
	})
}
