package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	contactapimodels "advokat-site-backend/models/api/contact"
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

func validRequest() contactapimodels.ContactData {
	return contactapimodels.ContactData{
		Name:    "Пётр Петров",
		Email:   "p@x.ru",
		Phone:   "+79007654321",
		Message: "Нужна консультация по наследственному делу",
	}
}

func TestSubmit(t *testing.T) {
	t.Run(`корректное сообщение доставляется`, func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		handler := impl{notifier: notifier}
		result := handler.Submit(context.Background(), validRequest())
		require.True(t, result.Success)
		require.NotNil(t, result.Data)
		require.Equal(t, 1, notifier.calls)
	})

	t.Run(`при ошибке валидации уведомление не отправляется`, func(t *testing.T) {
		notifier := &stubNotifier{result: true}
		handler := impl{notifier: notifier}
		data := validRequest()
		data.Message = "коротко"
		result := handler.Submit(context.Background(), data)
		require.False(t, result.Success)
		require.Contains(t, result.Errors, "message")
		require.Equal(t, 0, notifier.calls)
	})

	t.Run(`недоставленное уведомление - отказ с сообщением для пользователя`, func(t *testing.T) {
		notifier := &stubNotifier{result: false}
		handler := impl{notifier: notifier}
		result := handler.Submit(context.Background(), validRequest())
		require.False(t, result.Success)
		require.Empty(t, result.Errors)
		require.Equal(t, RetryMessage, result.Message)
	})
}

func TestBuildMessage(t *testing.T) {
	t.Run(`все поля попадают в текст`, func(t *testing.T) {
		data := validRequest()
		data.Subject = "Наследство"
		text := buildMessage(data)
		require.Contains(t, text, "*Новое сообщение с сайта*")
		require.Contains(t, text, "*Имя:* Пётр Петров")
		require.Contains(t, text, "*Email:* p@x.ru")
		require.Contains(t, text, "*Телефон:* +79007654321")
		require.Contains(t, text, "*Тема:* Наследство")
		require.Contains(t, text, "*Сообщение:* Нужна консультация по наследственному делу")
	})

	t.Run(`пустая тема не печатается`, func(t *testing.T) {
		text := buildMessage(validRequest())
		require.NotContains(t, text, "Тема")
	})

	t.Run(`формат детерминирован`, func(t *testing.T) {
		data := validRequest()
		require.Equal(t, buildMessage(data), buildMessage(data))
	})
}
