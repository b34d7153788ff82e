package telegramclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	t.Run(`успешная доставка`, func(t *testing.T) {
		var gotPath string
		var gotBody sendMessageRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		Connect(server.URL, "test-token", -100123)
		require.True(t, Instance.SendMessage(context.Background(), "привет"))
		require.Equal(t, "/bottest-token/sendMessage", gotPath)
		require.Equal(t, int64(-100123), gotBody.ChatID)
		require.Equal(t, "привет", gotBody.Text)
		require.Equal(t, ParseMode, gotBody.ParseMode)
	})

	t.Run(`http 200 с ok=false считается отказом`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
		}))
		defer server.Close()

		Connect(server.URL, "test-token", 42)
		require.False(t, Instance.SendMessage(context.Background(), "привет"))
	})

	t.Run(`нечитаемый ответ считается отказом`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		Connect(server.URL, "test-token", 42)
		require.False(t, Instance.SendMessage(context.Background(), "привет"))
	})

	t.Run(`сетевая ошибка не паникует и возвращает false`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // соединение будет отклонено

		Connect(server.URL, "test-token", 42)
		require.NotPanics(t, func() {
			require.False(t, Instance.SendMessage(context.Background(), "привет"))
		})
	})

	t.Run(`без токена и чата запрос не выполняется`, func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		Connect(server.URL, "", 0)
		require.False(t, Instance.SendMessage(context.Background(), "привет"))
		require.Equal(t, 0, requests)
	})
}
