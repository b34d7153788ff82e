package telegramclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ParseMode - диалект разметки сообщений, внешний контракт с каналом уведомлений
const ParseMode = "Markdown"

type Provider interface {
	// SendMessage отправляет текст в настроенный чат.
	// Возвращает true только при подтверждённой доставке, ошибок наружу не отдаёт.
	SendMessage(ctx context.Context, text string) bool
}

var Instance Provider

func Connect(apiURL, botToken string, chatID int64) {
	Instance = &impl{
		apiURL:   strings.TrimRight(apiURL, "/"),
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{},
	}
}

type impl struct {
	apiURL   string
	botToken string
	chatID   int64
	client   *http.Client
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

func (i *impl) SendMessage(ctx context.Context, text string) bool {
	logger := log.WithField("chat_id", i.chatID)
	if i.botToken == "" || i.chatID == 0 {
		logger.Warn("уведомление не отправлено, тк не настроен telegram бот")
		return false
	}
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    i.chatID,
		Text:      text,
		ParseMode: ParseMode,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сборки запроса в telegram")
		return false
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", i.apiURL, i.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logger.WithError(err).Error("ошибка сборки запроса в telegram")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления в telegram")
		return false
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.WithError(err).WithField("status", resp.StatusCode).
			Error("ошибка распознавания ответа telegram")
		return false
	}
	// транспорт мог пройти, а операция на стороне telegram - нет
	if !result.Ok {
		logger.WithField("status", resp.StatusCode).
			WithField("description", result.Description).
			Error("telegram не подтвердил доставку уведомления")
		return false
	}
	logger.Info("уведомление отправлено")
	return true
}
