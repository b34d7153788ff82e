package initializers

import (
	log "github.com/sirupsen/logrus"

	"advokat-site-backend/config"
	telegramclient "advokat-site-backend/lib/telegram"
)

func InitTelegram() {
	cfg := config.Conf.Telegram
	if cfg.BotToken == "" || cfg.ChatID == 0 {
		// не фатально: формы работают, уведомления будут завершаться отказом
		log.Warn("telegram бот не настроен, уведомления отправляться не будут")
	}
	telegramclient.Connect(cfg.ApiURL, cfg.BotToken, cfg.ChatID)
}
