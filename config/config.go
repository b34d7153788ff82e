package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Telegram struct {
		ApiURL   string `default:"https://api.telegram.org" env:"TELEGRAM_API_URL"`
		BotToken string `default:"" env:"BOT_TOKEN"`
		ChatID   int64  `default:"0" env:"CHAT_ID"` // для групповых чатов значение отрицательное
	}
	Smtp struct {
		User        string `default:"" env:"SMTP_USER"`
		Password    string `default:"" env:"SMTP_PASSWORD"`
		Host        string `default:"" env:"SMTP_HOST"`
		Port        string `default:"" env:"SMTP_PORT"`
		TLSEnabled  *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		NotifyEmail string `default:"" env:"SMTP_NOTIFY_EMAIL"`
	}
	Site SiteSettings
}

type SiteSettings struct {
	BaseURL string `default:"http://localhost:8080" env:"SITE_BASE_URL"`
	Name    string `default:"Адвокат Смирнова Анна Викторовна" env:"SITE_NAME"`
	Phone   string `default:"+7 (900) 123-45-67" env:"SITE_PHONE"`
	Email   string `default:"info@advokat-smirnova.ru" env:"SITE_EMAIL"`
	Address string `default:"ул. Ленина, д. 10, офис 5" env:"SITE_ADDRESS"`
	City    string `default:"Москва" env:"SITE_CITY"`
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
