package initializers

import (
	"advokat-site-backend/config"
	"advokat-site-backend/fiberlog"
	"advokat-site-backend/lib/booking"
	"advokat-site-backend/lib/contact"
	serviceprovider "advokat-site-backend/lib/dicts/service"
	sitehandler "advokat-site-backend/lib/site"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitSmtp()
	InitTelegram()
	serviceprovider.NewHandler()
	sitehandler.NewHandler(config.Conf.Site)
	booking.NewHandler(config.Conf.Smtp.NotifyEmail)
	contact.NewHandler(config.Conf.Smtp.NotifyEmail)
}
