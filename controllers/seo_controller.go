package controllers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	sitehandler "advokat-site-backend/lib/site"
)

type seoController struct {
	BaseAPIController
}

// InitSeoRouters регистрирует служебные адреса для поисковых роботов
func InitSeoRouters(app *fiber.App) {
	controller := seoController{}
	app.Get("/sitemap.xml", controller.sitemap)
	app.Get("/robots.txt", controller.robots)
}

func (c *seoController) sitemap(ctx *fiber.Ctx) error {
	body, err := sitehandler.Instance.Sitemap()
	if err != nil {
		log.WithError(err).Error("ошибка выдачи sitemap")
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	ctx.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return ctx.Status(fiber.StatusOK).Send(body)
}

func (c *seoController) robots(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return ctx.Status(fiber.StatusOK).SendString(sitehandler.Instance.Robots())
}
