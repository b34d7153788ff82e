package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"advokat-site-backend/controllers"
	sitehandler "advokat-site-backend/lib/site"
	apimodels "advokat-site-backend/models/api"
)

type siteApiController struct {
	controllers.BaseAPIController
}

func InitSiteApiRouters(app *fiber.App) {
	controller := siteApiController{}
	app.Route("site", func(router fiber.Router) {
		router.Get("practice-areas", controller.practiceAreas)
		router.Get("practice-areas/:code", controller.practiceArea)
		router.Get("contacts", controller.contacts)
		router.Get("pages", controller.pages)
		router.Get("jsonld", controller.jsonLD)
	})
}

// @Summary Направления практики
// @Tags Контент сайта
// @Description Список направлений практики с описаниями
// @Success 200 {object} apimodels.Response{data=[]siteapimodels.PracticeAreaView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/site/practice-areas [get]
func (c *siteApiController) practiceAreas(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sitehandler.Instance.PracticeAreas()))
}

// @Summary Направление практики
// @Tags Контент сайта
// @Description Направление практики по коду услуги
// @Param   code	path    string  true	"код услуги"
// @Success 200 {object} apimodels.Response{data=siteapimodels.PracticeAreaView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/site/practice-areas/{code} [get]
func (c *siteApiController) practiceArea(ctx *fiber.Ctx) error {
	code := ctx.Params("code")
	view, err := sitehandler.Instance.PracticeArea(code)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Контакты
// @Tags Контент сайта
// @Description Контактные данные адвоката
// @Success 200 {object} apimodels.Response{data=siteapimodels.ContactInfoView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/site/contacts [get]
func (c *siteApiController) contacts(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sitehandler.Instance.Contacts()))
}

// @Summary SEO данные страниц
// @Tags Контент сайта
// @Description Метаданные страниц сайта для SEO
// @Success 200 {object} apimodels.Response{data=[]siteapimodels.PageMetaView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/site/pages [get]
func (c *siteApiController) pages(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sitehandler.Instance.Pages()))
}

// @Summary Структурированные данные
// @Tags Контент сайта
// @Description Карточка адвоката schema.org для разметки страниц
// @Success 200 {object} siteapimodels.AttorneyJsonLD
// @Failure 500 {object} apimodels.Response
// @router /api/v1/site/jsonld [get]
func (c *siteApiController) jsonLD(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(sitehandler.Instance.JsonLD())
}
