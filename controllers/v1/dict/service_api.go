package dict

import (
	"github.com/gofiber/fiber/v2"

	"advokat-site-backend/controllers"
	serviceprovider "advokat-site-backend/lib/dicts/service"
	apimodels "advokat-site-backend/models/api"
)

type serviceDictApiController struct {
	controllers.BaseAPIController
}

func InitServiceDictApiRouters(app *fiber.App) {
	controller := serviceDictApiController{}
	app.Route("services", func(router fiber.Router) {
		router.Get("", controller.serviceList)
	})
}

// @Summary Справочник услуг
// @Tags Справочник. Услуги
// @Description Список услуг для формы записи
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.ServiceView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/services [get]
func (c *serviceDictApiController) serviceList(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(serviceprovider.Instance.List()))
}
