package publicapi

import (
	"github.com/gofiber/fiber/v2"

	"advokat-site-backend/controllers"
	"advokat-site-backend/lib/contact"
	apimodels "advokat-site-backend/models/api"
	contactapimodels "advokat-site-backend/models/api/contact"
)

type contactApiController struct {
	controllers.BaseAPIController
}

func InitPublicContactApiRouters(app *fiber.App) {
	controller := contactApiController{}
	app.Route("contact", func(router fiber.Router) {
		router.Post("", controller.submit)
	})
}

// @Summary Сообщение с формы обратной связи
// @Tags Формы сайта
// @Description Принимает сообщение с формы обратной связи и передаёт его адвокату
// @Param	body	body	contactapimodels.ContactData	true	"request body"
// @Success 200 {object} apimodels.Response{data=contactapimodels.ContactData}
// @Failure 400 {object} apimodels.ValidationResponse
// @Failure 502 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/contact [post]
func (c *contactApiController) submit(ctx *fiber.Ctx) error {
	var payload contactapimodels.ContactData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	result := contact.Instance.Submit(ctx.UserContext(), payload)
	if !result.Success {
		if len(result.Errors) != 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewValidationError(result.Errors))
		}
		// уведомление не доставлено - обращение потеряно, сообщаем пользователю
		return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewError(result.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result.Data))
}
