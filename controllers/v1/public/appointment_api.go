package publicapi

import (
	"github.com/gofiber/fiber/v2"

	"advokat-site-backend/controllers"
	"advokat-site-backend/lib/booking"
	apimodels "advokat-site-backend/models/api"
	bookingapimodels "advokat-site-backend/models/api/booking"
)

type appointmentApiController struct {
	controllers.BaseAPIController
}

func InitPublicBookingApiRouters(app *fiber.App) {
	controller := appointmentApiController{}
	app.Route("appointment", func(router fiber.Router) {
		router.Post("", controller.submit)
	})
}

// @Summary Запись на консультацию
// @Tags Формы сайта
// @Description Принимает заявку на консультацию и уведомляет адвоката
// @Param	body	body	bookingapimodels.AppointmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=bookingapimodels.AppointmentData}
// @Failure 400 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/appointment [post]
func (c *appointmentApiController) submit(ctx *fiber.Ctx) error {
	var payload bookingapimodels.AppointmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	result := booking.Instance.Submit(ctx.UserContext(), payload)
	if !result.Success {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewValidationError(result.Errors))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result.Data))
}
