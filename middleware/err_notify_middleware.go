package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	telegramclient "advokat-site-backend/lib/telegram"
)

// ErrNotify передаёт ответы 5xx оператору в telegram
func ErrNotify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()

		if statusCode >= http.StatusInternalServerError {
			body := string(c.Response().Body())

			var data struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			unmErr := json.Unmarshal(c.Response().Body(), &data)
			if unmErr != nil {
				log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
			}

			method := c.Method()
			path := c.OriginalURL()
			if r := c.Route(); r != nil {
				path = r.Path
			}

			msg := data.Message
			if msg == "" {
				msg = body
			}

			go func() {
				alert := fmt.Sprintf("⚠️ *Ошибка на сайте*\n\n*Код:* %d\n*Метод:* %s\n*Путь:* %s\n*Ошибка:* %s",
					statusCode, method, path, msg)
				if !telegramclient.Instance.SendMessage(context.Background(), alert) {
					log.Warn("оповещение об ошибке не доставлено")
				}
			}()
		}

		return err
	}
}
