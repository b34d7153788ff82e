package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"advokat-site-backend/config"
	"advokat-site-backend/controllers"
	apiv1 "advokat-site-backend/controllers/v1"
	"advokat-site-backend/controllers/v1/dict"
	publicapi "advokat-site-backend/controllers/v1/public"
	_ "advokat-site-backend/docs"
	"advokat-site-backend/fiberlog"
	"advokat-site-backend/initializers"
	"advokat-site-backend/middleware"
)

// @title API сайта адвоката
// @version 1.0
// @description Формы записи и обратной связи, контент и SEO данные сайта адвоката
func main() {
	_ = godotenv.Load()

	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//seo
	controllers.InitSeoRouters(app)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	apiV1.Use(middleware.ErrNotify())
	apiv1.InitSiteApiRouters(apiV1)

	//формы
	public := fiber.New()
	apiV1.Mount("/public", public)
	publicapi.InitPublicBookingApiRouters(public)
	publicapi.InitPublicContactApiRouters(public)

	//справочники
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dict.InitServiceDictApiRouters(dicts)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
