package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"
	"wfm-backend/config"
	apiv1 "wfm-backend/controllers/v1"
	"wfm-backend/controllers/v1/dict"
	"wfm-backend/fiberlog"
	"wfm-backend/initializers"
	"wfm-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimitMB * 1024 * 1024,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//dict
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dicts.Use(middleware.AuthorizationRequired())
	dicts.Use(middleware.RbacMiddleware())
	dict.InitSiteDictApiRouters(dicts)
	dict.InitProductDictApiRouters(dicts)
	dict.InitRestrictedPeriodDictApiRouters(dicts)

	//основное апи
	protected := fiber.New()
	apiV1.Mount("/", protected)
	protected.Use(middleware.AuthorizationRequired())
	protected.Use(middleware.RbacMiddleware())
	apiv1.InitEmployeeApiRouters(protected)
	apiv1.InitWorkSessionApiRouters(protected)
	apiv1.InitApprovalApiRouters(protected)
	apiv1.InitShiftApiRouters(protected)
	apiv1.InitTaskApiRouters(protected)
	apiv1.InitNotificationApiRouters(protected)
	apiv1.InitReportApiRouters(protected)
	apiv1.InitFileApiRouters(protected)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
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
