package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"
	"volunteer/config"
	"volunteer/services/volunteer/delivery"
	"volunteer/services/volunteer/repository"
	"volunteer/services/volunteer/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	if err := config.InitEmailer(); err != nil {
		log.Warnf("Emailer disabled: %v", err)
	}

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Volunteer Registry API",
		})
	})

	if _, err := config.BootDB(); err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}

	gormDB, err := config.BootGormDB()
	if err != nil {
		log.Fatalf("Failed to boot gorm: %v", err)
		return
	}

	volunteerRepo := repository.NewVolunteerRepository(pool)
	volunteerUC := usecase.NewVolunteerUseCase(volunteerRepo, 10*time.Second)

	authRepo := repository.NewAuthRepository(gormDB)
	authUC := usecase.NewAuthUseCase(authRepo, 10*time.Second)

	if config.IsDeployMode() {
		delivery.NewVolunteerHandlerDeploy(app, volunteerUC)
	} else {
		delivery.NewVolunteerHandler(app, volunteerUC)
	}
	delivery.NewAuthHandler(app, authUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	pool.Close()

	wg.Wait()
	log.Info("Server shut down gracefully")
}
