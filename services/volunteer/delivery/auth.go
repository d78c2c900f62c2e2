package delivery

import (
	"errors"
	"volunteer/config"
	"volunteer/domain"
	"volunteer/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	auc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, useCase domain.AuthUseCase) {
	handler := &authHandler{
		auc: useCase,
	}

	route := app.Group("/login")
	route.Post("/user", handler.Login)

	userRoute := app.Group("/user")
	userRoute.Post("/create-staff", middleware.AuthRequired(), middleware.RoleRequired("admin"), handler.CreateStaff)
}

func (ah *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	res, err := ah.auc.Login(c.Context(), &req)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid username or password",
		})
	} else if err != nil {
		// A store outage is not a rejected credential
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not process login",
		})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (ah *authHandler) CreateStaff(c *fiber.Ctx) error {
	userClaims := c.Locals("user").(*domain.Claims)

	var req domain.User
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userClaims.Username, fiber.StatusBadRequest, "CreateStaff")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(&userClaims.Username, fiber.StatusBadRequest, "CreateStaff")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if err := ah.auc.CreateStaff(c.Context(), &req); err != nil {
		config.PrintLogInfo(&userClaims.Username, fiber.StatusInternalServerError, "CreateStaff")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userClaims.Username, fiber.StatusOK, "CreateStaff")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully",
	})
}
