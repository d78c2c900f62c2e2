package delivery

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"volunteer/config"
	"volunteer/domain"
	"volunteer/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type volunteerHandler struct {
	vuc domain.VolunteerUseCase
}

func NewVolunteerHandler(app *fiber.App, useCase domain.VolunteerUseCase) {
	handler := &volunteerHandler{
		vuc: useCase,
	}

	route := app.Group("/volunteer")

	route.Post("/insert", handler.RegisterVolunteer)
	route.Get("/get_all", handler.GetAllVolunteer)
	route.Get("/get/:id", handler.GetVolunteerByID)
	route.Put("/modify/:id", handler.ModifyVolunteer)
	route.Delete("/rm/:id", handler.DeleteVolunteer)
	route.Post("/restore/:id", handler.RestoreVolunteer)
}

func NewVolunteerHandlerDeploy(app *fiber.App, useCase domain.VolunteerUseCase) {
	handler := &volunteerHandler{
		vuc: useCase,
	}

	route := app.Group("/volunteer")

	route.Post("/insert", handler.RegisterVolunteer)
	route.Get("/get_all", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.GetAllVolunteer)
	route.Get("/get/:id", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.GetVolunteerByID)
	route.Put("/modify/:id", middleware.AuthRequired(), middleware.RoleRequired("admin"), handler.ModifyVolunteer)
	route.Delete("/rm/:id", middleware.AuthRequired(), middleware.RoleRequired("admin"), handler.DeleteVolunteer)
	route.Post("/restore/:id", middleware.AuthRequired(), middleware.RoleRequired("admin"), handler.RestoreVolunteer)
}

func usernameFromLocals(c *fiber.Ctx) *string {
	if claims, ok := c.Locals("user").(*domain.Claims); ok {
		return &claims.Username
	}
	return nil
}

func (vh *volunteerHandler) RegisterVolunteer(c *fiber.Ctx) error {
	username := usernameFromLocals(c)

	var req domain.Volunteer
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "RegisterVolunteer")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	req.Email = strings.TrimSpace(req.Email)

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "RegisterVolunteer")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid volunteer request body",
		})
	}

	if err := vh.vuc.CreateVolunteerUC(c.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			config.PrintLogInfo(username, fiber.StatusConflict, "RegisterVolunteer")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Email is already registered",
			})
		}

		config.PrintLogInfo(username, fiber.StatusInternalServerError, "RegisterVolunteer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to register volunteer",
		})
	}

	config.PrintLogInfo(username, fiber.StatusCreated, "RegisterVolunteer")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer registered successfully",
		"data":    req,
	})
}

func (vh *volunteerHandler) GetAllVolunteer(c *fiber.Ctx) error {
	username := usernameFromLocals(c)

	status := c.Query("status")
	switch status {
	case "", domain.StatusActive, domain.StatusInactive, "all":
	default:
		config.PrintLogInfo(username, fiber.StatusBadRequest, "GetAllVolunteer")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "status must be one of: active, inactive, all",
			"message": "Invalid status filter",
		})
	}

	filter := domain.VolunteerFilter{
		Status: status,
		Role:   c.Query("role"),
		Skip:   c.QueryInt("skip", 0),
		Limit:  c.QueryInt("limit", 100),
	}

	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			config.PrintLogInfo(username, fiber.StatusBadRequest, "GetAllVolunteer")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "available must be a boolean",
				"message": "Invalid available filter",
			})
		}
		filter.Available = &available
	}

	if filter.Skip < 0 || filter.Limit < 1 || filter.Limit > 1000 {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "GetAllVolunteer")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "skip must be >= 0 and limit between 1 and 1000",
			"message": "Invalid pagination",
		})
	}

	volunteers, err := vh.vuc.GetAllVolunteerUC(c.Context(), &filter)
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusInternalServerError, "GetAllVolunteer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get all volunteers",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "GetAllVolunteer")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Volunteers retrieved successfully",
		"data":    volunteers,
	})
}

func (vh *volunteerHandler) GetVolunteerByID(c *fiber.Ctx) error {
	username := usernameFromLocals(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "GetVolunteerByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid volunteer ID",
		})
	}

	volunteer, err := vh.vuc.GetVolunteerByIDUC(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVolunteerNotFound) {
			config.PrintLogInfo(username, fiber.StatusNotFound, "GetVolunteerByID")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Volunteer not found",
			})
		}

		config.PrintLogInfo(username, fiber.StatusInternalServerError, "GetVolunteerByID")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get volunteer",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "GetVolunteerByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer retrieved successfully",
		"data":    volunteer,
	})
}

func (vh *volunteerHandler) ModifyVolunteer(c *fiber.Ctx) error {
	username := usernameFromLocals(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "ModifyVolunteer")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid volunteer ID",
		})
	}

	var payload domain.VolunteerUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, "ModifyVolunteer")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	volunteer, err := vh.vuc.UpdateVolunteerUC(c.Context(), id, &payload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVolunteerNotFound):
			config.PrintLogInfo(username, fiber.StatusNotFound, "ModifyVolunteer")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Volunteer not found",
			})
		case errors.Is(err, domain.ErrValidation):
			config.PrintLogInfo(username, fiber.StatusBadRequest, "ModifyVolunteer")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Invalid volunteer request body",
			})
		case errors.Is(err, domain.ErrDuplicateEmail):
			config.PrintLogInfo(username, fiber.StatusConflict, "ModifyVolunteer")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Email is already registered",
			})
		}

		config.PrintLogInfo(username, fiber.StatusInternalServerError, "ModifyVolunteer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to modify volunteer",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, "ModifyVolunteer")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer modified successfully",
		"data":    volunteer,
	})
}

func (vh *volunteerHandler) DeleteVolunteer(c *fiber.Ctx) error {
	return vh.changeStatus(c, "DeleteVolunteer", vh.vuc.DeleteVolunteerUC, "Volunteer deactivated successfully")
}

func (vh *volunteerHandler) RestoreVolunteer(c *fiber.Ctx) error {
	return vh.changeStatus(c, "RestoreVolunteer", vh.vuc.RestoreVolunteerUC, "Volunteer restored successfully")
}

// Soft delete and restore only differ in the target status, so they share
// one handler body.
func (vh *volunteerHandler) changeStatus(c *fiber.Ctx, fn string, op func(ctx context.Context, id int) (*domain.Volunteer, error), okMsg string) error {
	username := usernameFromLocals(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(username, fiber.StatusBadRequest, fn)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid volunteer ID",
		})
	}

	volunteer, err := op(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVolunteerNotFound) {
			config.PrintLogInfo(username, fiber.StatusNotFound, fn)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Volunteer not found",
			})
		}

		config.PrintLogInfo(username, fiber.StatusInternalServerError, fn)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to change volunteer status",
		})
	}

	config.PrintLogInfo(username, fiber.StatusOK, fn)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": okMsg,
		"data":    volunteer,
	})
}
