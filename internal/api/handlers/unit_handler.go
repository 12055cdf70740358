package handlers

import (
	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/unit"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UnitHandler interface {
		CreateUnit(c *fiber.Ctx) error
		GetUnits(c *fiber.Ctx) error
		GetUnitByID(c *fiber.Ctx) error
	}

	unitHandler struct {
		unitService unit.UnitService
		validator   *validator.Validate
	}
)

func NewUnitHandler(unitService unit.UnitService, validator *validator.Validate) UnitHandler {
	return &unitHandler{
		unitService: unitService,
		validator:   validator,
	}
}

func (h *unitHandler) CreateUnit(c *fiber.Ctx) error {
	req := new(domain.CreateUnitRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUnit, err)
	}

	res, err := h.unitService.CreateUnit(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateUnit, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateUnit)
}

func (h *unitHandler) GetUnits(c *fiber.Ctx) error {
	res, err := h.unitService.GetUnits(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUnits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnits)
}

func (h *unitHandler) GetUnitByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUnit, domain.ErrInvalidID)
	}

	res, err := h.unitService.GetUnitByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUnit, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnit)
}
