package handlers

import (
	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/userrecipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserRecipeHandler interface {
		CreateUserRecipe(c *fiber.Ctx) error
		GetUserRecipes(c *fiber.Ctx) error
		GetUserRecipeByID(c *fiber.Ctx) error
		UpdateUserRecipe(c *fiber.Ctx) error
		DeleteUserRecipe(c *fiber.Ctx) error
	}

	userRecipeHandler struct {
		userRecipeService userrecipe.UserRecipeService
		validator         *validator.Validate
	}
)

func NewUserRecipeHandler(userRecipeService userrecipe.UserRecipeService, validator *validator.Validate) UserRecipeHandler {
	return &userRecipeHandler{
		userRecipeService: userRecipeService,
		validator:         validator,
	}
}

func (h *userRecipeHandler) CreateUserRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateUserRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUserRecipe, err)
	}

	res, err := h.userRecipeService.CreateUserRecipe(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateUserRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateUserRecipe)
}

func (h *userRecipeHandler) GetUserRecipes(c *fiber.Ctx) error {
	userID, err := queryID(c, "user_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUserRecipes, domain.ErrInvalidID)
	}

	res, err := h.userRecipeService.GetUserRecipesByUserID(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUserRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRecipes)
}

func (h *userRecipeHandler) GetUserRecipeByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUserRecipe, domain.ErrInvalidID)
	}

	res, err := h.userRecipeService.GetUserRecipeByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetUserRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRecipe)
}

func (h *userRecipeHandler) UpdateUserRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUserRecipe, domain.ErrInvalidID)
	}

	req := new(domain.UpdateUserRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUserRecipe, err)
	}

	res, err := h.userRecipeService.UpdateUserRecipe(c.Context(), id, *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateUserRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUserRecipe)
}

func (h *userRecipeHandler) DeleteUserRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUserRecipe, domain.ErrInvalidID)
	}

	res, err := h.userRecipeService.DeleteUserRecipe(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteUserRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteUserRecipe)
}
