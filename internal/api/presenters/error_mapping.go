package presenters

import (
	"errors"

	"recipe-catalog/domain"

	"github.com/gofiber/fiber/v2"
)

// notFoundErrs / conflictErrs / validationErrs form the single typed-error to
// HTTP-status mapping table. The domain layer never sees status codes; this is
// the only place its error taxonomy meets transport.
var (
	notFoundErrs = []error{
		domain.ErrCategoryNotFound,
		domain.ErrIngredientNotFound,
		domain.ErrRecipeNotFound,
		domain.ErrUserRecipeNotFound,
		domain.ErrUnitNotFound,
	}
	conflictErrs = []error{
		domain.ErrCategoryAlreadyExists,
		domain.ErrIngredientAlreadyExists,
		domain.ErrRecipeAlreadyExists,
		domain.ErrUnitAlreadyExists,
	}
	validationErrs = []error{
		domain.ErrSentinelCategory,
		domain.ErrIngredientNoCategories,
		domain.ErrCategoriesNotResolved,
		domain.ErrRecipeNoIngredients,
		domain.ErrRecipeHasForks,
		domain.ErrInvalidMatchMode,
		domain.ErrInvalidID,
	}
)

// StatusForError resolves a domain error to its HTTP status. Anything outside
// the taxonomy is an infrastructure failure and surfaces as 500.
func StatusForError(err error) int {
	var ingredientsErr *domain.IngredientsNotFoundError
	if errors.As(err, &ingredientsErr) {
		return fiber.StatusNotFound
	}
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return fiber.StatusNotFound
		}
	}
	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			return fiber.StatusConflict
		}
	}
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}

// HandleError writes the error response with the status the mapping table
// resolves for err.
func HandleError(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusForError(err), message, err)
}
