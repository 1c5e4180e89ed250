package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/brandsbridge/internal/repository"
)

// translateRepoError maps repository errors onto HTTP errors. Anything not
// in the taxonomy propagates unchanged.
func translateRepoError(err error) error {
	var notFound *repository.NotFoundError
	if errors.As(err, &notFound) {
		return fiber.NewError(fiber.StatusNotFound, notFound.Error())
	}

	var conflict *repository.ConflictError
	if errors.As(err, &conflict) {
		return fiber.NewError(fiber.StatusConflict, conflict.Error())
	}

	return err
}
