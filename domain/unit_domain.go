package domain

import (
	"errors"
)

var (
	MessageSuccessCreateUnit = "unit created successfully"
	MessageSuccessGetUnits   = "units retrieved successfully"
	MessageSuccessGetUnit    = "unit retrieved successfully"

	MessageFailedCreateUnit = "failed to create unit"
	MessageFailedGetUnits   = "failed to retrieve units"
	MessageFailedGetUnit    = "failed to retrieve unit"

	ErrUnitNotFound      = errors.New("unit not found")
	ErrUnitAlreadyExists = errors.New("unit with the same symbol already exists")
)

type (
	CreateUnitRequest struct {
		Symbol string `json:"symbol" validate:"required,min=1,max=10"`
	}

	UnitResponse struct {
		ID     int64  `json:"id"`
		Symbol string `json:"symbol"`
	}
)
