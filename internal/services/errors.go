package services

import (
	"errors"
	"fmt"

	apierrors "uplcompare/internal/errors"
	"uplcompare/pkg/contracts/domain"
)

var (
	// ErrInvalidInput means a stored export request could not be decoded
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownKind means a name is not one of the four dataset kinds
	ErrUnknownKind = errors.New("unknown dataset kind")
)

// KnownKinds lists the names ErrUnknownKind is checked against
func KnownKinds() []string {
	return domain.KindNames()
}

// unknownKind reports name as not found, listing the kinds that exist
func unknownKind(name string) error {
	return apierrors.NewNotFoundError(fmt.Sprintf("dataset kind %q", name), ErrUnknownKind).
		WithContext("kind", name).
		WithContext("available", KnownKinds())
}
