package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInvalidRequest = errors.New("invalid request")

	ErrOrderStatusInvalid      = invalidRequest("order is already paid or closed")
	ErrInstallmentAmountTooLow = invalidRequest("order amount is below the installment minimum")
	ErrInstallmentCountInvalid = invalidRequest("installment count is not allowed")
	ErrPaymentMethodInvalid    = invalidRequest("payment method is not supported")
)

// invalidRequest builds a business error that matches ErrInvalidRequest with errors.Is.
func invalidRequest(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)
}
