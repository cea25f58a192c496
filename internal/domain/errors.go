package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// Route errors
var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrInvalidRouteData = errors.New("invalid route data")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
)

// Destination errors
var (
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrInvalidDestinationData = errors.New("invalid destination data")
)

// DestinationProduct errors
var (
	ErrProductLineNotFound = errors.New("product line not found")
	ErrInvalidProductLine  = errors.New("invalid product line")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
)

// Truck errors
var (
	ErrTruckNotFound       = errors.New("truck not found")
	ErrInvalidTruckData    = errors.New("invalid truck data")
	ErrInvalidRegistration = errors.New("invalid registration plate")
	ErrInvalidCondition    = errors.New("condition must be between 1 and 5")
	ErrTruckInUse          = errors.New("truck is referenced by existing routes")
)

// Address errors
var (
	ErrAddressNotFound    = errors.New("address not found")
	ErrInvalidAddressData = errors.New("invalid address data")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Product/Category errors
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductData = errors.New("invalid product data")
	ErrCategoryNotFound   = errors.New("category not found")
)

// Donation errors
var (
	ErrDonationNotFound    = errors.New("donation not found")
	ErrInvalidDonationData = errors.New("invalid donation data")
)

// Request errors
var (
	ErrRequestNotFound    = errors.New("request not found")
	ErrInvalidRequestData = errors.New("invalid request data")
)

// Status errors (donations/requests)
var (
	ErrInvalidStatus = errors.New("invalid status")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// General errors
var (
	ErrInternal   = errors.New("internal server error")
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
)

// IsNotFound сообщает, относится ли ошибка к категории "не найдено" (HTTP 404)
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrRouteNotFound, ErrDestinationNotFound, ErrProductLineNotFound,
		ErrTruckNotFound, ErrAddressNotFound, ErrUserNotFound,
		ErrProductNotFound, ErrCategoryNotFound, ErrDonationNotFound,
		ErrRequestNotFound, ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidation сообщает, относится ли ошибка к категории валидации (HTTP 400)
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidRouteData, ErrInvalidDate, ErrInvalidDestinationData,
		ErrInvalidProductLine, ErrInvalidQuantity, ErrInvalidTruckData,
		ErrInvalidRegistration, ErrInvalidCondition, ErrInvalidAddressData,
		ErrInvalidEmail, ErrInvalidPassword, ErrInvalidUserData, ErrInvalidRole,
		ErrInvalidProductData, ErrInvalidDonationData, ErrInvalidRequestData,
		ErrInvalidStatus, ErrBadRequest,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict сообщает, относится ли ошибка к категории конфликтов.
// Отказ удалить занятый грузовик исторически возвращается как 400, а не 409.
func IsConflict(err error) bool {
	return errors.Is(err, ErrTruckInUse) || errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrUserAlreadyExists)
}
