package http

import (
	"context"
	"testing"
	"time"

	"github.com/dkozyrev/foodway/internal/delivery/http/middleware"
	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/jwt"
)

// CreateTestUser создает тестового пользователя
func CreateTestUser(id int64, email string, role domain.UserRole) *domain.User {
	return &domain.User{
		ID:        id,
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Phone:     "+7 999 999 99 99",
		Role:      role,
		IsActive:  true,
	}
}

// CreateTestTruck создает тестовый грузовик
func CreateTestTruck(id int64, registration string) *domain.Truck {
	return &domain.Truck{
		ID:           id,
		Registration: registration,
		Capacity:     1500,
		Model:        "Test Model",
		Condition:    4,
	}
}

// CreateTestRoute создает тестовый маршрут с одной точкой
func CreateTestRoute(id, truckID int64, collection bool) *domain.Route {
	date, _ := time.Parse(domain.DateLayout, "2025-06-15")
	return &domain.Route{
		ID:         id,
		Date:       domain.Date{Time: date},
		TruckID:    truckID,
		Collection: collection,
		Destinations: []*domain.Destination{
			{
				ID:         1,
				RouteID:    id,
				AddressID:  1,
				Collection: collection,
				Products:   []*domain.DestinationProduct{},
			},
		},
	}
}

// CreateAuthContext создает контекст с claims пользователя для тестирования
func CreateAuthContext(t *testing.T, userID int64, email string, role domain.UserRole) context.Context {
	t.Helper()
	claims := &jwt.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
	}
	return context.WithValue(context.Background(), middleware.UserClaimsKey, claims)
}

// CreateTestJWTToken создает тестовый JWT токен
func CreateTestJWTToken(user *domain.User, secretKey string) (string, error) {
	tokenService := jwt.NewTokenService(secretKey, 15*time.Minute)
	token, _, err := tokenService.Generate(user)
	return token, err
}
