package domain

import (
	"strings"
	"time"
)

// UserRole представляет роль пользователя в системе
type UserRole string

const (
	RoleAdmin  UserRole = "admin"  // Администратор системы
	RoleDriver UserRole = "driver" // Водитель, закрепляется за маршрутами
	RoleUser   UserRole = "user"   // Обычный пользователь (донор или получатель)
)

// User - пользователь системы. Водители назначаются на маршруты,
// обычные пользователи оставляют пожертвования и заявки.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Никогда не возвращаем в JSON
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone,omitempty"`
	AddressID    *int64     `json:"address_id,omitempty"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// FullName возвращает полное имя пользователя
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin проверяет, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsDriver проверяет, является ли пользователь водителем
func (u *User) IsDriver() bool {
	return u.Role == RoleDriver
}

// Validate проверяет корректность данных пользователя
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if u.FirstName == "" || u.LastName == "" {
		return ErrInvalidUserData
	}
	if u.Role != RoleAdmin && u.Role != RoleDriver && u.Role != RoleUser {
		return ErrInvalidRole
	}
	return nil
}
