package domain

import (
	"strings"
	"time"
)

// DateLayout - формат календарной даты во внешнем API
const DateLayout = "2006-01-02"

// Date - календарная дата без времени суток.
// Сериализуется в JSON как "YYYY-MM-DD" (исторический формат API).
type Date struct {
	time.Time
}

// NewDate создает Date, отбрасывая время суток
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}

// Route (тур) - запланированный рейс одного грузовика на одну дату.
// Type=true - сбор продуктов (collection), Type=false - раздача (distribution).
// Маршрут владеет упорядоченным списком пунктов назначения.
type Route struct {
	ID         int64  `json:"id"`
	Date       Date   `json:"Date"`
	DriverID   *int64 `json:"User_ID"`
	TruckID    int64  `json:"Truck_ID"`
	Collection bool   `json:"Type"`

	// Связанные данные, заполняются при чтении
	Driver       *string        `json:"Driver,omitempty"`
	Truck        *Truck         `json:"Truck,omitempty"`
	Destinations []*Destination `json:"Destinations"`
}

// Destination - один пункт маршрута, привязан к адресу и несет
// список продуктовых позиций. Поле Type дублирует тип маршрута
// и каскадно обновляется вместе с ним.
type Destination struct {
	ID         int64 `json:"id"`
	RouteID    int64 `json:"Route_ID"`
	AddressID  int64 `json:"Address_ID"`
	Collection bool  `json:"Type"`

	Address  *Address              `json:"Address,omitempty"`
	Products []*DestinationProduct `json:"Products"`
}

// DestinationProduct - одна позиция "продукт + количество" в пункте маршрута
type DestinationProduct struct {
	ID            int64 `json:"id"`
	DestinationID int64 `json:"Destination_ID"`
	ProductID     int64 `json:"Product_ID"`
	Quantity      int   `json:"Quantity"`

	Product  string `json:"Product,omitempty"`
	Category string `json:"Category,omitempty"`
}

// Validate проверяет корректность данных маршрута перед созданием
func (r *Route) Validate() error {
	if r.Date.IsZero() {
		return ErrInvalidDate
	}
	if r.TruckID <= 0 {
		return ErrInvalidRouteData
	}
	if len(r.Destinations) == 0 {
		return ErrInvalidRouteData
	}
	for _, dest := range r.Destinations {
		if err := dest.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate проверяет корректность данных пункта маршрута.
// Пустой список продуктов допустим: пункт без позиций - легальное состояние.
func (d *Destination) Validate() error {
	if d.AddressID <= 0 {
		return ErrInvalidDestinationData
	}
	for _, line := range d.Products {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate проверяет продуктовую позицию. Количество строго положительное -
// правило применяется на каждом пути записи, затрагивающем quantity.
func (p *DestinationProduct) Validate() error {
	if p.ProductID <= 0 {
		return ErrInvalidProductLine
	}
	if p.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
