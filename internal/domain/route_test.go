package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate_JSON(t *testing.T) {
	t.Run("сериализация в YYYY-MM-DD", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`"2025-06-15"`), &d))

		out, err := json.Marshal(d)
		assert.NoError(t, err)
		assert.Equal(t, `"2025-06-15"`, string(out))
	})

	t.Run("неверный формат дает ErrInvalidDate", func(t *testing.T) {
		var d Date
		err := json.Unmarshal([]byte(`"15/06/2025"`), &d)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("null дает нулевую дату", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})
}

func TestRoute_Validate(t *testing.T) {
	valid := func() *Route {
		var d Date
		_ = json.Unmarshal([]byte(`"2025-06-15"`), &d)
		return &Route{
			Date:    d,
			TruckID: 3,
			Destinations: []*Destination{
				{AddressID: 7, Products: []*DestinationProduct{{ProductID: 2, Quantity: 5}}},
			},
		}
	}

	t.Run("валидный маршрут проходит", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("маршрут без пунктов отклоняется", func(t *testing.T) {
		r := valid()
		r.Destinations = nil
		assert.ErrorIs(t, r.Validate(), ErrInvalidRouteData)
	})

	t.Run("нулевая дата отклоняется", func(t *testing.T) {
		r := valid()
		r.Date = Date{}
		assert.ErrorIs(t, r.Validate(), ErrInvalidDate)
	})

	t.Run("нулевое количество в позиции отклоняется", func(t *testing.T) {
		r := valid()
		r.Destinations[0].Products[0].Quantity = 0
		assert.ErrorIs(t, r.Validate(), ErrInvalidQuantity)
	})

	t.Run("пункт без позиций допустим", func(t *testing.T) {
		r := valid()
		r.Destinations[0].Products = nil
		assert.NoError(t, r.Validate())
	})
}

func TestTruck_Validate(t *testing.T) {
	t.Run("номер нормализуется", func(t *testing.T) {
		tr := &Truck{Registration: "ab 123 cd", Capacity: 1000, Model: "M", Condition: 3}
		assert.NoError(t, tr.Validate())
		assert.Equal(t, "AB123CD", tr.Registration)
	})

	t.Run("слишком короткий номер отклоняется", func(t *testing.T) {
		tr := &Truck{Registration: "AB", Capacity: 1000, Condition: 3}
		assert.ErrorIs(t, tr.Validate(), ErrInvalidRegistration)
	})

	t.Run("состояние вне 1-5 отклоняется", func(t *testing.T) {
		tr := &Truck{Registration: "AB123CD", Capacity: 1000, Condition: 0}
		assert.ErrorIs(t, tr.Validate(), ErrInvalidCondition)
	})
}
