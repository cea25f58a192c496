package domain

import "strings"

// Truck - грузовик автопарка. На него ссылаются маршруты через Truck_ID,
// поэтому удаление занятого грузовика требует force-режима.
type Truck struct {
	ID           int64  `json:"id"`
	Registration string `json:"Registration"`
	Capacity     int    `json:"Capacity"`
	Model        string `json:"Model"`
	Condition    int    `json:"Condition"`
}

// NormalizeRegistration нормализует регистрационный номер
// (убирает пробелы, приводит к верхнему регистру)
func NormalizeRegistration(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}

// Validate проверяет корректность данных грузовика
func (t *Truck) Validate() error {
	if t.Registration == "" {
		return ErrInvalidRegistration
	}
	t.Registration = NormalizeRegistration(t.Registration)
	if len(t.Registration) < 4 || len(t.Registration) > 20 {
		return ErrInvalidRegistration
	}
	if t.Capacity <= 0 {
		return ErrInvalidTruckData
	}
	if t.Condition < 1 || t.Condition > 5 {
		return ErrInvalidCondition
	}
	return nil
}
