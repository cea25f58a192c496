package domain

// Address - почтовый адрес. На него ссылаются пункты маршрутов и пользователи,
// но никто им не владеет: удаление пункта не удаляет адрес.
type Address struct {
	ID         int64  `json:"id"`
	Street     string `json:"Street"`
	City       string `json:"City"`
	State      string `json:"State"`
	PostalCode string `json:"Postal_Code"`
	Country    string `json:"Country"`
}

// Validate проверяет корректность адреса
func (a *Address) Validate() error {
	if a.Street == "" || a.City == "" || a.Country == "" {
		return ErrInvalidAddressData
	}
	return nil
}
