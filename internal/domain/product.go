package domain

// Product - продукт из каталога. На него ссылаются позиции пунктов маршрута,
// пожертвования и заявки.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"Name"`
	CategoryID int64  `json:"Category_ID"`

	Category string `json:"Category,omitempty"`
}

// Category - категория продуктов
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"Name"`
}

// Validate проверяет корректность продукта
func (p *Product) Validate() error {
	if p.Name == "" || p.CategoryID <= 0 {
		return ErrInvalidProductData
	}
	return nil
}
