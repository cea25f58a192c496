package postgres

import "github.com/dkozyrev/foodway/internal/domain"

// destinationRow - одна плоская строка из запроса пунктов маршрута.
// Поля продуктовой позиции nullable: left join порождает строку-заглушку
// для пункта без позиций.
type destinationRow struct {
	RouteID       int64
	DestinationID int64
	AddressID     int64
	Collection    bool

	Street     string
	City       string
	State      string
	PostalCode string
	Country    string

	LineID       *int64
	ProductID    *int64
	Quantity     *int
	ProductName  *string
	CategoryName *string
}

// groupDestinations сворачивает плоские строки в список пунктов с вложенными
// позициями. Порядок пунктов - порядок первого появления в строках. Позиция
// добавляется только когда left join реально вернул продукт: строка-заглушка
// пункта без позиций распознается по NULL в id позиции.
//
// Чистая функция: не трогает базу, тестируется на срезах строк.
func groupDestinations(rows []destinationRow) []*domain.Destination {
	var ordered []*domain.Destination
	byID := make(map[int64]*domain.Destination)

	for _, row := range rows {
		dest, ok := byID[row.DestinationID]
		if !ok {
			dest = &domain.Destination{
				ID:         row.DestinationID,
				RouteID:    row.RouteID,
				AddressID:  row.AddressID,
				Collection: row.Collection,
				Address: &domain.Address{
					ID:         row.AddressID,
					Street:     row.Street,
					City:       row.City,
					State:      row.State,
					PostalCode: row.PostalCode,
					Country:    row.Country,
				},
				Products: []*domain.DestinationProduct{},
			}
			byID[row.DestinationID] = dest
			ordered = append(ordered, dest)
		}

		if row.LineID == nil {
			continue
		}

		line := &domain.DestinationProduct{
			ID:            *row.LineID,
			DestinationID: row.DestinationID,
			ProductID:     *row.ProductID,
		}
		if row.Quantity != nil {
			line.Quantity = *row.Quantity
		}
		if row.ProductName != nil {
			line.Product = *row.ProductName
		}
		if row.CategoryName != nil {
			line.Category = *row.CategoryName
		}
		dest.Products = append(dest.Products, line)
	}

	return ordered
}

// attachDestinations раскладывает плоские строки по маршрутам: сначала
// группировка по id маршрута, внутри - то же сворачивание, что и для
// одиночного чтения. Маршрутам без строк достается пустой список пунктов.
func attachDestinations(routes []*domain.Route, rows []destinationRow) {
	byRoute := make(map[int64][]destinationRow)
	for _, row := range rows {
		byRoute[row.RouteID] = append(byRoute[row.RouteID], row)
	}

	for _, route := range routes {
		route.Destinations = groupDestinations(byRoute[route.ID])
		if route.Destinations == nil {
			route.Destinations = []*domain.Destination{}
		}
	}
}
