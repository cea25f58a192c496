package domain

// RequestStatus представляет статус заявки на продукты
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestCancelled RequestStatus = "cancelled"
)

// Request - заявка получателя на продукты.
// Структурно повторяет Donation, но живет в своей таблице
// со своим жизненным циклом статусов.
type Request struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"User_ID"`
	ProductID int64         `json:"Product_ID"`
	Quantity  int           `json:"Quantity"`
	Date      Date          `json:"Date"`
	Status    RequestStatus `json:"Status"`

	User    string `json:"User,omitempty"`
	Product string `json:"Product,omitempty"`
}

// Validate проверяет корректность заявки
func (r *Request) Validate() error {
	if r.UserID <= 0 || r.ProductID <= 0 {
		return ErrInvalidRequestData
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.Date.IsZero() {
		return ErrInvalidDate
	}
	switch r.Status {
	case RequestPending, RequestFulfilled, RequestCancelled:
		return nil
	default:
		return ErrInvalidStatus
	}
}
