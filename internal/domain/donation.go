package domain

// DonationStatus представляет статус пожертвования
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCollected DonationStatus = "collected"
	DonationCancelled DonationStatus = "cancelled"
)

// Donation - пожертвование продуктов от пользователя
type Donation struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"User_ID"`
	ProductID int64          `json:"Product_ID"`
	Quantity  int            `json:"Quantity"`
	Date      Date           `json:"Date"`
	Status    DonationStatus `json:"Status"`

	// Денормализованные поля, заполняются при чтении
	User    string `json:"User,omitempty"`
	Product string `json:"Product,omitempty"`
}

// Validate проверяет корректность пожертвования
func (d *Donation) Validate() error {
	if d.UserID <= 0 || d.ProductID <= 0 {
		return ErrInvalidDonationData
	}
	if d.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if d.Date.IsZero() {
		return ErrInvalidDate
	}
	switch d.Status {
	case DonationPending, DonationCollected, DonationCancelled:
		return nil
	default:
		return ErrInvalidStatus
	}
}
