package model

import "time"

type Product struct {
	ID             string  `gorm:"primaryKey;size:64;not null" json:"id"`
	Name           string  `gorm:"size:255;not null" json:"name"`
	Description    string  `gorm:"size:1024" json:"description"`
	Price          float64 `gorm:"not null" json:"price"`
	SalePrice      float64 `json:"sale_price"`
	IsSale         bool    `gorm:"index" json:"is_sale"`
	InventoryCount int     `gorm:"not null" json:"inventory_count"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectivePrice is the unit price charged at settlement time: the sale
// price while the product is on sale, the regular price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.IsSale {
		return p.SalePrice
	}
	return p.Price
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"size:64;uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID string `gorm:"size:64;uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID             string  `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID         string  `gorm:"size:64;index;not null" json:"user_id"`
	Status         string  `gorm:"size:32;index;not null" json:"status"`         // pending, processing
	PaymentStatus  string  `gorm:"size:32;index;not null" json:"payment_status"` // pending, completed, failed
	Subtotal       float64 `gorm:"not null" json:"subtotal"`
	TaxAmount      float64 `gorm:"not null" json:"tax_amount"`
	ShippingAmount float64 `gorm:"not null" json:"shipping_amount"`
	TotalAmount    float64 `gorm:"not null" json:"total_amount"`
	// Address blobs are frozen at checkout time, JSON-encoded.
	ShippingAddress string `gorm:"size:1024;not null" json:"shipping_address"`
	BillingAddress  string `gorm:"size:1024;not null" json:"billing_address"`
	PaymentMethodID string `gorm:"size:128" json:"payment_method_id"`
	// PaymentRef is the gateway's attempt id, written regardless of outcome.
	PaymentRef string `gorm:"size:128;index" json:"payment_ref"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    string  `gorm:"size:64;index;not null" json:"order_id"`
	ProductID  string  `gorm:"size:64;index;not null" json:"product_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	TotalPrice float64 `gorm:"not null" json:"total_price"`
	// ProductSnapshot freezes the product record at purchase time so later
	// catalog edits never alter historical orders. JSON-encoded.
	ProductSnapshot string `gorm:"size:4096" json:"product_snapshot"`
	CreatedAt       time.Time
}

type Notification struct {
	ID           string     `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID       string     `gorm:"size:64;index;not null" json:"user_id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Message      string     `gorm:"size:1024;not null" json:"message"`
	Kind         string     `gorm:"size:16;not null" json:"kind"` // info, success, warning, error
	ActionURL    string     `gorm:"size:512" json:"action_url,omitempty"`
	ActionText   string     `gorm:"size:64" json:"action_text,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type UserProfile struct {
	ID            string `gorm:"primaryKey;size:64;not null" json:"id"`
	Email         string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role          string `gorm:"size:32;index;not null" json:"role"` // user, admin
	EmailVerified bool   `gorm:"index" json:"email_verified"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
