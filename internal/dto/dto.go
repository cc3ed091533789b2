package dto

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type CheckoutRequest struct {
	ShippingAddress Address `json:"shippingAddress"`
	BillingAddress  Address `json:"billingAddress"`
	PaymentMethodID string  `json:"paymentMethodId,omitempty"`
}

type PaymentIntent struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

type CheckoutResponse struct {
	Success        bool           `json:"success,omitempty"`
	RequiresAction bool           `json:"requiresAction,omitempty"`
	OrderID        string         `json:"orderId"`
	PaymentIntent  *PaymentIntent `json:"paymentIntent,omitempty"`
}

type ErrorResponse struct {
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type ToastRequest struct {
	Kind       string `json:"kind"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	DurationMs int    `json:"durationMs,omitempty"`
	Persistent bool   `json:"persistent,omitempty"`
	ActionURL  string `json:"actionUrl,omitempty"`
	ActionText string `json:"actionText,omitempty"`
}

type SystemAlertRequest struct {
	Kind     string   `json:"kind"` // maintenance, security, update, announcement
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity string   `json:"severity,omitempty"` // low, medium, high, critical
	UserIDs  []string `json:"userIds,omitempty"`  // empty targets all verified users
}

type SystemAlertResponse struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}
