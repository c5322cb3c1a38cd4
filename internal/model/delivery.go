package model

// DeliveryResult is the outcome of a single outbound WhatsApp send.
type DeliveryResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"` // provider assigned id
	Error     string `json:"error,omitempty"`
	Err       error  `json:"-"`
}

// Failed builds an unsuccessful result from err.
func Failed(err error) DeliveryResult {
	return DeliveryResult{Success: false, Error: err.Error(), Err: err}
}

// Contact holds the delivery addresses of a user.
type Contact struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}
