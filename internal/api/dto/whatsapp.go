package dto

import "time"

type SendRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type SendMediaRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	MediaURL  string `json:"media_url" validate:"required,url"`
	Caption   string `json:"caption"`
}

type SendBulkRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,required"`
	Message    string   `json:"message" validate:"required"`
	MediaURL   string   `json:"media_url" validate:"omitempty,url"`
	CampaignID string   `json:"campaign_id"`
}

// QRResponse carries the pairing code rendered as a PNG data URL.
type QRResponse struct {
	QR        string    `json:"qr"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SendResponse struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SendBulkResponse summarises a bulk send.
type SendBulkResponse struct {
	Total   int            `json:"total"`
	Sent    int            `json:"sent"`
	Failed  int            `json:"failed"`
	Results []SendResponse `json:"results"`
}
