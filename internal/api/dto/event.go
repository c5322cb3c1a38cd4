package dto

import "encoding/json"

type PublishEventRequest struct {
	Type   string          `json:"type" validate:"required"`
	UserID string          `json:"user_id" validate:"required"`
	Data   json.RawMessage `json:"data" validate:"required"`
}
