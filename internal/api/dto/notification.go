package dto

import "github.com/aliskhannn/hire-notifier/internal/model"

type CreateNotificationRequest struct {
	UserID   string         `json:"user_id" validate:"required"`
	Title    string         `json:"title" validate:"required"`
	Message  string         `json:"message" validate:"required"`
	Type     string         `json:"type" validate:"required,oneof=job payment interview status system"`
	Category string         `json:"category"`
	Link     string         `json:"link" validate:"omitempty,url"`
	Channels []string       `json:"channels" validate:"required,min=1"`
	Meta     map[string]any `json:"meta"`
}

type BulkNotificationRequest struct {
	UserIDs  []string       `json:"user_ids" validate:"required,min=1,dive,required"`
	Title    string         `json:"title" validate:"required"`
	Message  string         `json:"message" validate:"required"`
	Type     string         `json:"type" validate:"required,oneof=job payment interview status system"`
	Category string         `json:"category"`
	Link     string         `json:"link" validate:"omitempty,url"`
	Channels []string       `json:"channels" validate:"required,min=1"`
	Meta     map[string]any `json:"meta"`
}

// BulkNotificationResponse lists the created records and how many users were skipped.
type BulkNotificationResponse struct {
	Created       int                  `json:"created"`
	Failed        int                  `json:"failed"`
	Notifications []model.Notification `json:"notifications"`
}
