package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/hire-notifier/internal/api/dto"
	mocks "github.com/aliskhannn/hire-notifier/internal/mocks/api/handlers/notification"
	"github.com/aliskhannn/hire-notifier/internal/model"
	"github.com/aliskhannn/hire-notifier/internal/repository/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func jsonBody(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.CreateNotificationRequest{
		UserID:   "u1",
		Title:    "Interview",
		Message:  "Your interview is tomorrow",
		Type:     "interview",
		Channels: []string{"dashboard", "email", "messaging"},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/notifications", jsonBody(reqBody))

	mockService.EXPECT().
		Notify(gomock.Any(), model.NotifyRequest{
			UserID:   "u1",
			Title:    "Interview",
			Message:  "Your interview is tomorrow",
			Type:     model.TypeInterview,
			Channels: []model.Channel{model.ChannelDashboard, model.ChannelEmail, model.ChannelWhatsApp},
		}).
		Return(model.Notification{ID: uuid.New(), UserID: "u1"}, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"missing title", dto.CreateNotificationRequest{UserID: "u1", Message: "m", Type: "job", Channels: []string{"dashboard"}}},
		{"unknown type", dto.CreateNotificationRequest{UserID: "u1", Title: "t", Message: "m", Type: "promo", Channels: []string{"dashboard"}}},
		{"no channels", dto.CreateNotificationRequest{UserID: "u1", Title: "t", Message: "m", Type: "job"}},
		{"unknown channel", dto.CreateNotificationRequest{UserID: "u1", Title: "t", Message: "m", Type: "job", Channels: []string{"sms"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupHandler(t)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/notifications", jsonBody(tt.body))

			handler.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
		})
	}
}

func TestHandler_Create_InternalError(t *testing.T) {
	handler, mockService := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/notifications", jsonBody(dto.CreateNotificationRequest{
		UserID: "u1", Title: "t", Message: "m", Type: "system", Channels: []string{"dashboard"},
	}))

	mockService.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(model.Notification{}, errors.New("db down"))

	handler.Create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestHandler_CreateBulk_PartialFailure(t *testing.T) {
	handler, mockService := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/notifications/bulk", jsonBody(dto.BulkNotificationRequest{
		UserIDs:  []string{"u1", "u2", "u3"},
		Title:    "Maintenance",
		Message:  "Portal is down tonight",
		Type:     "system",
		Channels: []string{"dashboard", "email"},
	}))

	var errs *multierror.Error
	errs = multierror.Append(errs, fmt.Errorf("user u2: %w", errors.New("db down")))

	mockService.EXPECT().
		NotifyBulk(gomock.Any(), []string{"u1", "u2", "u3"}, gomock.Any()).
		Return([]model.Notification{{UserID: "u1"}, {UserID: "u3"}}, errs.ErrorOrNil())

	handler.CreateBulk(c)

	require.Equal(t, http.StatusCreated, w.Result().StatusCode)

	var env struct {
		Success bool                         `json:"success"`
		Result  dto.BulkNotificationResponse `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 2, env.Result.Created)
	assert.Equal(t, 1, env.Result.Failed)
}

func TestHandler_List(t *testing.T) {
	handler, mockService := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/notifications?user_id=u1&unread=true", nil)

	mockService.EXPECT().
		ListForUser(gomock.Any(), "u1", true).
		Return([]model.Notification{{Message: "msg"}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_List_BadRequest(t *testing.T) {
	for _, target := range []string{"/api/notifications", "/api/notifications?user_id=u1&unread=maybe"} {
		handler, _ := setupHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)

		handler.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, target)
	}
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String()+"/status", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetDeliveryStatus(gomock.Any(), id).
		Return(model.SentStatus{Dashboard: true, Email: true}, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"email":true`)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String()+"/status", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetDeliveryStatus(gomock.Any(), id).
		Return(model.SentStatus{}, fmt.Errorf("get sent status: %w", notification.ErrNotificationNotFound))

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/notifications/abc/status", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_MarkAsRead_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/notifications/"+id.String()+"/read?user_id=u1", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().MarkAsRead(gomock.Any(), id, "u1").Return(nil)

	handler.MarkAsRead(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusOK},
		{"not found", notification.ErrNotificationNotFound, http.StatusNotFound},
		{"db error", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := setupHandler(t)
			id := uuid.New()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodDelete, "/api/notifications/"+id.String(), nil)
			c.Params = gin.Params{{Key: "id", Value: id.String()}}

			mockService.EXPECT().Delete(gomock.Any(), id).Return(tt.err)

			handler.Delete(c)

			assert.Equal(t, tt.status, w.Result().StatusCode)
		})
	}
}
