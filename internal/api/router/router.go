package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/hire-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/hire-notifier/internal/api/handlers/notification"
	"github.com/aliskhannn/hire-notifier/internal/api/handlers/whatsapp"
	"github.com/aliskhannn/hire-notifier/internal/api/ws"
	"github.com/aliskhannn/hire-notifier/internal/middlewares"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	WhatsApp     *whatsapp.Handler
	Notification *notification.Handler
	Event        *event.Handler
	Hub          *ws.Hub
	Metrics      prometheus.Gatherer
}

func New(h Handlers) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	wa := e.Group("/api/whatsapp")
	{
		wa.GET("/status", h.WhatsApp.Status)
		wa.GET("/qr", h.WhatsApp.QR)
		wa.POST("/logout", h.WhatsApp.Logout)
		wa.POST("/reconnect", h.WhatsApp.Reconnect)
		wa.POST("/send", h.WhatsApp.Send)
		wa.POST("/send-bulk", h.WhatsApp.SendBulk)
		wa.POST("/send-media", h.WhatsApp.SendMedia)
		wa.GET("/contacts", h.WhatsApp.Contacts)
	}

	api := e.Group("/api/notifications")
	{
		api.POST("", h.Notification.Create)
		api.POST("/bulk", h.Notification.CreateBulk)
		api.GET("", h.Notification.List)
		api.GET("/:id/status", h.Notification.GetStatus)
		api.PATCH("/:id/read", h.Notification.MarkAsRead)
		api.DELETE("/:id", h.Notification.Delete)
	}

	e.POST("/api/events", h.Event.Publish)
	e.GET("/ws/whatsapp", h.Hub.Register)

	if h.Metrics != nil {
		e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Metrics, promhttp.HandlerOpts{})))
	}

	return e
}
