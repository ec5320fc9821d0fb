package delivery

import (
	"net/http"

	authdelivery "chat-backend/internal/auth/delivery"
	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/notification"
	"chat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type registerDeviceRequest struct {
	Token      string `json:"token"`
	DeviceInfo string `json:"deviceInfo"`
}

// DeviceHandler manages push registrations for the current user
type DeviceHandler struct {
	service *notification.Service
	verbose bool
}

func NewDeviceHandler(service *notification.Service, verbose bool) *DeviceHandler {
	return &DeviceHandler{service: service, verbose: verbose}
}

// Register stores a device token
// POST /api/devices
func (h *DeviceHandler) Register(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}

	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, notification.ErrTokenRequired.Wrap(err), h.verbose)
		return
	}

	if err := h.service.RegisterDevice(c.Request.Context(), user.ID, req.Token, req.DeviceInfo); err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Device registered",
		"pushEnabled": h.service.Enabled(),
	})
}

// Unregister removes one of the caller's device tokens
// DELETE /api/devices/:token
func (h *DeviceHandler) Unregister(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}

	if err := h.service.UnregisterDevice(c.Request.Context(), user.ID, c.Param("token")); err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Device unregistered"})
}
