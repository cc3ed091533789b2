package handler

import (
	"net/http"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/middleware"
	"storefront-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	notifications, err := h.notificationService.ListForUser(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notifications)
}

// TriggerToast persists and pushes a toast for the calling user.
func (h *NotificationHandler) TriggerToast(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	var req dto.ToastRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_body", "Invalid request body")
	}
	if req.Title == "" || req.Message == "" {
		return errorJSON(c, http.StatusBadRequest, "validation_error", "title and message are required")
	}

	notification, err := h.notificationService.Notify(ctx, userID, req.Title, req.Message, req.Kind,
		service.NotifyOptions{
			ActionURL:       req.ActionURL,
			ActionText:      req.ActionText,
			TriggerToast:    true,
			ToastDurationMs: req.DurationMs,
			Persistent:      req.Persistent,
		})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notification)
}

// SendSystemAlert broadcasts a maintenance/security message. Routed behind
// the admin guard.
func (h *NotificationHandler) SendSystemAlert(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SystemAlertRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_body", "Invalid request body")
	}
	if req.Title == "" || req.Message == "" {
		return errorJSON(c, http.StatusBadRequest, "validation_error", "title and message are required")
	}

	result, err := h.notificationService.SystemAlert(ctx, service.SystemAlert{
		Kind:     req.Kind,
		Title:    req.Title,
		Message:  req.Message,
		Severity: req.Severity,
		UserIDs:  req.UserIDs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
