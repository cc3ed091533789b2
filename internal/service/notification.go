package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/realtime"
	"storefront-checkout/internal/repository"

	"github.com/google/uuid"
)

const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindWarning = "warning"
	KindError   = "error"
)

type NotifyOptions struct {
	ActionURL    string
	ActionText   string
	ScheduledFor *time.Time
	// TriggerToast requests a best-effort real-time push on top of the
	// durable notification row.
	TriggerToast    bool
	ToastDurationMs int
	Persistent      bool
}

type SystemAlert struct {
	Kind     string // maintenance, security, update, announcement
	Title    string
	Message  string
	Severity string // low, medium, high, critical
	// UserIDs narrows the broadcast; empty targets all verified users.
	UserIDs []string
}

type NotificationService interface {
	Notify(ctx context.Context, userID, title, message, kind string, opts NotifyOptions) (*model.Notification, error)
	OrderConfirmed(ctx context.Context, userID, orderID string) error
	OrderShipped(ctx context.Context, userID, orderID, trackingNumber string) error
	PaymentSucceeded(ctx context.Context, userID string, amount float64) error
	SystemAlert(ctx context.Context, alert SystemAlert) (*dto.SystemAlertResponse, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Notification, error)
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	publisher        realtime.Publisher
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	publisher realtime.Publisher,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
	}
}

// Notify persists the notification and, when requested, pushes it on the
// user's broadcast channel. The persisted write is the guarantee; a failed
// push is logged and swallowed.
func (s *notificationServiceImpl) Notify(ctx context.Context, userID, title, message, kind string, opts NotifyOptions) (*model.Notification, error) {
	if kind == "" {
		kind = KindInfo
	}

	notification := &model.Notification{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        title,
		Message:      message,
		Kind:         kind,
		ActionURL:    opts.ActionURL,
		ActionText:   opts.ActionText,
		ScheduledFor: opts.ScheduledFor,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("store notification: %w", err)
	}

	if opts.TriggerToast {
		duration := opts.ToastDurationMs
		if duration == 0 {
			duration = 5000
		}

		toast := realtime.ToastPayload{
			ID:         notification.ID,
			Kind:       kind,
			Title:      title,
			Message:    message,
			DurationMs: duration,
			Persistent: opts.Persistent,
			Timestamp:  time.Now().UTC(),
		}
		if opts.ActionURL != "" {
			label := opts.ActionText
			if label == "" {
				label = "View"
			}
			toast.Action = &realtime.ToastAction{Label: label, URL: opts.ActionURL}
		}

		if err := s.publisher.PublishToast(ctx, userID, toast); err != nil {
			slog.Warn("realtime toast publish failed",
				slog.String("user_id", userID),
				slog.String("notification_id", notification.ID),
				slog.String("error", err.Error()))
		}
	}

	return notification, nil
}

func (s *notificationServiceImpl) OrderConfirmed(ctx context.Context, userID, orderID string) error {
	_, err := s.Notify(ctx, userID,
		"Order Confirmed",
		fmt.Sprintf("Your order #%s has been confirmed and is being processed.", orderID),
		KindSuccess,
		NotifyOptions{
			ActionURL:       fmt.Sprintf("/profile/orders/%s", orderID),
			ActionText:      "View Order",
			TriggerToast:    true,
			ToastDurationMs: 7000,
		})
	return err
}

func (s *notificationServiceImpl) OrderShipped(ctx context.Context, userID, orderID, trackingNumber string) error {
	message := fmt.Sprintf("Your order #%s has been shipped.", orderID)
	if trackingNumber != "" {
		message = fmt.Sprintf("Your order #%s has been shipped with tracking number %s.", orderID, trackingNumber)
	}

	_, err := s.Notify(ctx, userID, "Order Shipped", message, KindInfo,
		NotifyOptions{
			ActionURL:       fmt.Sprintf("/profile/orders/%s", orderID),
			ActionText:      "Track Order",
			TriggerToast:    true,
			ToastDurationMs: 7000,
		})
	return err
}

func (s *notificationServiceImpl) PaymentSucceeded(ctx context.Context, userID string, amount float64) error {
	_, err := s.Notify(ctx, userID,
		"Payment Successful",
		fmt.Sprintf("Your payment of $%.2f has been processed successfully.", amount),
		KindSuccess,
		NotifyOptions{TriggerToast: true})
	return err
}

// SystemAlert fans one message out to the target users, tolerating partial
// failure: it reports counts instead of aborting on the first error.
func (s *notificationServiceImpl) SystemAlert(ctx context.Context, alert SystemAlert) (*dto.SystemAlertResponse, error) {
	userIDs := alert.UserIDs
	if len(userIDs) == 0 {
		var err error
		userIDs, err = s.userRepo.VerifiedUserIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve alert recipients: %w", err)
		}
	}

	kind := KindInfo
	durationMs := 7000
	persistent := false
	switch alert.Severity {
	case "critical":
		kind = KindError
		durationMs = 10000
		persistent = true
	case "high":
		kind = KindWarning
		persistent = true
	}

	succeeded := 0
	for _, userID := range userIDs {
		_, err := s.Notify(ctx, userID, alert.Title, alert.Message, kind, NotifyOptions{
			TriggerToast:    true,
			ToastDurationMs: durationMs,
			Persistent:      persistent,
		})
		if err != nil {
			slog.Warn("system alert delivery failed",
				slog.String("user_id", userID), slog.String("error", err.Error()))
			continue
		}
		succeeded++
	}

	slog.Info("system alert sent",
		slog.String("kind", alert.Kind),
		slog.Int("succeeded", succeeded),
		slog.Int("total", len(userIDs)))

	return &dto.SystemAlertResponse{
		Succeeded: succeeded,
		Failed:    len(userIDs) - succeeded,
		Total:     len(userIDs),
	}, nil
}

func (s *notificationServiceImpl) ListForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID, 50)
}
