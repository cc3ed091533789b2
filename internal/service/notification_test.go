package service

import (
	"context"
	"errors"
	"testing"

	"storefront-checkout/internal/model"
	"storefront-checkout/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockNotificationRepository implements repository.NotificationRepository
type MockNotificationRepository struct {
	Created   []*model.Notification
	CreateErr error
	// FailForUsers makes Create fail for specific user ids.
	FailForUsers map[string]bool
}

func (m *MockNotificationRepository) Create(_ context.Context, notification *model.Notification) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.FailForUsers[notification.UserID] {
		return errors.New("insert failed")
	}
	m.Created = append(m.Created, notification)
	return nil
}

func (m *MockNotificationRepository) ListByUser(_ context.Context, _ string, _ int) ([]*model.Notification, error) {
	return m.Created, nil
}

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	VerifiedIDs []string
}

func (m *MockUserRepository) FindByID(_ context.Context, _ string) (*model.UserProfile, error) {
	return nil, errors.New("not found")
}

func (m *MockUserRepository) VerifiedUserIDs(_ context.Context) ([]string, error) {
	return m.VerifiedIDs, nil
}

// MockPublisher implements realtime.Publisher
type MockPublisher struct {
	Published []realtime.ToastPayload
	Users     []string
	Err       error
}

func (m *MockPublisher) PublishToast(_ context.Context, userID string, toast realtime.ToastPayload) error {
	if m.Err != nil {
		return m.Err
	}
	m.Users = append(m.Users, userID)
	m.Published = append(m.Published, toast)
	return nil
}

type notificationFixture struct {
	repo      *MockNotificationRepository
	users     *MockUserRepository
	publisher *MockPublisher
	svc       NotificationService
}

func newNotificationFixture() *notificationFixture {
	f := &notificationFixture{
		repo:      &MockNotificationRepository{},
		users:     &MockUserRepository{},
		publisher: &MockPublisher{},
	}
	f.svc = NewNotificationService(f.repo, f.users, f.publisher)
	return f
}

func TestNotify_PersistsAndPushes(t *testing.T) {
	f := newNotificationFixture()

	notification, err := f.svc.Notify(context.Background(), "user-1", "Hello", "World", KindInfo,
		NotifyOptions{
			TriggerToast:    true,
			ToastDurationMs: 3000,
			ActionURL:       "/somewhere",
			ActionText:      "Go",
		})

	require.NoError(t, err)
	assert.NotEmpty(t, notification.ID)

	require.Len(t, f.repo.Created, 1)
	assert.Equal(t, "user-1", f.repo.Created[0].UserID)

	require.Len(t, f.publisher.Published, 1)
	toast := f.publisher.Published[0]
	assert.Equal(t, notification.ID, toast.ID)
	assert.Equal(t, 3000, toast.DurationMs)
	require.NotNil(t, toast.Action)
	assert.Equal(t, "Go", toast.Action.Label)
	assert.Equal(t, "/somewhere", toast.Action.URL)
	assert.Equal(t, []string{"user-1"}, f.publisher.Users)
}

func TestNotify_NoToastWhenNotRequested(t *testing.T) {
	f := newNotificationFixture()

	_, err := f.svc.Notify(context.Background(), "user-1", "Hello", "World", KindInfo, NotifyOptions{})

	require.NoError(t, err)
	assert.Len(t, f.repo.Created, 1)
	assert.Empty(t, f.publisher.Published)
}

func TestNotify_PublishFailureIsSwallowed(t *testing.T) {
	f := newNotificationFixture()
	f.publisher.Err = errors.New("channel gone")

	notification, err := f.svc.Notify(context.Background(), "user-1", "Hello", "World", KindSuccess,
		NotifyOptions{TriggerToast: true})

	// The durable row is the contract; the push is best-effort.
	require.NoError(t, err)
	assert.NotNil(t, notification)
	assert.Len(t, f.repo.Created, 1)
}

func TestNotify_PersistFailureSurfaces(t *testing.T) {
	f := newNotificationFixture()
	f.repo.CreateErr = errors.New("db down")

	_, err := f.svc.Notify(context.Background(), "user-1", "Hello", "World", KindInfo,
		NotifyOptions{TriggerToast: true})

	require.Error(t, err)
	assert.Empty(t, f.publisher.Published)
}

func TestOrderConfirmedTemplate(t *testing.T) {
	f := newNotificationFixture()

	err := f.svc.OrderConfirmed(context.Background(), "user-1", "order-42")

	require.NoError(t, err)
	require.Len(t, f.repo.Created, 1)
	created := f.repo.Created[0]
	assert.Equal(t, "Order Confirmed", created.Title)
	assert.Equal(t, KindSuccess, created.Kind)
	assert.Equal(t, "/profile/orders/order-42", created.ActionURL)
	assert.Contains(t, created.Message, "order-42")

	require.Len(t, f.publisher.Published, 1)
	assert.Equal(t, 7000, f.publisher.Published[0].DurationMs)
}

func TestOrderShippedTemplate(t *testing.T) {
	f := newNotificationFixture()

	err := f.svc.OrderShipped(context.Background(), "user-1", "order-42", "TRACK-9")

	require.NoError(t, err)
	created := f.repo.Created[0]
	assert.Equal(t, "Order Shipped", created.Title)
	assert.Equal(t, KindInfo, created.Kind)
	assert.Contains(t, created.Message, "TRACK-9")
	assert.Equal(t, "Track Order", created.ActionText)
}

func TestPaymentSucceededTemplate(t *testing.T) {
	f := newNotificationFixture()

	err := f.svc.PaymentSucceeded(context.Background(), "user-1", 64.78)

	require.NoError(t, err)
	created := f.repo.Created[0]
	assert.Equal(t, "Payment Successful", created.Title)
	assert.Contains(t, created.Message, "$64.78")
	assert.Empty(t, created.ActionURL)
}

func TestSystemAlert_PartialFailureReportsCounts(t *testing.T) {
	f := newNotificationFixture()
	f.repo.FailForUsers = map[string]bool{"user-2": true}

	result, err := f.svc.SystemAlert(context.Background(), SystemAlert{
		Kind:    "maintenance",
		Title:   "Scheduled maintenance",
		Message: "The store will be offline tonight.",
		UserIDs: []string{"user-1", "user-2", "user-3"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, f.repo.Created, 2)
}

func TestSystemAlert_DefaultsToVerifiedUsers(t *testing.T) {
	f := newNotificationFixture()
	f.users.VerifiedIDs = []string{"user-a", "user-b"}

	result, err := f.svc.SystemAlert(context.Background(), SystemAlert{
		Kind:    "announcement",
		Title:   "New feature",
		Message: "Realtime order tracking is live.",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, f.publisher.Users)
}

func TestSystemAlert_CriticalSeverity(t *testing.T) {
	f := newNotificationFixture()

	_, err := f.svc.SystemAlert(context.Background(), SystemAlert{
		Kind:     "security",
		Title:    "Password reset required",
		Message:  "Please reset your password.",
		Severity: "critical",
		UserIDs:  []string{"user-1"},
	})

	require.NoError(t, err)
	require.Len(t, f.publisher.Published, 1)
	toast := f.publisher.Published[0]
	assert.Equal(t, KindError, f.repo.Created[0].Kind)
	assert.True(t, toast.Persistent)
	assert.Equal(t, 10000, toast.DurationMs)
}
