package notification

import "context"

// Service defines the notification business logic interface
type Service interface {
	// QueueNotification queues a notification for async fan-out.
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error

	// QueueBulkNotification queues notifications for several recipients.
	QueueBulkNotification(ctx context.Context, reqs []CreateNotificationRequest) error

	GetNotifications(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID string, req MarkAsReadRequest) error
	MarkAllAsRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, recipientID string, notificationID string) error

	// Subscribe opens a live event stream for a recipient.
	Subscribe(ctx context.Context, recipientID string) (<-chan SSEEvent, func())

	// Stop drains the queue and stops background workers.
	Stop()
}
