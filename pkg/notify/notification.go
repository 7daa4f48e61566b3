package notify

import "time"

// Category classifies a notification by its origin.
type Category string

const (
	CategoryJob         Category = "job"
	CategoryApplication Category = "application"
	CategoryChat        Category = "chat"
	CategorySystem      Category = "system"
)

// Notification is a single inbox entry.
type Notification struct {
	// ID is unique and assigned at creation. IDs are monotonically
	// increasing so they distinguish creation order.
	ID string `json:"id"`

	// Title is the short display heading.
	Title string `json:"title"`

	// Message is the display body.
	Message string `json:"message"`

	// Category classifies the notification.
	Category Category `json:"category"`

	// Read is flipped to true by MarkAsRead/MarkAllAsRead, never back.
	Read bool `json:"read"`

	// CreatedAt is set at creation and immutable. It is serialized as
	// RFC 3339 and parsed back to time.Time on load.
	CreatedAt time.Time `json:"createdAt"`

	// Link is an optional deep-link target.
	Link string `json:"link,omitempty"`
}

// Draft is the caller-supplied portion of a new notification.
// ID, CreatedAt and Read are assigned by the store.
type Draft struct {
	Title    string
	Message  string
	Category Category
	Link     string
}
