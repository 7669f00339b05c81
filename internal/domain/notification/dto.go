package notification

type NotificationResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	RefID     *string `json:"ref_id,omitempty"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"created_at"`
}

type ListNotificationsResponse struct {
	UnreadCount   int64                  `json:"unread_count"`
	Notifications []NotificationResponse `json:"notifications"`
}
