package notificationdto

// NotificationCreateInput dữ liệu đầu vào khi tạo thông báo cho một khách hàng
type NotificationCreateInput struct {
	CustomerID string `json:"customerId" validate:"required" transform:"str_objectid,map=CustomerID"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Type       string `json:"type,omitempty" validate:"omitempty,oneof=system message announcement" transform:"string,default=system"`
}

// NotificationUpdateInput dữ liệu đầu vào khi cập nhật thông báo (chỉ trạng thái đọc)
type NotificationUpdateInput struct {
	IsRead bool `json:"isRead,omitempty"`
}

// BroadcastInput dữ liệu đầu vào khi admin gửi tin nhắn hàng loạt.
// CustomerIDs rỗng nghĩa là gửi cho toàn bộ khách hàng đang active.
type BroadcastInput struct {
	CustomerIDs []string `json:"customerIds,omitempty"`
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
}

// MarkAllReadInput đánh dấu đã đọc toàn bộ thông báo của một khách hàng
type MarkAllReadInput struct {
	CustomerID string `json:"customerId" validate:"required"`
}

// AdminNotificationCreateInput dữ liệu đầu vào khi tạo thông báo cho admin
type AdminNotificationCreateInput struct {
	SourceType string `json:"sourceType" validate:"required,oneof=signup inquiry withdrawal"`
	SourceID   string `json:"sourceId" validate:"required" transform:"str_objectid,map=SourceID"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// AdminNotificationUpdateInput dữ liệu đầu vào khi cập nhật thông báo admin
type AdminNotificationUpdateInput struct {
	IsRead bool `json:"isRead,omitempty"`
}
