package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType định nghĩa các loại thông báo gửi tới khách hàng
const (
	NotificationTypeSystem       = "system"       // Thông báo hệ thống (tích điểm, trừ điểm)
	NotificationTypeMessage      = "message"      // Tin nhắn admin gửi trực tiếp
	NotificationTypeAnnouncement = "announcement" // Thông báo chung được đẩy tới khách
)

// Notification đại diện cho một thông báo gửi tới khách hàng.
// Được tạo kèm mỗi biến động điểm và mỗi lần admin broadcast.
type Notification struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của thông báo

	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"` // Khách hàng nhận thông báo
	Title      string             `json:"title" bson:"title"`                            // Tiêu đề
	Content    string             `json:"content" bson:"content"`                        // Nội dung
	Type       string             `json:"type" bson:"type" default:"system"`             // Loại: system, message, announcement
	IsRead     bool               `json:"isRead" bson:"is_read"`                         // Khách đã đọc chưa

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1;order:-1"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                           // Thời gian cập nhật
}
