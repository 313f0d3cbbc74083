package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminNotificationSourceType định nghĩa nguồn phát sinh thông báo cho admin
const (
	AdminNotificationSourceSignup     = "signup"     // Có đăng ký mới chờ duyệt
	AdminNotificationSourceInquiry    = "inquiry"    // Khách gửi yêu cầu (đổi thông tin, đặt lại mật khẩu)
	AdminNotificationSourceWithdrawal = "withdrawal" // Khách rút khỏi hệ thống
)

// AdminNotification là thông báo fan-out tới admin khi có sự kiện từ phía khách hàng.
// Tham chiếu entity nguồn qua cặp sourceType + sourceId, isRead độc lập với thông báo khách.
type AdminNotification struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của thông báo

	SourceType string             `json:"sourceType" bson:"sourceType" index:"single:1"` // Nguồn: signup, inquiry, withdrawal
	SourceID   primitive.ObjectID `json:"sourceId" bson:"sourceId"`                      // ID của entity nguồn
	Title      string             `json:"title" bson:"title"`                            // Tiêu đề
	Content    string             `json:"content" bson:"content"`                        // Nội dung
	IsRead     bool               `json:"isRead" bson:"is_read"`                         // Admin đã đọc chưa

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1;order:-1"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                           // Thời gian cập nhật
}
