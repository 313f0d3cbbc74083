package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InquiryType định nghĩa loại yêu cầu khách hàng gửi lên admin
const (
	InquiryTypeProfileChange = "profile_change" // Yêu cầu thay đổi thông tin
	InquiryTypePasswordReset = "password_reset" // Yêu cầu đặt lại mật khẩu
)

// InquiryStatus định nghĩa trạng thái xử lý của yêu cầu
const (
	InquiryStatusOpen     = "open"     // Chưa xử lý
	InquiryStatusResolved = "resolved" // Admin đã xử lý xong
)

// Inquiry là yêu cầu của khách hàng gửi tới admin (đổi thông tin, đặt lại mật khẩu)
type Inquiry struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"`          // Khách hàng gửi yêu cầu
	Type       string             `json:"type" bson:"type"`                                       // Loại: profile_change, password_reset
	Content    string             `json:"content" bson:"content"`                                 // Nội dung yêu cầu
	Status     string             `json:"status" bson:"status" index:"single:1" default:"open"`   // Trạng thái: open, resolved
	CreatedAt  int64              `json:"createdAt" bson:"createdAt" index:"single:1;order:-1"`   // Thời gian tạo
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`                             // Thời gian cập nhật cuối
}
