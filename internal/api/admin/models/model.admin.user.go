package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminUser là tài khoản quản trị đăng nhập bằng username/password.
// Tài khoản seed lúc khởi động có IsSystem = true và không thể xóa qua API.
type AdminUser struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username" index:"unique"` // Tên đăng nhập, duy nhất
	Password string             `json:"-" bson:"password"`                       // Mật khẩu, không trả về client
	Name     string             `json:"name" bson:"name"`                        // Tên hiển thị
	IsSystem bool               `json:"isSystem" bson:"isSystem"`                // Tài khoản hệ thống, không thể xóa
	Token    string             `json:"-" bson:"token,omitempty"`                // Token phiên đăng nhập hiện tại

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
