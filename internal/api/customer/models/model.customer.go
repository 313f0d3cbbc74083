package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerStatus định nghĩa trạng thái vòng đời của khách hàng.
// Giá trị là mã ổn định, nhãn hiển thị tiếng Hàn chỉ nằm ở tầng trình bày.
const (
	CustomerStatusPending   = "pending"   // Chờ admin duyệt sau khi đăng ký
	CustomerStatusActive    = "active"    // Đang hoạt động, được phép đăng nhập
	CustomerStatusWithdrawn = "withdrawn" // Đã rút khỏi hệ thống (có thể khôi phục)
)

// Customer đại diện cho khách hàng của chương trình tích điểm.
// TotalPoints là số dư được denormalize từ tổng point_history, không bao giờ âm.
type Customer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của khách hàng

	// ===== IDENTITY =====
	Name            string `json:"name" bson:"name"`                                                                       // Tên khách hàng
	Phone           string `json:"phone" bson:"phone"`                                                                     // Số điện thoại gốc như khách nhập (dùng hiển thị)
	NormalizedPhone string `json:"normalizedPhone,omitempty" bson:"normalizedPhone,omitempty" index:"unique,sparse"`       // Chỉ chữ số, bỏ số 0 đầu; khóa đăng nhập và chống trùng
	Password        string `json:"-" bson:"password"`                                                                      // Mật khẩu (plaintext theo hệ thống gốc, xem DESIGN.md)
	Company         string `json:"company,omitempty" bson:"company,omitempty"`                                             // Tên công ty (rỗng nếu khách cá nhân)
	IsIndividual    bool   `json:"isIndividual" bson:"isIndividual"`                                                       // Khách cá nhân hay doanh nghiệp

	// ===== LOYALTY =====
	TotalPoints int64 `json:"totalPoints" bson:"total_points"` // Số dư điểm cache từ sổ cái, clamp tại 0

	// ===== LIFECYCLE =====
	Status      string `json:"status" bson:"status" index:"single:1" default:"pending"` // Trạng thái: pending, active, withdrawn
	Memo        string `json:"memo,omitempty" bson:"memo,omitempty"`                    // Ghi chú của admin
	WithdrawnAt int64  `json:"withdrawnAt,omitempty" bson:"withdrawnAt,omitempty"`      // Thời điểm rút khỏi hệ thống (0 nếu chưa)

	// ===== SESSION =====
	Token string `json:"-" bson:"token,omitempty"` // JWT token của phiên đăng nhập gần nhất

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật

	// Xóa vĩnh viễn khách hàng sẽ cascade xóa lịch sử điểm, thông báo và yêu cầu của khách đó
	_Relationships struct{} `json:"-" bson:"-" relationship:"collection:point_history,field:customerId,cascade:true|collection:notifications,field:customerId,cascade:true|collection:inquiries,field:customerId,cascade:true"`
}
