package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PointHistoryType định nghĩa loại bút toán trong sổ cái điểm
const (
	PointHistoryTypeEarn   = "earn"   // Tích điểm (points dương)
	PointHistoryTypeUse    = "use"    // Dùng điểm (points âm)
	PointHistoryTypeAdjust = "adjust" // Điều chỉnh bởi admin (thường là trừ điểm kèm lý do)
)

// PointHistory là một bút toán trong sổ cái điểm, bất biến sau khi tạo.
// Points mang dấu: dương khi tích, âm khi trừ. Số dư total_points của khách
// phải luôn bằng tổng points của các bút toán thuộc khách đó.
type PointHistory struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bút toán

	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"` // Khách hàng sở hữu bút toán
	Points     int64              `json:"points" bson:"points"`                          // Lượng điểm có dấu
	Type       string             `json:"type" bson:"type"`                              // Loại: earn, use, adjust
	Reason     string             `json:"reason,omitempty" bson:"reason,omitempty"`      // Lý do (bắt buộc khi trừ điểm)

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1;order:-1"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                           // Thời gian cập nhật
}
