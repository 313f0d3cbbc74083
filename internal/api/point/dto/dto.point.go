package pointdto

// EarnInput dữ liệu đầu vào khi admin tích điểm cho một hoặc nhiều khách hàng
type EarnInput struct {
	CustomerIDs []string `json:"customerIds" validate:"required,min=1"`
	Amount      int64    `json:"amount" validate:"required,gt=0"`
}

// DeductInput dữ liệu đầu vào khi admin trừ điểm, bắt buộc có lý do
type DeductInput struct {
	CustomerIDs []string `json:"customerIds" validate:"required,min=1"`
	Amount      int64    `json:"amount" validate:"required,gt=0"`
	Reason      string   `json:"reason" validate:"required"`
}

// PointHistoryCreateInput dữ liệu đầu vào khi tạo bút toán trực tiếp (ít dùng, chủ yếu qua Earn/Deduct)
type PointHistoryCreateInput struct {
	CustomerID string `json:"customerId" validate:"required" transform:"str_objectid,map=CustomerID"`
	Points     int64  `json:"points" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=earn use adjust"`
	Reason     string `json:"reason,omitempty"`
}

// PointHistoryUpdateInput bút toán bất biến sau khi tạo nên không có field cập nhật nào
type PointHistoryUpdateInput struct {
}

// HistoryParams params từ URL khi xem lịch sử điểm của một khách hàng
type HistoryParams struct {
	CustomerID string `uri:"customerId" validate:"required"`
}
