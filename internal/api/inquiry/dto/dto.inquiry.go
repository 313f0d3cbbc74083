package inquirydto

// InquiryCreateInput dữ liệu đầu vào khi khách hàng gửi yêu cầu
type InquiryCreateInput struct {
	Type    string `json:"type" validate:"required,oneof=profile_change password_reset"`
	Content string `json:"content" validate:"required" maxLength:"1000"`
}

// InquiryUpdateInput dữ liệu đầu vào khi admin cập nhật yêu cầu
type InquiryUpdateInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=open resolved"`
}

// InquiryIDParams params từ URL chứa ID yêu cầu
type InquiryIDParams struct {
	ID string `uri:"id" validate:"required"`
}
