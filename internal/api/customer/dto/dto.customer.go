package customerdto

// CustomerCreateInput dữ liệu đầu vào khi admin tạo khách hàng trực tiếp.
// Mật khẩu mặc định là 4 số cuối điện thoại nếu không truyền.
type CustomerCreateInput struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Password     string `json:"password,omitempty"`
	Company      string `json:"company,omitempty"`
	IsIndividual bool   `json:"isIndividual"`
	Memo         string `json:"memo,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=pending active withdrawn" transform:"string,default=active"`
}

// CustomerUpdateInput dữ liệu đầu vào khi cập nhật thông tin khách hàng
type CustomerUpdateInput struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Company      string `json:"company,omitempty"`
	IsIndividual *bool  `json:"isIndividual,omitempty"` // Pointer: phân biệt bỏ trống với set false
	Memo         string `json:"memo,omitempty"`
}

// SignUpInput dữ liệu đăng ký tài khoản từ phía khách hàng
type SignUpInput struct {
	Name            string `json:"name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
	Company         string `json:"company,omitempty"`
	IsIndividual    bool   `json:"isIndividual"`
}

// LoginInput dữ liệu đăng nhập của khách hàng
type LoginInput struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ApproveManyInput danh sách khách hàng chờ duyệt cần chuyển sang active
type ApproveManyInput struct {
	CustomerIDs []string `json:"customerIds" validate:"required,min=1"`
}

// PermanentlyDeleteInput xác nhận tên khách trước khi xóa vĩnh viễn
type PermanentlyDeleteInput struct {
	ConfirmedName string `json:"confirmedName" validate:"required"`
}

// ResetPasswordInput đặt lại mật khẩu sau bước xác nhận ngoài băng tần
type ResetPasswordInput struct {
	Phone           string `json:"phone" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
}

// CustomerIDParams params từ URL chứa ID khách hàng
type CustomerIDParams struct {
	ID string `uri:"id" validate:"required"`
}
