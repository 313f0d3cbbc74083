package admindto

// AdminUserCreateInput dữ liệu đầu vào khi tạo tài khoản quản trị mới
type AdminUserCreateInput struct {
	Username string `json:"username" validate:"required" maxLength:"50"`
	Password string `json:"password" validate:"required,min=4"`
	Name     string `json:"name" validate:"required" maxLength:"100"`
}

// AdminUserUpdateInput dữ liệu đầu vào khi cập nhật tài khoản quản trị
type AdminUserUpdateInput struct {
	Password string `json:"password,omitempty" validate:"omitempty,min=4"`
	Name     string `json:"name,omitempty" maxLength:"100"`
}

// AdminLoginInput dữ liệu đầu vào khi admin đăng nhập
type AdminLoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
