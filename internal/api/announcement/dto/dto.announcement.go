package announcementdto

// AnnouncementCreateInput dữ liệu đầu vào khi admin đăng thông báo chung
type AnnouncementCreateInput struct {
	Title     string `json:"title" validate:"required" maxLength:"200"`
	Content   string `json:"content" validate:"required"`
	IsActive  *bool  `json:"isActive,omitempty"`
	IsPinned  bool   `json:"isPinned,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"` // 0 = không hết hạn
}

// AnnouncementUpdateInput dữ liệu đầu vào khi cập nhật thông báo chung
type AnnouncementUpdateInput struct {
	Title     string `json:"title,omitempty" maxLength:"200"`
	Content   string `json:"content,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
	IsPinned  *bool  `json:"isPinned,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}
