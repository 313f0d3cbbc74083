package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Announcement là thông báo chung admin đăng cho toàn bộ khách hàng.
// Chỉ hiển thị khi isActive và chưa hết hạn; ghim (isPinned) được xếp lên đầu.
type Announcement struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	IsActive  bool               `json:"isActive" bson:"isActive" index:"single:1" default:"true"`
	IsPinned  bool               `json:"isPinned" bson:"isPinned"`
	ExpiresAt int64              `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"` // 0 = không hết hạn
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:1;order:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
