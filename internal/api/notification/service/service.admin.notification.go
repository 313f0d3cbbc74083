package notificationsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/service"
	notificationmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/models"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
)

// AdminNotificationService là service quản lý thông báo fan-out tới admin
type AdminNotificationService struct {
	*basesvc.BaseServiceMongoImpl[notificationmodels.AdminNotification]
}

// NewAdminNotificationService tạo mới AdminNotificationService
func NewAdminNotificationService() (*AdminNotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminNotifications)
	if !exist {
		return nil, fmt.Errorf("failed to get admin_notifications collection: %v", common.ErrNotFound)
	}
	return &AdminNotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[notificationmodels.AdminNotification](collection),
	}, nil
}

// NotifyAdmin tạo thông báo cho admin khi có sự kiện từ phía khách hàng (đăng ký, yêu cầu, rút khỏi hệ thống)
func (s *AdminNotificationService) NotifyAdmin(ctx context.Context, sourceType string, sourceID primitive.ObjectID, title string, content string) (notificationmodels.AdminNotification, error) {
	notification := notificationmodels.AdminNotification{
		SourceType: sourceType,
		SourceID:   sourceID,
		Title:      title,
		Content:    content,
		IsRead:     false,
	}
	return s.InsertOne(ctx, notification)
}

// MarkRead đánh dấu một thông báo admin đã đọc
func (s *AdminNotificationService) MarkRead(ctx context.Context, id primitive.ObjectID) (notificationmodels.AdminNotification, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"is_read": true},
	})
}
