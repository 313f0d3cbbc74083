package notificationsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/service"
	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	notificationmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/models"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/logger"
)

// BroadcastResult kết quả gửi tin hàng loạt.
// SuccessCount có thể nhỏ hơn số lượng id đầu vào khi có id không hợp lệ hoặc gửi lỗi.
type BroadcastResult struct {
	Notifications []notificationmodels.Notification `json:"notifications"`
	SuccessCount  int64                             `json:"successCount"`
}

// NotificationService là service quản lý thông báo gửi tới khách hàng
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[notificationmodels.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[notificationmodels.Notification](collection),
	}, nil
}

// Notify tạo một thông báo cho khách hàng.
// Caller phía biến động điểm coi lỗi ở đây là non-fatal: log rồi đi tiếp, không rollback.
func (s *NotificationService) Notify(ctx context.Context, customerID primitive.ObjectID, title string, content string, notificationType string) (notificationmodels.Notification, error) {
	notification := notificationmodels.Notification{
		CustomerID: customerID,
		Title:      title,
		Content:    content,
		Type:       notificationType,
		IsRead:     false,
	}
	return s.InsertOne(ctx, notification)
}

// Broadcast gửi tin nhắn (type message) tới từng khách hàng trong danh sách, tuần tự.
// Id không resolve được hoặc gửi lỗi thì bỏ qua, chỉ phản ánh qua SuccessCount.
func (s *NotificationService) Broadcast(ctx context.Context, customerIDs []primitive.ObjectID, title string, content string) (*BroadcastResult, error) {
	log := logger.GetAppLogger()
	result := &BroadcastResult{
		Notifications: []notificationmodels.Notification{},
	}

	customersCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection customers", common.StatusInternalServerError, nil)
	}

	for _, customerID := range customerIDs {
		// Id không trỏ tới khách hàng nào thì bỏ qua, không abort cả batch
		count, err := customersCol.CountDocuments(ctx, bson.M{"_id": customerID})
		if err != nil || count == 0 {
			log.Warnf("Broadcast bỏ qua khách hàng %s: không tồn tại", customerID.Hex())
			continue
		}

		notification, err := s.Notify(ctx, customerID, title, content, notificationmodels.NotificationTypeMessage)
		if err != nil {
			log.Warnf("Broadcast gửi thông báo cho khách hàng %s thất bại: %v", customerID.Hex(), err)
			continue
		}

		result.Notifications = append(result.Notifications, notification)
		result.SuccessCount++
	}

	return result, nil
}

// BroadcastAllActive gửi tin nhắn tới toàn bộ khách hàng đang active
func (s *NotificationService) BroadcastAllActive(ctx context.Context, title string, content string) (*BroadcastResult, error) {
	customersCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection customers", common.StatusInternalServerError, nil)
	}

	rawIDs, err := customersCol.Distinct(ctx, "_id", bson.M{"status": customermodels.CustomerStatusActive})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	customerIDs := make([]primitive.ObjectID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if id, ok := raw.(primitive.ObjectID); ok {
			customerIDs = append(customerIDs, id)
		}
	}

	return s.Broadcast(ctx, customerIDs, title, content)
}

// MarkRead đánh dấu một thông báo đã đọc. Filter kèm customerId để khách
// không đổi được trạng thái đã đọc trên thông báo của người khác.
func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID, customerID primitive.ObjectID) (notificationmodels.Notification, error) {
	filter := map[string]interface{}{
		"_id":        id,
		"customerId": customerID,
	}
	return s.UpdateOne(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{"is_read": true},
	}, nil)
}

// MarkAllRead đánh dấu đã đọc toàn bộ thông báo chưa đọc của một khách hàng.
// Trả về số lượng thông báo được cập nhật.
func (s *NotificationService) MarkAllRead(ctx context.Context, customerID primitive.ObjectID) (int64, error) {
	filter := map[string]interface{}{
		"customerId": customerID,
		"is_read":    false,
	}
	return s.UpdateMany(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{"is_read": true},
	}, nil)
}
