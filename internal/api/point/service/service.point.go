package pointsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/service"
	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	notificationmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/models"
	notificationsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/service"
	pointmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/models"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/logger"
)

// MutationResult kết quả của một lượt tích/trừ điểm hàng loạt.
// SuccessCount có thể nhỏ hơn số id đầu vào: id không resolve được thì bỏ qua.
type MutationResult struct {
	Customers     []customermodels.Customer         `json:"customers"`
	PointHistory  []pointmodels.PointHistory        `json:"pointHistory"`
	Notifications []notificationmodels.Notification `json:"notifications"`
	SuccessCount  int64                             `json:"successCount"`
}

// PointService là service quản lý sổ cái điểm và số dư của khách hàng.
// Mỗi biến động điểm gồm 3 bước: cập nhật số dư (atomic, clamp tại 0),
// ghi bút toán, tạo thông báo. Hai bước sau là best-effort, worker định kỳ
// sẽ vá lệch giữa số dư và sổ cái.
type PointService struct {
	*basesvc.BaseServiceMongoImpl[pointmodels.PointHistory]
	customerService     basesvc.BaseServiceMongo[customermodels.Customer]
	notificationService *notificationsvc.NotificationService
}

// NewPointService tạo mới PointService
func NewPointService() (*PointService, error) {
	ledgerCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PointHistory)
	if !exist {
		return nil, fmt.Errorf("failed to get point_history collection: %v", common.ErrNotFound)
	}

	customersCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}

	notificationService, err := notificationsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}

	return &PointService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[pointmodels.PointHistory](ledgerCollection),
		customerService:      basesvc.NewBaseServiceMongo[customermodels.Customer](customersCollection),
		notificationService:  notificationService,
	}, nil
}

// Earn tích điểm cho từng khách hàng trong danh sách, tuần tự.
// Mỗi khách thành công tạo đúng một bút toán và một thông báo.
// Id không resolve được thì bỏ qua khách đó, đi tiếp các khách còn lại.
func (s *PointService) Earn(ctx context.Context, customerIDs []primitive.ObjectID, amount int64) (*MutationResult, error) {
	if amount <= 0 {
		return nil, common.ErrNonPositiveAmount
	}

	return s.mutate(ctx, customerIDs, amount, pointmodels.PointHistoryTypeEarn, "",
		"포인트 적립", fmt.Sprintf("%d 포인트가 적립되었습니다.", amount))
}

// Deduct trừ điểm từng khách hàng, bắt buộc có lý do.
// Số dư được clamp tại 0 phía server (pipeline $max), nhưng bút toán ghi
// nguyên lượng điểm được yêu cầu trừ. Worker đối soát replay sổ cái với
// cùng quy tắc floor nên phần bị clamp không bị coi là lệch.
func (s *PointService) Deduct(ctx context.Context, customerIDs []primitive.ObjectID, amount int64, reason string) (*MutationResult, error) {
	if amount <= 0 {
		return nil, common.ErrNonPositiveAmount
	}
	if strings.TrimSpace(reason) == "" {
		return nil, common.ErrReasonRequired
	}

	return s.mutate(ctx, customerIDs, -amount, pointmodels.PointHistoryTypeAdjust, reason,
		"포인트 차감", fmt.Sprintf("%d 포인트가 차감되었습니다.", amount))
}

// mutate là vòng lặp chung cho Earn/Deduct: với mỗi khách, cập nhật số dư
// atomic với clamp tại 0, ghi bút toán rồi tạo thông báo (type system).
func (s *PointService) mutate(ctx context.Context, customerIDs []primitive.ObjectID, delta int64, historyType string, reason string, title string, content string) (*MutationResult, error) {
	log := logger.GetAppLogger()
	result := &MutationResult{
		Customers:     []customermodels.Customer{},
		PointHistory:  []pointmodels.PointHistory{},
		Notifications: []notificationmodels.Notification{},
	}

	for _, customerID := range customerIDs {
		filter := map[string]interface{}{"_id": customerID}

		customer, err := s.customerService.IncrementWithFloor(ctx, filter, "total_points", delta, 0)
		if err != nil {
			// Khách không tồn tại hoặc cập nhật lỗi: bỏ qua, không abort batch
			log.Warnf("Biến động điểm bỏ qua khách hàng %s: %v", customerID.Hex(), err)
			continue
		}

		entry := pointmodels.PointHistory{
			CustomerID: customerID,
			Points:     delta,
			Type:       historyType,
			Reason:     reason,
		}
		created, err := s.InsertOne(ctx, entry)
		if err != nil {
			// Số dư đã đổi nhưng bút toán ghi lỗi: sổ cái lệch cho tới khi worker đối soát
			log.Errorf("Ghi bút toán cho khách hàng %s thất bại, số dư đã thay đổi: %v", customerID.Hex(), err)
			continue
		}

		result.Customers = append(result.Customers, customer)
		result.PointHistory = append(result.PointHistory, created)
		result.SuccessCount++

		// Thông báo là best-effort: lỗi chỉ log, không rollback biến động điểm
		notification, err := s.notificationService.Notify(ctx, customerID, title, content, notificationmodels.NotificationTypeSystem)
		if err != nil {
			log.Warnf("Tạo thông báo biến động điểm cho khách hàng %s thất bại: %v", customerID.Hex(), err)
			continue
		}
		result.Notifications = append(result.Notifications, notification)
	}

	return result, nil
}

// History trả về sổ cái điểm của một khách hàng, mới nhất trước
func (s *PointService) History(ctx context.Context, customerID primitive.ObjectID) ([]pointmodels.PointHistory, error) {
	filter := map[string]interface{}{"customerId": customerID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// DeleteHistoryEntry xóa một bút toán rồi tính lại số dư của khách từ sổ cái.
// Tính lại toàn phần thay vì bù trừ delta để số dư luôn khớp sổ cái kể cả khi đã lệch từ trước.
func (s *PointService) DeleteHistoryEntry(ctx context.Context, id primitive.ObjectID) (int64, error) {
	entry, err := s.FindOneAndDelete(ctx, map[string]interface{}{"_id": id}, nil)
	if err != nil {
		return 0, err
	}

	return s.RecomputeBalance(ctx, entry.CustomerID)
}

// ReplayBalance tính số dư của khách bằng cách replay sổ cái theo thứ tự thời
// gian, clamp tại 0 sau từng bút toán. Đây là cùng quy tắc floor với
// IncrementWithFloor: một lần trừ vượt số dư kéo số dư về 0 chứ không âm,
// nên điểm tích sau đó không bị tổng âm của sổ cái nuốt mất.
func (s *PointService) ReplayBalance(ctx context.Context, customerID primitive.ObjectID) (int64, error) {
	filter := map[string]interface{}{"customerId": customerID}
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: 1},
		{Key: "_id", Value: 1},
	})
	entries, err := s.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}

	return foldLedger(entries), nil
}

// foldLedger cộng dồn các bút toán theo thứ tự, số dư không xuống dưới 0
func foldLedger(entries []pointmodels.PointHistory) int64 {
	var balance int64
	for _, entry := range entries {
		balance += entry.Points
		if balance < 0 {
			balance = 0
		}
	}
	return balance
}

// RecomputeBalance replay sổ cái của khách rồi ghi đè total_points.
// Trả về số dư mới.
func (s *PointService) RecomputeBalance(ctx context.Context, customerID primitive.ObjectID) (int64, error) {
	balance, err := s.ReplayBalance(ctx, customerID)
	if err != nil {
		return 0, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"total_points": balance},
	}
	if _, err := s.customerService.UpdateMany(ctx, map[string]interface{}{"_id": customerID}, update, nil); err != nil {
		return 0, err
	}

	return balance, nil
}
