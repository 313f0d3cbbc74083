package inquirysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/service"
	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	inquirymodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/inquiry/models"
	notificationmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/models"
	notificationsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/logger"
)

// InquiryService là service quản lý yêu cầu của khách hàng gửi tới admin
type InquiryService struct {
	*basesvc.BaseServiceMongoImpl[inquirymodels.Inquiry]
	customerService          basesvc.BaseServiceMongo[customermodels.Customer]
	adminNotificationService *notificationsvc.AdminNotificationService
}

// NewInquiryService tạo mới InquiryService
func NewInquiryService() (*InquiryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Inquiries)
	if !exist {
		return nil, fmt.Errorf("failed to get inquiries collection: %v", common.ErrNotFound)
	}

	customersCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}

	adminNotificationService, err := notificationsvc.NewAdminNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin notification service: %v", err)
	}

	return &InquiryService{
		BaseServiceMongoImpl:     basesvc.NewBaseServiceMongo[inquirymodels.Inquiry](collection),
		customerService:          basesvc.NewBaseServiceMongo[customermodels.Customer](customersCollection),
		adminNotificationService: adminNotificationService,
	}, nil
}

// Create tạo yêu cầu mới từ khách hàng và fan-out thông báo tới admin.
// Lỗi fan-out là non-fatal: yêu cầu vẫn được tạo, chỉ log cảnh báo.
func (s *InquiryService) Create(ctx context.Context, customerID primitive.ObjectID, inquiryType string, content string) (inquirymodels.Inquiry, error) {
	inquiry := inquirymodels.Inquiry{
		CustomerID: customerID,
		Type:       inquiryType,
		Content:    content,
		Status:     inquirymodels.InquiryStatusOpen,
	}

	created, err := s.InsertOne(ctx, inquiry)
	if err != nil {
		return created, err
	}

	customerName := customerID.Hex()
	if customer, err := s.customerService.FindOneById(ctx, customerID); err == nil {
		customerName = customer.Name
	}

	title := "새 문의 접수"
	notifyContent := fmt.Sprintf("%s님이 문의를 등록했습니다.", customerName)
	if _, err := s.adminNotificationService.NotifyAdmin(ctx, notificationmodels.AdminNotificationSourceInquiry, created.ID, title, notifyContent); err != nil {
		logger.GetAppLogger().Warnf("Tạo thông báo admin cho yêu cầu %s thất bại: %v", created.ID.Hex(), err)
	}

	return created, nil
}

// Resolve đánh dấu một yêu cầu đã xử lý xong
func (s *InquiryService) Resolve(ctx context.Context, id primitive.ObjectID) (inquirymodels.Inquiry, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": inquirymodels.InquiryStatusResolved},
	})
}

// ListByCustomer trả về các yêu cầu của một khách hàng, mới nhất trước
func (s *InquiryService) ListByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]inquirymodels.Inquiry, error) {
	filter := bson.M{"customerId": customerID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}
