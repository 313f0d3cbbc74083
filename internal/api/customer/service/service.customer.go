package customersvc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/service"
	customerdto "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/dto"
	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	notificationmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/models"
	notificationsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/logger"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/utility"
)

// CustomerService là service quản lý vòng đời tài khoản khách hàng:
// đăng ký, duyệt, đăng nhập, rút khỏi hệ thống, khôi phục, xóa vĩnh viễn.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[customermodels.Customer]
	adminNotificationService *notificationsvc.AdminNotificationService
}

// NewCustomerService tạo mới CustomerService
func NewCustomerService() (*CustomerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}

	adminNotificationService, err := notificationsvc.NewAdminNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin notification service: %v", err)
	}

	return &CustomerService{
		BaseServiceMongoImpl:     basesvc.NewBaseServiceMongo[customermodels.Customer](collection),
		adminNotificationService: adminNotificationService,
	}, nil
}

// LoginResult kết quả đăng nhập: thông tin khách hàng kèm JWT token
type LoginResult struct {
	Customer customermodels.Customer `json:"customer"`
	Token    string                  `json:"token"`
}

// SignUp đăng ký tài khoản mới từ phía khách hàng.
// Tài khoản được tạo ở trạng thái pending với 0 điểm, chờ admin duyệt.
func (s *CustomerService) SignUp(ctx context.Context, input *customerdto.SignUpInput) (customermodels.Customer, error) {
	var zero customermodels.Customer

	if len(input.Password) < 4 {
		return zero, common.ErrWeakPassword
	}
	if input.Password != input.PasswordConfirm {
		return zero, common.ErrPasswordMismatch
	}

	normalizedPhone := utility.NormalizePhone(input.Phone)
	if normalizedPhone == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Số điện thoại không hợp lệ", common.StatusBadRequest, nil)
	}

	// Chống trùng số điện thoại sau chuẩn hóa: "010-1234-5678" và "1012345678" là cùng một số
	exists, err := s.DocumentExists(ctx, map[string]interface{}{"normalizedPhone": normalizedPhone})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.ErrPhoneDuplicate
	}

	customer := customermodels.Customer{
		Name:            input.Name,
		Phone:           input.Phone,
		NormalizedPhone: normalizedPhone,
		Password:        input.Password,
		Company:         input.Company,
		IsIndividual:    input.IsIndividual,
		TotalPoints:     0,
		Status:          customermodels.CustomerStatusPending,
	}

	created, err := s.InsertOne(ctx, customer)
	if err != nil {
		return zero, err
	}

	// Báo cho admin có đăng ký mới chờ duyệt, lỗi ở đây không chặn đăng ký
	if _, err := s.adminNotificationService.NotifyAdmin(ctx,
		notificationmodels.AdminNotificationSourceSignup,
		created.ID,
		"신규 회원가입",
		fmt.Sprintf("%s님이 회원가입을 신청했습니다.", created.Name),
	); err != nil {
		logger.GetAppLogger().Warnf("Không thể tạo thông báo admin cho đăng ký %s: %v", created.ID.Hex(), err)
	}

	return created, nil
}

// CreateByAdmin tạo khách hàng trực tiếp từ trang quản trị.
// Mật khẩu mặc định là 4 số cuối điện thoại nếu không truyền.
func (s *CustomerService) CreateByAdmin(ctx context.Context, input *customerdto.CustomerCreateInput) (customermodels.Customer, error) {
	var zero customermodels.Customer

	normalizedPhone := utility.NormalizePhone(input.Phone)
	if normalizedPhone == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Số điện thoại không hợp lệ", common.StatusBadRequest, nil)
	}

	exists, err := s.DocumentExists(ctx, map[string]interface{}{"normalizedPhone": normalizedPhone})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.ErrPhoneDuplicate
	}

	password := input.Password
	if password == "" {
		password = utility.PhoneLast4(normalizedPhone)
	}

	status := input.Status
	if status == "" {
		status = customermodels.CustomerStatusActive
	}

	customer := customermodels.Customer{
		Name:            input.Name,
		Phone:           input.Phone,
		NormalizedPhone: normalizedPhone,
		Password:        password,
		Company:         input.Company,
		IsIndividual:    input.IsIndividual,
		Memo:            input.Memo,
		TotalPoints:     0,
		Status:          status,
	}

	return s.InsertOne(ctx, customer)
}

// Approve duyệt một khách hàng đang chờ: pending → active.
// Filter kèm status pending nên khách không ở trạng thái pending là no-op, không phải lỗi.
func (s *CustomerService) Approve(ctx context.Context, id primitive.ObjectID) (customermodels.Customer, error) {
	filter := map[string]interface{}{
		"_id":    id,
		"status": customermodels.CustomerStatusPending,
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": customermodels.CustomerStatusActive},
	}

	if _, err := s.UpdateMany(ctx, filter, update, nil); err != nil {
		return customermodels.Customer{}, err
	}

	// Trả về trạng thái hiện tại của khách, kể cả khi không có gì thay đổi
	return s.FindOneById(ctx, id)
}

// ApproveMany duyệt lần lượt danh sách khách hàng chờ, trả về số lượng duyệt thành công.
// Lỗi trên từng id được bỏ qua, không abort cả batch.
func (s *CustomerService) ApproveMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	log := logger.GetAppLogger()
	var approvedCount int64

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": customermodels.CustomerStatusActive},
	}

	for _, id := range ids {
		filter := map[string]interface{}{
			"_id":    id,
			"status": customermodels.CustomerStatusPending,
		}
		count, err := s.UpdateMany(ctx, filter, update, nil)
		if err != nil {
			log.Warnf("Duyệt khách hàng %s thất bại: %v", id.Hex(), err)
			continue
		}
		approvedCount += count
	}

	return approvedCount, nil
}

// Login đăng nhập bằng số điện thoại (chuẩn hóa) và mật khẩu.
// Tài khoản pending hoặc withdrawn bị chặn với message riêng để UI hiển thị đúng hướng dẫn.
func (s *CustomerService) Login(ctx context.Context, input *customerdto.LoginInput) (*LoginResult, error) {
	normalizedPhone := utility.NormalizePhone(input.Phone)

	customer, err := s.FindOne(ctx, map[string]interface{}{"normalizedPhone": normalizedPhone}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if customer.Password != input.Password {
		return nil, common.ErrInvalidCredentials
	}

	switch customer.Status {
	case customermodels.CustomerStatusPending:
		return nil, common.ErrPendingApproval
	case customermodels.CustomerStatusWithdrawn:
		return nil, common.ErrWithdrawnAccount
	}

	currentTime := time.Now().UnixMilli()
	rdNumber := rand.Intn(100)
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		customer.ID.Hex(),
		"customer",
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		return nil, err
	}
	token := tokenMap["token"]

	// Lưu token mới nhất vào document để middleware có thể thu hồi phiên cũ
	customer, err = s.UpdateById(ctx, customer.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{Customer: customer, Token: token}, nil
}

// Withdraw chuyển khách hàng sang trạng thái withdrawn và đóng dấu thời điểm rút.
// Idempotent: đã withdrawn thì trả về nguyên trạng, không lỗi.
func (s *CustomerService) Withdraw(ctx context.Context, id primitive.ObjectID) (customermodels.Customer, error) {
	customer, err := s.FindOneById(ctx, id)
	if err != nil {
		return customermodels.Customer{}, err
	}

	if customer.Status == customermodels.CustomerStatusWithdrawn {
		return customer, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":      customermodels.CustomerStatusWithdrawn,
			"withdrawnAt": time.Now().UnixMilli(),
		},
		Unset: map[string]interface{}{"token": ""},
	})
	if err != nil {
		return customermodels.Customer{}, err
	}

	if _, err := s.adminNotificationService.NotifyAdmin(ctx,
		notificationmodels.AdminNotificationSourceWithdrawal,
		updated.ID,
		"회원 탈퇴",
		fmt.Sprintf("%s님이 탈퇴했습니다.", updated.Name),
	); err != nil {
		logger.GetAppLogger().Warnf("Không thể tạo thông báo admin cho lượt rút %s: %v", updated.ID.Hex(), err)
	}

	return updated, nil
}

// Restore khôi phục khách hàng đã rút: withdrawn → active, xóa dấu thời gian rút
func (s *CustomerService) Restore(ctx context.Context, id primitive.ObjectID) (customermodels.Customer, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set:   map[string]interface{}{"status": customermodels.CustomerStatusActive},
		Unset: map[string]interface{}{"withdrawnAt": ""},
	})
}

// PermanentlyDelete xóa vĩnh viễn khách hàng sau khi xác nhận đúng tên.
// Cascade xóa lịch sử điểm, thông báo và yêu cầu của khách (qua relationship tag trên model).
func (s *CustomerService) PermanentlyDelete(ctx context.Context, id primitive.ObjectID, confirmedName string) error {
	customer, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if customer.Name != confirmedName {
		return common.ErrNameConfirmation
	}

	return s.DeleteById(ctx, id)
}

// UpdateProfile cập nhật thông tin khách hàng. Đổi số điện thoại sẽ
// tính lại normalizedPhone và kiểm tra trùng với khách khác.
func (s *CustomerService) UpdateProfile(ctx context.Context, id primitive.ObjectID, input *customerdto.CustomerUpdateInput) (customermodels.Customer, error) {
	var zero customermodels.Customer

	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Company != "" {
		set["company"] = input.Company
	}
	if input.Memo != "" {
		set["memo"] = input.Memo
	}
	if input.IsIndividual != nil {
		set["isIndividual"] = *input.IsIndividual
	}

	if input.Phone != "" {
		normalizedPhone := utility.NormalizePhone(input.Phone)
		if normalizedPhone == "" {
			return zero, common.NewError(common.ErrCodeValidationInput, "Số điện thoại không hợp lệ", common.StatusBadRequest, nil)
		}

		// Số mới không được trùng với khách hàng khác
		existing, err := s.FindOne(ctx, map[string]interface{}{"normalizedPhone": normalizedPhone}, nil)
		if err == nil && existing.ID != id {
			return zero, common.ErrPhoneDuplicate
		}

		set["phone"] = input.Phone
		set["normalizedPhone"] = normalizedPhone
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// ResetPassword đặt lại mật khẩu theo số điện thoại.
// Bước xác nhận ngoài băng tần (OTP) nằm ngoài phạm vi, service chỉ xác minh số điện thoại resolve được.
func (s *CustomerService) ResetPassword(ctx context.Context, input *customerdto.ResetPasswordInput) (customermodels.Customer, error) {
	var zero customermodels.Customer

	if len(input.NewPassword) < 4 {
		return zero, common.ErrWeakPassword
	}
	if input.NewPassword != input.PasswordConfirm {
		return zero, common.ErrPasswordMismatch
	}

	normalizedPhone := utility.NormalizePhone(input.Phone)
	customer, err := s.FindOne(ctx, map[string]interface{}{"normalizedPhone": normalizedPhone}, nil)
	if err != nil {
		return zero, common.ErrNotFound
	}

	return s.UpdateById(ctx, customer.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": input.NewPassword},
	})
}
