package adminsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	adminmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/models"
	basesvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/logger"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/utility"
)

// LoginResult kết quả đăng nhập của admin: thông tin tài khoản và JWT
type LoginResult struct {
	AdminUser adminmodels.AdminUser `json:"adminUser"`
	Token     string                `json:"token"`
}

// AdminUserService là service quản lý tài khoản quản trị
type AdminUserService struct {
	*basesvc.BaseServiceMongoImpl[adminmodels.AdminUser]
}

// NewAdminUserService tạo mới AdminUserService
func NewAdminUserService() (*AdminUserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminUsers)
	if !exist {
		return nil, fmt.Errorf("failed to get admin_users collection: %v", common.ErrNotFound)
	}
	return &AdminUserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[adminmodels.AdminUser](collection),
	}, nil
}

// Login đăng nhập admin bằng username/password, trả về JWT role admin.
// Token được lưu vào document để middleware đối chiếu và thu hồi phiên cũ.
func (s *AdminUserService) Login(ctx context.Context, username string, password string) (*LoginResult, error) {
	adminUser, err := s.FindOne(ctx, map[string]interface{}{"username": username}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if adminUser.Password != password {
		return nil, common.ErrInvalidCredentials
	}

	currentTime := time.Now().UnixMilli()
	rdNumber := rand.Intn(100)
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		adminUser.ID.Hex(),
		"admin",
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		return nil, err
	}
	token := tokenMap["token"]

	adminUser, err = s.UpdateById(ctx, adminUser.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{AdminUser: adminUser, Token: token}, nil
}

// EnsureSeedAdmin tạo tài khoản quản trị mặc định nếu chưa có.
// Gọi lúc khởi động với INITMODE; tài khoản seed có IsSystem = true.
func (s *AdminUserService) EnsureSeedAdmin(ctx context.Context, username string, password string) error {
	if password == "" {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu mật khẩu admin mặc định (ADMIN_PASSWORD)",
			common.StatusBadRequest,
			nil,
		)
	}

	exists, err := s.DocumentExists(ctx, map[string]interface{}{"username": username})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	seedCtx := basesvc.WithSystemDataInsertAllowed(ctx)
	_, err = s.InsertOne(seedCtx, adminmodels.AdminUser{
		Username: username,
		Password: password,
		Name:     "관리자",
		IsSystem: true,
	})
	if err != nil {
		return err
	}

	logger.GetAppLogger().Infof("Đã seed tài khoản admin mặc định: %s", username)
	return nil
}
