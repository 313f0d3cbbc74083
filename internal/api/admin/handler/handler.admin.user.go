package adminhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	admindto "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/dto"
	adminmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/models"
	adminsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/service"
	basehdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/handler"
)

// AdminUserHandler xử lý các request liên quan đến tài khoản quản trị
type AdminUserHandler struct {
	*basehdl.BaseHandler[adminmodels.AdminUser, admindto.AdminUserCreateInput, admindto.AdminUserUpdateInput]
	AdminUserService *adminsvc.AdminUserService
}

// NewAdminUserHandler tạo mới AdminUserHandler
func NewAdminUserHandler() (*AdminUserHandler, error) {
	adminUserService, err := adminsvc.NewAdminUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user service: %v", err)
	}
	hdl := &AdminUserHandler{
		AdminUserService: adminUserService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[adminmodels.AdminUser, admindto.AdminUserCreateInput, admindto.AdminUserUpdateInput](adminUserService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// HandleLogin admin đăng nhập bằng username/password
func (h *AdminUserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input admindto.AdminLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminUserService.Login(c.Context(), input.Username, input.Password)
		h.HandleResponse(c, result, err)
		return nil
	})
}
