package customerhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/handler"
	customerdto "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/dto"
	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	customersvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
)

// CustomerHandler xử lý các request liên quan đến khách hàng
type CustomerHandler struct {
	*basehdl.BaseHandler[customermodels.Customer, customerdto.CustomerCreateInput, customerdto.CustomerUpdateInput]
	CustomerService *customersvc.CustomerService
}

// NewCustomerHandler tạo mới CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %v", err)
	}
	hdl := &CustomerHandler{
		CustomerService: customerService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[customermodels.Customer, customerdto.CustomerCreateInput, customerdto.CustomerUpdateInput](customerService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// parseIDParam lấy và validate ObjectID từ URL param :id
func (h *CustomerHandler) parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := h.GetIDFromContext(c)
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID khách hàng không hợp lệ",
			common.StatusBadRequest,
			err,
		)
	}
	return objectID, nil
}

// InsertOne tạo khách hàng mới từ phía admin.
// Override CRUD mặc định: đi qua CreateByAdmin để chuẩn hóa điện thoại,
// chống trùng và gán mật khẩu mặc định (4 số cuối điện thoại).
func (h *CustomerHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input customerdto.CustomerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.CreateByAdmin(c.Context(), &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleSignUp khách hàng tự đăng ký, tài khoản tạo ra ở trạng thái pending
func (h *CustomerHandler) HandleSignUp(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input customerdto.SignUpInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.SignUp(c.Context(), &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleLogin khách hàng đăng nhập bằng điện thoại/mật khẩu
func (h *CustomerHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input customerdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.CustomerService.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleApprove admin duyệt một khách hàng đang chờ (pending → active)
func (h *CustomerHandler) HandleApprove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.Approve(c.Context(), id)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleApproveMany admin duyệt nhiều khách hàng, trả về số lượng đã duyệt
func (h *CustomerHandler) HandleApproveMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input customerdto.ApproveManyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ids := make([]primitive.ObjectID, 0, len(input.CustomerIDs))
		for _, idStr := range input.CustomerIDs {
			id, err := primitive.ObjectIDFromHex(idStr)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("ID khách hàng không hợp lệ: %s", idStr),
					common.StatusBadRequest,
					err,
				))
				return nil
			}
			ids = append(ids, id)
		}

		count, err := h.CustomerService.ApproveMany(c.Context(), ids)
		h.HandleResponse(c, map[string]interface{}{"approvedCount": count}, err)
		return nil
	})
}

// HandleWithdraw chuyển khách hàng sang trạng thái withdrawn (idempotent)
func (h *CustomerHandler) HandleWithdraw(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.Withdraw(c.Context(), id)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleSelfWithdraw khách hàng đang đăng nhập tự rút khỏi hệ thống
func (h *CustomerHandler) HandleSelfWithdraw(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		customer, err := h.CustomerService.Withdraw(c.Context(), customerID)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleRestore khôi phục tài khoản đã withdrawn về active
func (h *CustomerHandler) HandleRestore(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.Restore(c.Context(), id)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandlePermanentlyDelete xóa vĩnh viễn khách hàng sau khi xác nhận đúng tên.
// Cascade xóa luôn point_history, notifications và inquiries của khách.
func (h *CustomerHandler) HandlePermanentlyDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input customerdto.PermanentlyDeleteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.CustomerService.PermanentlyDelete(c.Context(), id, input.ConfirmedName)
		h.HandleResponse(c, map[string]interface{}{"deleted": err == nil}, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin khách hàng (admin theo :id)
func (h *CustomerHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input customerdto.CustomerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.UpdateProfile(c.Context(), id, &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleSelfUpdateProfile khách hàng đang đăng nhập tự cập nhật thông tin
func (h *CustomerHandler) HandleSelfUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input customerdto.CustomerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.UpdateProfile(c.Context(), customerID, &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleResetPassword đặt lại mật khẩu theo số điện thoại (sau xác nhận ngoài băng tần)
func (h *CustomerHandler) HandleResetPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input customerdto.ResetPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customer, err := h.CustomerService.ResetPassword(c.Context(), &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleMe trả về thông tin khách hàng đang đăng nhập
func (h *CustomerHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		customer, err := h.CustomerService.FindOneById(c.Context(), customerID)
		h.HandleResponse(c, customer, err)
		return nil
	})
}
