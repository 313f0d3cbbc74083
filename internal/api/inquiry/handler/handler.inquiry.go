package inquiryhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/handler"
	inquirydto "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/inquiry/dto"
	inquirymodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/inquiry/models"
	inquirysvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/inquiry/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
)

// InquiryHandler xử lý các request liên quan đến yêu cầu của khách hàng
type InquiryHandler struct {
	*basehdl.BaseHandler[inquirymodels.Inquiry, inquirydto.InquiryCreateInput, inquirydto.InquiryUpdateInput]
	InquiryService *inquirysvc.InquiryService
}

// NewInquiryHandler tạo mới InquiryHandler
func NewInquiryHandler() (*InquiryHandler, error) {
	inquiryService, err := inquirysvc.NewInquiryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry service: %v", err)
	}
	hdl := &InquiryHandler{
		InquiryService: inquiryService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[inquirymodels.Inquiry, inquirydto.InquiryCreateInput, inquirydto.InquiryUpdateInput](inquiryService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// HandleCreate khách hàng đang đăng nhập gửi yêu cầu mới
func (h *InquiryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input inquirydto.InquiryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		inquiry, err := h.InquiryService.Create(c.Context(), customerID, input.Type, input.Content)
		h.HandleResponse(c, inquiry, err)
		return nil
	})
}

// HandleMyInquiries trả về các yêu cầu của chính khách hàng đang đăng nhập
func (h *InquiryHandler) HandleMyInquiries(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		inquiries, err := h.InquiryService.ListByCustomer(c.Context(), customerID)
		h.HandleResponse(c, inquiries, err)
		return nil
	})
}

// HandleResolve admin đánh dấu một yêu cầu đã xử lý xong
func (h *InquiryHandler) HandleResolve(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		inquiryID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		inquiry, err := h.InquiryService.Resolve(c.Context(), inquiryID)
		h.HandleResponse(c, inquiry, err)
		return nil
	})
}
