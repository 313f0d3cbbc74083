package pointhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/handler"
	pointdto "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/dto"
	pointmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/models"
	pointsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
)

// PointHandler xử lý các request liên quan đến điểm: tích, trừ, lịch sử
type PointHandler struct {
	*basehdl.BaseHandler[pointmodels.PointHistory, pointdto.PointHistoryCreateInput, pointdto.PointHistoryUpdateInput]
	PointService *pointsvc.PointService
}

// NewPointHandler tạo mới PointHandler
func NewPointHandler() (*PointHandler, error) {
	pointService, err := pointsvc.NewPointService()
	if err != nil {
		return nil, fmt.Errorf("failed to create point service: %v", err)
	}
	hdl := &PointHandler{
		PointService: pointService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[pointmodels.PointHistory, pointdto.PointHistoryCreateInput, pointdto.PointHistoryUpdateInput](pointService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// parseCustomerIDs chuyển danh sách id dạng chuỗi sang ObjectID
func parseCustomerIDs(ids []string) ([]primitive.ObjectID, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID khách hàng không hợp lệ: %s", id),
				common.StatusBadRequest,
				err,
			)
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, nil
}

// HandleEarn tích điểm cho một hoặc nhiều khách hàng
func (h *PointHandler) HandleEarn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input pointdto.EarnInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customerIDs, err := parseCustomerIDs(input.CustomerIDs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.PointService.Earn(c.Context(), customerIDs, input.Amount)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleDeduct trừ điểm một hoặc nhiều khách hàng, bắt buộc có lý do
func (h *PointHandler) HandleDeduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input pointdto.DeductInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customerIDs, err := parseCustomerIDs(input.CustomerIDs)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.PointService.Deduct(c.Context(), customerIDs, input.Amount, input.Reason)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleHistory trả về lịch sử điểm của một khách hàng, mới nhất trước
func (h *PointHandler) HandleHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params pointdto.HistoryParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		customerID, err := primitive.ObjectIDFromHex(params.CustomerID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID khách hàng không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		history, err := h.PointService.History(c.Context(), customerID)
		h.HandleResponse(c, history, err)
		return nil
	})
}

// HandleMyHistory trả về lịch sử điểm của chính khách hàng đang đăng nhập
func (h *PointHandler) HandleMyHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		history, err := h.PointService.History(c.Context(), customerID)
		h.HandleResponse(c, history, err)
		return nil
	})
}

// HandleDeleteHistoryEntry xóa một bút toán rồi tính lại số dư của khách
// từ sổ cái (thay thế DeleteById mặc định vì cần đồng bộ lại total_points)
func (h *PointHandler) HandleDeleteHistoryEntry(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		entryID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		balance, err := h.PointService.DeleteHistoryEntry(c.Context(), entryID)
		h.HandleResponse(c, map[string]interface{}{"totalPoints": balance}, err)
		return nil
	})
}
