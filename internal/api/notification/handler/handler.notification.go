package notificationhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/handler"
	notificationdto "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/dto"
	notificationmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/models"
	notificationsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationHandler xử lý các request liên quan đến thông báo của khách hàng
type NotificationHandler struct {
	*basehdl.BaseHandler[notificationmodels.Notification, notificationdto.NotificationCreateInput, notificationdto.NotificationUpdateInput]
	NotificationService *notificationsvc.NotificationService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notificationsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	hdl := &NotificationHandler{
		NotificationService: notificationService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[notificationmodels.Notification, notificationdto.NotificationCreateInput, notificationdto.NotificationUpdateInput](notificationService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// HandleBroadcast admin gửi tin nhắn hàng loạt.
// Danh sách id rỗng nghĩa là gửi cho toàn bộ khách hàng đang active.
func (h *NotificationHandler) HandleBroadcast(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input notificationdto.BroadcastInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if len(input.CustomerIDs) == 0 {
			result, err := h.NotificationService.BroadcastAllActive(c.Context(), input.Title, input.Content)
			h.HandleResponse(c, result, err)
			return nil
		}

		customerIDs := make([]primitive.ObjectID, 0, len(input.CustomerIDs))
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
			customerIDs = append(customerIDs, id)
		}

		result, err := h.NotificationService.Broadcast(c.Context(), customerIDs, input.Title, input.Content)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMarkRead khách hàng đánh dấu một thông báo của chính mình đã đọc
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		id := h.GetIDFromContext(c)
		notificationID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		notification, err := h.NotificationService.MarkRead(c.Context(), notificationID, customerID)
		h.HandleResponse(c, notification, err)
		return nil
	})
}

// HandleMyNotifications trả về thông báo của khách hàng đang đăng nhập, mới nhất trước
func (h *NotificationHandler) HandleMyNotifications(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		notifications, err := h.NotificationService.Find(c.Context(), bson.M{"customerId": customerID}, opts)
		h.HandleResponse(c, notifications, err)
		return nil
	})
}

// HandleMarkAllRead đánh dấu đã đọc toàn bộ thông báo chưa đọc của khách hàng đang đăng nhập
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		count, err := h.NotificationService.MarkAllRead(c.Context(), customerID)
		h.HandleResponse(c, map[string]interface{}{"markedCount": count}, err)
		return nil
	})
}

// HandleDeleteMine khách hàng xóa một thông báo của chính mình
func (h *NotificationHandler) HandleDeleteMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID, ok := c.Locals("customer_id").(primitive.ObjectID)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		id := h.GetIDFromContext(c)
		notificationID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		// Filter kèm customerId để khách không xóa được thông báo của người khác
		err = h.NotificationService.DeleteOne(c.Context(), bson.M{"_id": notificationID, "customerId": customerID})
		h.HandleResponse(c, map[string]interface{}{"deleted": err == nil}, err)
		return nil
	})
}
