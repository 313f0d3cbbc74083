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
)

// AdminNotificationHandler xử lý các request liên quan đến thông báo của admin
type AdminNotificationHandler struct {
	*basehdl.BaseHandler[notificationmodels.AdminNotification, notificationdto.AdminNotificationCreateInput, notificationdto.AdminNotificationUpdateInput]
	AdminNotificationService *notificationsvc.AdminNotificationService
}

// NewAdminNotificationHandler tạo mới AdminNotificationHandler
func NewAdminNotificationHandler() (*AdminNotificationHandler, error) {
	adminNotificationService, err := notificationsvc.NewAdminNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin notification service: %v", err)
	}
	hdl := &AdminNotificationHandler{
		AdminNotificationService: adminNotificationService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[notificationmodels.AdminNotification, notificationdto.AdminNotificationCreateInput, notificationdto.AdminNotificationUpdateInput](adminNotificationService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// HandleMarkRead đánh dấu một thông báo admin đã đọc
func (h *AdminNotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
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

		notification, err := h.AdminNotificationService.MarkRead(c.Context(), notificationID)
		h.HandleResponse(c, notification, err)
		return nil
	})
}
