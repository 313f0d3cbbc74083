package announcementhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	announcementdto "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/dto"
	announcementmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/models"
	announcementsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/service"
	basehdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/handler"
)

// AnnouncementHandler xử lý các request liên quan đến thông báo chung
type AnnouncementHandler struct {
	*basehdl.BaseHandler[announcementmodels.Announcement, announcementdto.AnnouncementCreateInput, announcementdto.AnnouncementUpdateInput]
	AnnouncementService *announcementsvc.AnnouncementService
}

// NewAnnouncementHandler tạo mới AnnouncementHandler
func NewAnnouncementHandler() (*AnnouncementHandler, error) {
	announcementService, err := announcementsvc.NewAnnouncementService()
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement service: %v", err)
	}
	hdl := &AnnouncementHandler{
		AnnouncementService: announcementService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[announcementmodels.Announcement, announcementdto.AnnouncementCreateInput, announcementdto.AnnouncementUpdateInput](announcementService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// HandleGetActive trả về danh sách thông báo đang hiển thị cho khách hàng
func (h *AnnouncementHandler) HandleGetActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		announcements, err := h.AnnouncementService.GetActive(c.Context())
		h.HandleResponse(c, announcements, err)
		return nil
	})
}
