// Package router đăng ký các route thuộc domain Announcement.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	announcementhdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/handler"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/middleware"
	apirouter "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/router"
)

// Register đăng ký tất cả route thông báo chung lên v1.
// Admin quản lý qua CRUD; khách hàng chỉ xem danh sách đang hiển thị.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	announcementHandler, err := announcementhdl.NewAnnouncementHandler()
	if err != nil {
		return fmt.Errorf("create announcement handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/announcements", announcementHandler, apirouter.ReadWriteConfig, "admin")

	customerMiddleware := middleware.AuthMiddleware("customer")
	apirouter.RegisterRouteWithMiddleware(v1, "/announcements", "GET", "/active", []fiber.Handler{customerMiddleware}, announcementHandler.HandleGetActive)

	return nil
}
