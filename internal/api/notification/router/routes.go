// Package router đăng ký các route thuộc domain Notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/middleware"
	notificationhdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/handler"
	apirouter "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/router"
)

// Register đăng ký tất cả route thông báo lên v1.
// Admin quản lý và broadcast; khách hàng xem, đánh dấu đã đọc và xóa thông báo của mình.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notificationHandler, err := notificationhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("create notification handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/notifications", notificationHandler, apirouter.ReadWriteConfig, "admin")

	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "POST", "/broadcast", []fiber.Handler{adminMiddleware}, notificationHandler.HandleBroadcast)

	customerMiddleware := middleware.AuthMiddleware("customer")
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/my", []fiber.Handler{customerMiddleware}, notificationHandler.HandleMyNotifications)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "PUT", "/:id/read", []fiber.Handler{customerMiddleware}, notificationHandler.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "PUT", "/my/read-all", []fiber.Handler{customerMiddleware}, notificationHandler.HandleMarkAllRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "DELETE", "/my/:id", []fiber.Handler{customerMiddleware}, notificationHandler.HandleDeleteMine)

	adminNotificationHandler, err := notificationhdl.NewAdminNotificationHandler()
	if err != nil {
		return fmt.Errorf("create admin notification handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/admin-notifications", adminNotificationHandler, apirouter.ReadOnlyConfig, "admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/admin-notifications", "PUT", "/:id/read", []fiber.Handler{adminMiddleware}, adminNotificationHandler.HandleMarkRead)

	return nil
}
