// Package router đăng ký các route thuộc domain Inquiry.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	inquiryhdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/inquiry/handler"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/middleware"
	apirouter "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/router"
)

// Register đăng ký tất cả route yêu cầu khách hàng lên v1.
// Khách hàng tạo và xem yêu cầu của mình; admin xem danh sách và resolve qua CRUD + route riêng.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	inquiryHandler, err := inquiryhdl.NewInquiryHandler()
	if err != nil {
		return fmt.Errorf("create inquiry handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/inquiries", inquiryHandler, apirouter.ReadOnlyConfig, "admin")

	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/inquiries", "POST", "/:id/resolve", []fiber.Handler{adminMiddleware}, inquiryHandler.HandleResolve)

	customerMiddleware := middleware.AuthMiddleware("customer")
	apirouter.RegisterRouteWithMiddleware(v1, "/inquiries", "POST", "/create", []fiber.Handler{customerMiddleware}, inquiryHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/inquiries", "GET", "/my", []fiber.Handler{customerMiddleware}, inquiryHandler.HandleMyInquiries)

	return nil
}
