// Package router đăng ký các route thuộc domain Customer.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/handler"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/middleware"
	apirouter "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/router"
)

// Register đăng ký tất cả route khách hàng lên v1.
// Đăng ký, đăng nhập và đặt lại mật khẩu là route public; vòng đời tài khoản
// (duyệt, rút, khôi phục, xóa vĩnh viễn) yêu cầu role admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("create customer handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/customers", customerHandler, apirouter.ReadWriteConfig, "admin")

	// Public
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/sign-up", nil, customerHandler.HandleSignUp)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/login", nil, customerHandler.HandleLogin)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/reset-password", nil, customerHandler.HandleResetPassword)

	// Admin
	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/:id/approve", []fiber.Handler{adminMiddleware}, customerHandler.HandleApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/approve-many", []fiber.Handler{adminMiddleware}, customerHandler.HandleApproveMany)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/:id/withdraw", []fiber.Handler{adminMiddleware}, customerHandler.HandleWithdraw)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/:id/restore", []fiber.Handler{adminMiddleware}, customerHandler.HandleRestore)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "DELETE", "/:id/permanent", []fiber.Handler{adminMiddleware}, customerHandler.HandlePermanentlyDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "PUT", "/:id/profile", []fiber.Handler{adminMiddleware}, customerHandler.HandleUpdateProfile)

	// Customer tự thao tác trên tài khoản của mình
	customerMiddleware := middleware.AuthMiddleware("customer")
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/me", []fiber.Handler{customerMiddleware}, customerHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "PUT", "/me/profile", []fiber.Handler{customerMiddleware}, customerHandler.HandleSelfUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/me/withdraw", []fiber.Handler{customerMiddleware}, customerHandler.HandleSelfWithdraw)

	return nil
}
