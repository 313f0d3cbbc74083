// Package router đăng ký các route thuộc domain Admin.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	adminhdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/handler"
	apirouter "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/router"
)

// Register đăng ký tất cả route quản trị lên v1.
// Login không yêu cầu token; CRUD tài khoản quản trị yêu cầu role admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	adminUserHandler, err := adminhdl.NewAdminUserHandler()
	if err != nil {
		return fmt.Errorf("create admin user handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/admin/users", adminUserHandler, apirouter.ReadWriteConfig, "admin")

	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/login", nil, adminUserHandler.HandleLogin)

	return nil
}
