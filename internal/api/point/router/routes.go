// Package router đăng ký các route thuộc domain Point: tích/trừ điểm, lịch sử.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/middleware"
	pointhdl "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/handler"
	apirouter "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/router"
)

// Register đăng ký tất cả route điểm lên v1.
// Sổ cái bất biến nên CRUD chỉ mở đọc; biến động điểm đi qua earn/deduct,
// xóa bút toán đi qua route riêng để tính lại số dư.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pointHandler, err := pointhdl.NewPointHandler()
	if err != nil {
		return fmt.Errorf("create point handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/points/history", pointHandler, apirouter.ReadOnlyConfig, "admin")

	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/points", "POST", "/earn", []fiber.Handler{adminMiddleware}, pointHandler.HandleEarn)
	apirouter.RegisterRouteWithMiddleware(v1, "/points", "POST", "/deduct", []fiber.Handler{adminMiddleware}, pointHandler.HandleDeduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/points/history", "GET", "/customer/:customerId", []fiber.Handler{adminMiddleware}, pointHandler.HandleHistory)
	apirouter.RegisterRouteWithMiddleware(v1, "/points/history", "DELETE", "/delete-by-id/:id", []fiber.Handler{adminMiddleware}, pointHandler.HandleDeleteHistoryEntry)

	customerMiddleware := middleware.AuthMiddleware("customer")
	apirouter.RegisterRouteWithMiddleware(v1, "/points", "GET", "/my-history", []fiber.Handler{customerMiddleware}, pointHandler.HandleMyHistory)

	return nil
}
