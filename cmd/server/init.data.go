package main

import (
	"context"

	adminsvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/logger"
)

// InitDefaultData seed dữ liệu mặc định: tài khoản admin hệ thống.
// Chỉ chạy khi INITMODE=true; chạy lại không tạo trùng (idempotent theo username).
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("INITMODE tắt, bỏ qua seed dữ liệu mặc định")
		return
	}

	log.Info("🔄 [INIT] Starting InitDefaultData...")

	adminUserService, err := adminsvc.NewAdminUserService()
	if err != nil {
		log.Fatalf("Failed to create admin user service: %v", err)
	}

	err = adminUserService.EnsureSeedAdmin(
		context.Background(),
		global.MongoDB_ServerConfig.AdminUsername,
		global.MongoDB_ServerConfig.AdminPassword,
	)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
