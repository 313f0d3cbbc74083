package main

import (
	"context"

	"github.com/sirupsen/logrus"

	adminmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/models"
	announcementmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/models"
	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	inquirymodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/inquiry/models"
	notificationmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/notification/models"
	pointmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/models"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/config"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/database"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Customers = "customers"
	global.MongoDB_ColNames.PointHistory = "point_history"
	global.MongoDB_ColNames.Notifications = "notifications"
	global.MongoDB_ColNames.Announcements = "announcements"
	global.MongoDB_ColNames.Inquiries = "inquiries"
	global.MongoDB_ColNames.AdminNotifications = "admin_notifications"
	global.MongoDB_ColNames.AdminUsers = "admin_users"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection từ struct tag `index`
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Customers), customermodels.Customer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PointHistory), pointmodels.PointHistory{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Notifications), notificationmodels.Notification{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Announcements), announcementmodels.Announcement{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Inquiries), inquirymodels.Inquiry{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AdminNotifications), notificationmodels.AdminNotification{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AdminUsers), adminmodels.AdminUser{})
}
