package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/config"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Customers          string // Tên collection cho khách hàng
	PointHistory       string // Tên collection cho lịch sử điểm (sổ cái)
	Notifications      string // Tên collection cho thông báo khách hàng
	Announcements      string // Tên collection cho thông báo chung (공지사항)
	Inquiries          string // Tên collection cho yêu cầu từ khách hàng
	AdminNotifications string // Tên collection cho thông báo tới admin
	AdminUsers         string // Tên collection cho tài khoản admin
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
