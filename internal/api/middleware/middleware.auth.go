package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	adminmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/admin/models"
	customermodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/customer/models"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/utility"
)

// AuthMiddleware xác thực bearer token theo role yêu cầu ("admin" hoặc "customer").
// Token phải còn hạn, đúng role và trùng với token đang lưu trên document
// (đăng nhập phiên mới hoặc rút khỏi hệ thống sẽ thu hồi phiên cũ).
// Principal được lưu vào locals: admin_id hoặc customer_id (primitive.ObjectID).
func AuthMiddleware(requiredRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		if claims.Role != requiredRole {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				"Không có quyền truy cập tài nguyên này",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		switch requiredRole {
		case "admin":
			adminUser, err := lookupAdminByToken(c.Context(), userID, token)
			if err != nil {
				HandleErrorResponse(c, err)
				return nil
			}
			c.Locals("admin_id", adminUser.ID)
			c.Locals("admin_user", adminUser)
		case "customer":
			customer, err := lookupCustomerByToken(c.Context(), userID, token)
			if err != nil {
				HandleErrorResponse(c, err)
				return nil
			}
			c.Locals("customer_id", customer.ID)
			c.Locals("customer", customer)
		default:
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		return c.Next()
	}
}

// extractBearerToken lấy token từ header Authorization dạng "Bearer <token>"
func extractBearerToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// lookupAdminByToken đối chiếu token với document admin đang lưu token đó
func lookupAdminByToken(ctx context.Context, id primitive.ObjectID, token string) (adminmodels.AdminUser, error) {
	var adminUser adminmodels.AdminUser

	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminUsers)
	if !exist {
		return adminUser, common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection admin_users", common.StatusInternalServerError, nil)
	}

	err := collection.FindOne(ctx, bson.M{"_id": id, "token": token}).Decode(&adminUser)
	if err != nil {
		return adminUser, common.ErrTokenInvalid
	}
	return adminUser, nil
}

// lookupCustomerByToken đối chiếu token với document khách hàng, chặn tài khoản withdrawn
func lookupCustomerByToken(ctx context.Context, id primitive.ObjectID, token string) (customermodels.Customer, error) {
	var customer customermodels.Customer

	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return customer, common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection customers", common.StatusInternalServerError, nil)
	}

	err := collection.FindOne(ctx, bson.M{"_id": id, "token": token}).Decode(&customer)
	if err != nil {
		return customer, common.ErrTokenInvalid
	}

	if customer.Status == customermodels.CustomerStatusWithdrawn {
		return customer, common.ErrWithdrawnAccount
	}
	return customer, nil
}
