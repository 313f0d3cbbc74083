package utility

import (
	"github.com/dgrijalva/jwt-go"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
)

// JwtToken chứa data được mã hóa trong JWT token.
// Role phân biệt token của khách hàng ("customer") và quản trị viên ("admin").
type JwtToken struct {
	UserID       string `json:"userId"`
	Role         string `json:"role"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token với secret và các claims truyền vào.
// Trả về map có key "token" chứa chuỗi token đã ký.
func CreateToken(secret string, userID string, role string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := JwtToken{
		UserID:       userID,
		Role:         role,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và xác thực JWT token, trả về claims nếu token hợp lệ.
func ParseToken(secret string, tokenString string) (*JwtToken, error) {
	claims := &JwtToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
