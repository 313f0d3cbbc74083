// Package utility - Test tạo và giải mã JWT token.
package utility

import (
	"testing"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
)

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	result, err := CreateToken(secret, "64f000000000000000000001", "customer", "18c1a2b3", "42")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	tokenStr, ok := result["token"]
	if !ok || tokenStr == "" {
		t.Fatal("CreateToken không trả về key 'token'")
	}

	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		t.Fatalf("ParseToken lỗi với token hợp lệ: %v", err)
	}
	if claims.UserID != "64f000000000000000000001" {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, "64f000000000000000000001")
	}
	if claims.Role != "customer" {
		t.Errorf("Role = %q, muốn %q", claims.Role, "customer")
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "64f000000000000000000001", "admin", "18c1a2b3", "7")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	_, err = ParseToken("secret-b", result["token"])
	if err == nil {
		t.Fatal("ParseToken với sai secret phải trả về lỗi")
	}
	if err != common.ErrTokenInvalid {
		t.Errorf("ParseToken với sai secret phải trả về ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_ChuoiRac(t *testing.T) {
	_, err := ParseToken("secret", "not-a-jwt")
	if err != common.ErrTokenInvalid {
		t.Errorf("ParseToken với chuỗi rác phải trả về ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_PhanBietRole(t *testing.T) {
	secret := "shared-secret"
	adminResult, _ := CreateToken(secret, "64f000000000000000000002", "admin", "18c1a2b4", "1")
	customerResult, _ := CreateToken(secret, "64f000000000000000000003", "customer", "18c1a2b5", "2")

	adminClaims, err := ParseToken(secret, adminResult["token"])
	if err != nil {
		t.Fatalf("ParseToken token admin lỗi: %v", err)
	}
	customerClaims, err := ParseToken(secret, customerResult["token"])
	if err != nil {
		t.Fatalf("ParseToken token customer lỗi: %v", err)
	}
	if adminClaims.Role == customerClaims.Role {
		t.Error("token admin và customer phải mang role khác nhau")
	}
}
