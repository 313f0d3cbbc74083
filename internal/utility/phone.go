package utility

import "strings"

// NormalizePhone chuẩn hóa số điện thoại về dạng canonical:
// bỏ toàn bộ ký tự không phải số, sau đó bỏ các số 0 ở đầu.
// "010-1234-5678" và "01012345678" cùng cho ra "1012345678".
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	return strings.TrimLeft(digits, "0")
}

// PhoneLast4 trả về 4 số cuối của số điện thoại đã chuẩn hóa,
// dùng làm mật khẩu mặc định khi admin tạo khách hàng.
func PhoneLast4(normalized string) string {
	if len(normalized) <= 4 {
		return normalized
	}
	return normalized[len(normalized)-4:]
}
