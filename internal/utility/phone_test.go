// Package utility - Test chuẩn hóa số điện thoại và lấy 4 số cuối.
package utility

import "testing"

func TestNormalizePhone_CungMotSoNhieuCachViet(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"010-1234-5678", "1012345678"},
		{"01012345678", "1012345678"},
		{"010 1234 5678", "1012345678"},
		{"+82-10-1234-5678", "82101234567" + "8"},
		{"(010) 1234.5678", "1012345678"},
	}
	for _, c := range cases {
		got := NormalizePhone(c.raw)
		if got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, muốn %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizePhone_BoSoKhongDau(t *testing.T) {
	if got := NormalizePhone("0001012345678"); got != "1012345678" {
		t.Errorf("số 0 ở đầu phải bị bỏ hết, got %q", got)
	}
	if got := NormalizePhone("000"); got != "" {
		t.Errorf("chuỗi toàn số 0 phải cho ra rỗng, got %q", got)
	}
	if got := NormalizePhone("abc-def"); got != "" {
		t.Errorf("chuỗi không có chữ số phải cho ra rỗng, got %q", got)
	}
}

func TestPhoneLast4(t *testing.T) {
	if got := PhoneLast4("1012345678"); got != "5678" {
		t.Errorf("PhoneLast4 = %q, muốn %q", got, "5678")
	}
	// Số đã chuẩn hóa ngắn hơn 4 ký tự thì trả về nguyên chuỗi
	if got := PhoneLast4("123"); got != "123" {
		t.Errorf("PhoneLast4 với chuỗi ngắn = %q, muốn %q", got, "123")
	}
	if got := PhoneLast4(""); got != "" {
		t.Errorf("PhoneLast4 với chuỗi rỗng phải trả về rỗng, got %q", got)
	}
}

func TestPhoneLast4_SauChuanHoaSoCoDinhDang(t *testing.T) {
	// Mật khẩu mặc định khi admin tạo khách hàng: 4 số cuối của số đã
	// chuẩn hóa, kể cả khi số nhập vào có gạch ngang và khoảng trắng
	if got := PhoneLast4(NormalizePhone("010-1234 5678 ")); got != "5678" {
		t.Errorf("PhoneLast4 sau chuẩn hóa = %q, muốn %q", got, "5678")
	}
}
