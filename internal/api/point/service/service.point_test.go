// Package pointsvc - Test validate đầu vào của tích/trừ điểm.
package pointsvc

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	pointmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/point/models"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
)

func TestEarn_TuChoiLuongDiemKhongDuong(t *testing.T) {
	s := &PointService{}
	ids := []primitive.ObjectID{primitive.NewObjectID()}

	if _, err := s.Earn(context.Background(), ids, 0); err != common.ErrNonPositiveAmount {
		t.Errorf("Earn với amount = 0 phải trả về ErrNonPositiveAmount, got %v", err)
	}
	if _, err := s.Earn(context.Background(), ids, -100); err != common.ErrNonPositiveAmount {
		t.Errorf("Earn với amount âm phải trả về ErrNonPositiveAmount, got %v", err)
	}
}

func TestDeduct_TuChoiLuongDiemKhongDuong(t *testing.T) {
	s := &PointService{}
	ids := []primitive.ObjectID{primitive.NewObjectID()}

	if _, err := s.Deduct(context.Background(), ids, 0, "nhập nhầm"); err != common.ErrNonPositiveAmount {
		t.Errorf("Deduct với amount = 0 phải trả về ErrNonPositiveAmount, got %v", err)
	}
}

func TestDeduct_BatBuocCoLyDo(t *testing.T) {
	s := &PointService{}
	ids := []primitive.ObjectID{primitive.NewObjectID()}

	if _, err := s.Deduct(context.Background(), ids, 100, ""); err != common.ErrReasonRequired {
		t.Errorf("Deduct không có lý do phải trả về ErrReasonRequired, got %v", err)
	}
	if _, err := s.Deduct(context.Background(), ids, 100, "   "); err != common.ErrReasonRequired {
		t.Errorf("Deduct với lý do toàn khoảng trắng phải trả về ErrReasonRequired, got %v", err)
	}
}

func entry(points int64) pointmodels.PointHistory {
	return pointmodels.PointHistory{Points: points}
}

func TestFoldLedger_ClampTungBuocKhongNuotDiemTichSau(t *testing.T) {
	// Khách có 50 điểm, bị trừ 100 (clamp về 0), rồi tích thêm 30.
	// Replay từng bước phải ra 30; tổng thô của sổ cái là -20 và nếu
	// chỉ clamp tổng thì ra 0, nuốt mất 30 điểm vừa tích.
	entries := []pointmodels.PointHistory{entry(50), entry(-100), entry(30)}

	if got := foldLedger(entries); got != 30 {
		t.Errorf("foldLedger sau clamp rồi tích thêm phải ra 30, got %d", got)
	}
}

func TestFoldLedger_KhopTongKhiKhongCoClamp(t *testing.T) {
	entries := []pointmodels.PointHistory{entry(100), entry(-30), entry(500)}

	if got := foldLedger(entries); got != 570 {
		t.Errorf("foldLedger không có clamp phải khớp tổng thường, got %d", got)
	}
}

func TestFoldLedger_TruVuotSoDuVeKhong(t *testing.T) {
	entries := []pointmodels.PointHistory{entry(100), entry(-9999)}

	if got := foldLedger(entries); got != 0 {
		t.Errorf("Trừ vượt số dư phải clamp về 0, got %d", got)
	}
}

func TestFoldLedger_SoCaiRong(t *testing.T) {
	if got := foldLedger(nil); got != 0 {
		t.Errorf("Sổ cái rỗng phải ra số dư 0, got %d", got)
	}
}
