// Package announcementsvc - Test lọc và sắp xếp thông báo đang hiển thị từ snapshot mirror.
package announcementsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	announcementmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/models"
)

func mirrorItems(announcements ...announcementmodels.Announcement) map[string]interface{} {
	items := make(map[string]interface{}, len(announcements))
	for _, a := range announcements {
		items[a.ID.Hex()] = a
	}
	return items
}

func announcementAt(title string, createdAt int64, isActive bool, isPinned bool, expiresAt int64) announcementmodels.Announcement {
	return announcementmodels.Announcement{
		ID:        primitive.NewObjectID(),
		Title:     title,
		IsActive:  isActive,
		IsPinned:  isPinned,
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}
}

func TestActiveFromMirror_LocInactiveVaHetHan(t *testing.T) {
	now := int64(1_000_000)
	items := mirrorItems(
		announcementAt("hiển thị", 100, true, false, 0),
		announcementAt("đã tắt", 200, false, false, 0),
		announcementAt("đã hết hạn", 300, true, false, now-1),
		announcementAt("còn hạn", 400, true, false, now+1),
	)

	result := activeFromMirror(items, now)

	if len(result) != 2 {
		t.Fatalf("Phải còn đúng 2 thông báo đang hiển thị, got %d", len(result))
	}
	for _, a := range result {
		if a.Title == "đã tắt" || a.Title == "đã hết hạn" {
			t.Errorf("Thông báo %q không được xuất hiện trong danh sách đang hiển thị", a.Title)
		}
	}
}

func TestActiveFromMirror_GhimTruocRoiMoiNhatTruoc(t *testing.T) {
	now := int64(1_000_000)
	items := mirrorItems(
		announcementAt("thường cũ", 100, true, false, 0),
		announcementAt("thường mới", 300, true, false, 0),
		announcementAt("ghim cũ", 50, true, true, 0),
		announcementAt("ghim mới", 200, true, true, 0),
	)

	result := activeFromMirror(items, now)

	if len(result) != 4 {
		t.Fatalf("Phải đủ 4 thông báo, got %d", len(result))
	}
	want := []string{"ghim mới", "ghim cũ", "thường mới", "thường cũ"}
	for i, title := range want {
		if result[i].Title != title {
			t.Errorf("Vị trí %d phải là %q, got %q", i, title, result[i].Title)
		}
	}
}

func TestActiveFromMirror_BoQuaDocumentSaiKieu(t *testing.T) {
	items := map[string]interface{}{
		"bogus": "không phải announcement",
	}

	result := activeFromMirror(items, 0)

	if len(result) != 0 {
		t.Errorf("Document sai kiểu phải bị bỏ qua, got %d phần tử", len(result))
	}
}
