// Package cache - Test mirror cache áp dụng event thay đổi dữ liệu.
package cache

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/events"
)

type announcementDoc struct {
	ID    primitive.ObjectID
	Title string
}

func TestMirror_InsertUpdateDelete(t *testing.T) {
	m := newMirror("announcements")
	ctx := context.Background()
	id := primitive.NewObjectID()

	// Insert
	m.applyEvent(ctx, events.DataChangeEvent{
		CollectionName: "announcements",
		Operation:      events.OpInsert,
		Document:       announcementDoc{ID: id, Title: "Thông báo A"},
	})
	got, ok := m.Get("announcements", id.Hex())
	if !ok {
		t.Fatal("document phải có trong mirror sau insert")
	}
	if got.(announcementDoc).Title != "Thông báo A" {
		t.Errorf("Title = %q, muốn %q", got.(announcementDoc).Title, "Thông báo A")
	}

	// Update ghi đè theo _id
	m.applyEvent(ctx, events.DataChangeEvent{
		CollectionName: "announcements",
		Operation:      events.OpUpdate,
		Document:       announcementDoc{ID: id, Title: "Thông báo B"},
	})
	got, _ = m.Get("announcements", id.Hex())
	if got.(announcementDoc).Title != "Thông báo B" {
		t.Errorf("mirror phải chứa bản mới nhất, got %q", got.(announcementDoc).Title)
	}
	if m.Len("announcements") != 1 {
		t.Errorf("Len = %d, muốn 1", m.Len("announcements"))
	}

	// Delete theo _id
	m.applyEvent(ctx, events.DataChangeEvent{
		CollectionName: "announcements",
		Operation:      events.OpDelete,
		Document:       announcementDoc{ID: id},
	})
	if _, ok := m.Get("announcements", id.Hex()); ok {
		t.Error("document phải bị xóa khỏi mirror sau delete")
	}
}

func TestMirror_DeleteKhongCoIDXoaToanBo(t *testing.T) {
	m := newMirror("announcements")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m.applyEvent(ctx, events.DataChangeEvent{
			CollectionName: "announcements",
			Operation:      events.OpInsert,
			Document:       announcementDoc{ID: primitive.NewObjectID(), Title: "x"},
		})
	}
	if m.Len("announcements") != 3 {
		t.Fatalf("Len = %d, muốn 3", m.Len("announcements"))
	}

	// Delete nhiều document (không xác định _id): phải xóa toàn bộ mirror của collection
	m.applyEvent(ctx, events.DataChangeEvent{
		CollectionName: "announcements",
		Operation:      events.OpDelete,
		Document:       nil,
	})
	if m.Len("announcements") != 0 {
		t.Errorf("mirror phải rỗng sau delete không kèm _id, Len = %d", m.Len("announcements"))
	}
}

func TestMirror_BoQuaCollectionKhongDangKy(t *testing.T) {
	m := newMirror("announcements")
	ctx := context.Background()
	id := primitive.NewObjectID()

	m.applyEvent(ctx, events.DataChangeEvent{
		CollectionName: "customers",
		Operation:      events.OpInsert,
		Document:       announcementDoc{ID: id},
	})
	if _, ok := m.Get("customers", id.Hex()); ok {
		t.Error("collection không đăng ký mirror không được nhận document")
	}
	if m.Len("customers") != 0 {
		t.Error("Len của collection không đăng ký phải là 0")
	}
}
