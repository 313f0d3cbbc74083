// Package cache duy trì mirror cache cục bộ cho các collection,
// được cập nhật duy nhất qua luồng event từ package events.
// Đọc từ cache phục vụ các lookup read-mostly (thông báo chung đang hiển thị, ...).
package cache

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/events"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/registry"
)

// Mirror là cache phản chiếu document theo collection, key là _id hex.
// Mọi thay đổi đi qua applyEvent — không có API ghi trực tiếp.
type Mirror struct {
	collections *registry.Registry[*registry.Registry[interface{}]]
}

var (
	defaultMirror *Mirror
	initOnce      sync.Once
)

// Init khởi tạo mirror mặc định và đăng ký handler với event bus.
// Chỉ các collection được truyền vào mới được mirror, event của
// collection khác bị bỏ qua.
func Init(collectionNames ...string) *Mirror {
	initOnce.Do(func() {
		defaultMirror = newMirror(collectionNames...)
		events.OnDataChanged(defaultMirror.applyEvent)
	})
	return defaultMirror
}

// GetMirror trả về mirror mặc định, nil nếu chưa Init.
func GetMirror() *Mirror {
	return defaultMirror
}

func newMirror(collectionNames ...string) *Mirror {
	m := &Mirror{
		collections: registry.NewRegistry[*registry.Registry[interface{}]](),
	}
	for _, name := range collectionNames {
		m.collections.Register(name, registry.NewRegistry[interface{}]())
	}
	return m
}

// applyEvent áp dụng một DataChangeEvent vào mirror.
// Insert/update/upsert ghi đè theo _id, delete xóa theo _id.
// Delete không kèm _id thì xóa toàn bộ mirror của collection đó
// để lần đọc sau không trả về dữ liệu cũ.
func (m *Mirror) applyEvent(ctx context.Context, e events.DataChangeEvent) {
	col, exists := m.collections.Get(e.CollectionName)
	if !exists {
		return
	}

	id := events.GetObjectIDField(e.Document, "ID")

	switch e.Operation {
	case events.OpInsert, events.OpUpdate, events.OpUpsert:
		if id == primitive.NilObjectID {
			return
		}
		col.Register(id.Hex(), e.Document)
	case events.OpDelete:
		if id == primitive.NilObjectID {
			col.ClearAll(nil)
			return
		}
		col.Clear(id.Hex(), nil)
	}
}

// Get lấy document đã mirror theo collection và _id hex.
func (m *Mirror) Get(collectionName string, idHex string) (interface{}, bool) {
	col, exists := m.collections.Get(collectionName)
	if !exists {
		return nil, false
	}
	return col.Get(idHex)
}

// Items trả về snapshot toàn bộ document đã mirror của một collection.
func (m *Mirror) Items(collectionName string) map[string]interface{} {
	col, exists := m.collections.Get(collectionName)
	if !exists {
		return nil
	}
	return col.Items()
}

// Len trả về số document đã mirror của một collection.
func (m *Mirror) Len(collectionName string) int {
	col, exists := m.collections.Get(collectionName)
	if !exists {
		return 0
	}
	return col.Len()
}
