// Package events - Test event bus và các helper reflection.
package events

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type customerDoc struct {
	ID        primitive.ObjectID
	PtrID     *primitive.ObjectID
	CreatedAt int64
	Name      string
}

func TestEmitDataChanged_GoiHandlerDaDangKy(t *testing.T) {
	received := make(chan DataChangeEvent, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		select {
		case received <- e:
		default:
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "customers",
		Operation:      OpInsert,
		Document:       customerDoc{Name: "홍길동"},
	})

	select {
	case e := <-received:
		if e.CollectionName != "customers" {
			t.Errorf("CollectionName = %q, muốn %q", e.CollectionName, "customers")
		}
		if e.Operation != OpInsert {
			t.Errorf("Operation = %q, muốn %q", e.Operation, OpInsert)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler không được gọi sau EmitDataChanged")
	}
}

func TestEmitDataChanged_HandlerPanicKhongLanSangHandlerKhac(t *testing.T) {
	received := make(chan struct{}, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "panic_test" {
			panic("boom")
		}
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "panic_test" {
			select {
			case received <- struct{}{}:
			default:
			}
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "panic_test",
		Operation:      OpUpdate,
	})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("handler thứ hai phải vẫn được gọi khi handler thứ nhất panic")
	}
}

func TestGetObjectIDField(t *testing.T) {
	id := primitive.NewObjectID()

	if got := GetObjectIDField(customerDoc{ID: id}, "ID"); got != id {
		t.Errorf("GetObjectIDField = %v, muốn %v", got, id)
	}
	if got := GetObjectIDField(&customerDoc{ID: id}, "ID"); got != id {
		t.Error("GetObjectIDField phải hoạt động với pointer đến struct")
	}
	if got := GetObjectIDField(customerDoc{PtrID: &id}, "PtrID"); got != id {
		t.Error("GetObjectIDField phải deref field *primitive.ObjectID")
	}
	if got := GetObjectIDField(customerDoc{}, "PtrID"); got != primitive.NilObjectID {
		t.Error("field pointer nil phải trả về NilObjectID")
	}
	if got := GetObjectIDField(nil, "ID"); got != primitive.NilObjectID {
		t.Error("document nil phải trả về NilObjectID")
	}
	if got := GetObjectIDField(customerDoc{}, "KhongTonTai"); got != primitive.NilObjectID {
		t.Error("field không tồn tại phải trả về NilObjectID")
	}
	if got := GetObjectIDField(customerDoc{Name: "x"}, "Name"); got != primitive.NilObjectID {
		t.Error("field không phải ObjectID phải trả về NilObjectID")
	}
}

func TestGetInt64Field(t *testing.T) {
	doc := customerDoc{CreatedAt: 1700000000000}
	if got := GetInt64Field(doc, "CreatedAt"); got != 1700000000000 {
		t.Errorf("GetInt64Field = %d, muốn %d", got, 1700000000000)
	}
	if got := GetInt64Field(doc, "Name"); got != 0 {
		t.Error("field không phải số phải trả về 0")
	}
	if got := GetInt64Field(nil, "CreatedAt"); got != 0 {
		t.Error("document nil phải trả về 0")
	}
}
