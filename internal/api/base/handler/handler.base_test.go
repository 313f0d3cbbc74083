// Package basehdl - Test transform DTO sang model và build partial update.
package basehdl

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type widgetModel struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title    string             `json:"title" bson:"title"`
	IsActive bool               `json:"isActive" bson:"isActive"`
	Count    int64              `json:"count" bson:"count"`
}

type widgetCreate struct {
	Title    string `json:"title"`
	IsActive *bool  `json:"isActive"`
	Count    int64  `json:"count"`
}

type widgetUpdate struct {
	Title    string `json:"title"`
	IsActive *bool  `json:"isActive"`
}

func TestTransformInputToModel_CopyTrucTiep(t *testing.T) {
	input := widgetCreate{Title: "Khuyến mãi", Count: 7}
	var model widgetModel
	if err := transformInputToModel(&input, &model); err != nil {
		t.Fatalf("transformInputToModel lỗi: %v", err)
	}
	if model.Title != "Khuyến mãi" {
		t.Errorf("Title = %q, muốn %q", model.Title, "Khuyến mãi")
	}
	if model.Count != 7 {
		t.Errorf("Count = %d, muốn 7", model.Count)
	}
}

func TestTransformInputToModel_PointerField(t *testing.T) {
	// Pointer nil: bỏ qua, giữ giá trị mặc định của model
	var model widgetModel
	if err := transformInputToModel(&widgetCreate{Title: "a"}, &model); err != nil {
		t.Fatalf("transformInputToModel lỗi: %v", err)
	}
	if model.IsActive {
		t.Error("IsActive phải giữ zero value khi DTO không gửi")
	}

	// Pointer khác nil: deref và copy, kể cả giá trị zero
	f := false
	model = widgetModel{IsActive: true}
	if err := transformInputToModel(&widgetCreate{Title: "a", IsActive: &f}, &model); err != nil {
		t.Fatalf("transformInputToModel lỗi: %v", err)
	}
	if model.IsActive {
		t.Error("IsActive phải bị ghi đè thành false khi DTO gửi tường minh")
	}

	tr := true
	model = widgetModel{}
	if err := transformInputToModel(&widgetCreate{IsActive: &tr}, &model); err != nil {
		t.Fatalf("transformInputToModel lỗi: %v", err)
	}
	if !model.IsActive {
		t.Error("IsActive phải là true khi DTO gửi true")
	}
}

func TestBuildPartialUpdate_LocFieldZero(t *testing.T) {
	h := NewBaseHandler[widgetModel, widgetCreate, widgetUpdate](nil)

	input := widgetUpdate{Title: "Tiêu đề mới"}
	model := widgetModel{Title: "Tiêu đề mới"}
	update, err := h.buildPartialUpdate(&input, &model)
	if err != nil {
		t.Fatalf("buildPartialUpdate lỗi: %v", err)
	}
	if _, ok := update.Set["title"]; !ok {
		t.Error("$set phải chứa 'title'")
	}
	if _, ok := update.Set["isActive"]; ok {
		t.Error("$set không được chứa 'isActive' khi DTO không gửi")
	}
	if _, ok := update.Set["count"]; ok {
		t.Error("$set không được chứa field zero không gửi tường minh")
	}
}

func TestBuildPartialUpdate_PointerFalseVanVaoSet(t *testing.T) {
	h := NewBaseHandler[widgetModel, widgetCreate, widgetUpdate](nil)

	f := false
	input := widgetUpdate{IsActive: &f}
	model := widgetModel{IsActive: false}
	update, err := h.buildPartialUpdate(&input, &model)
	if err != nil {
		t.Fatalf("buildPartialUpdate lỗi: %v", err)
	}
	v, ok := update.Set["isActive"]
	if !ok {
		t.Fatal("$set phải chứa 'isActive' khi client gửi tường minh, kể cả giá trị false")
	}
	if b, _ := v.(bool); b {
		t.Error("isActive trong $set phải là false")
	}
}

func TestExplicitBSONKeys(t *testing.T) {
	tr := true
	input := widgetUpdate{Title: "x", IsActive: &tr}
	model := widgetModel{}

	keys := explicitBSONKeys(&input, &model)
	if !keys["isActive"] {
		t.Error("field pointer khác nil phải được đánh dấu explicit theo bson key")
	}
	if keys["title"] {
		t.Error("field không phải pointer không được đánh dấu explicit")
	}
}

func TestValidateFilter(t *testing.T) {
	h := NewBaseHandler[widgetModel, widgetCreate, widgetUpdate](nil)

	// Field bị cấm vì lý do bảo mật
	if err := h.validateFilter(map[string]interface{}{"password": "x"}); err == nil {
		t.Error("filter chứa 'password' phải bị từ chối")
	}
	if err := h.validateFilter(map[string]interface{}{"token": "x"}); err == nil {
		t.Error("filter chứa 'token' phải bị từ chối")
	}

	// Toán tử không nằm trong danh sách cho phép
	badOp := map[string]interface{}{
		"count": map[string]interface{}{"$where": "1"},
	}
	if err := h.validateFilter(badOp); err == nil {
		t.Error("toán tử '$where' phải bị từ chối")
	}

	// Filter hợp lệ
	ok := map[string]interface{}{
		"title": "x",
		"count": map[string]interface{}{"$gte": 1},
	}
	if err := h.validateFilter(ok); err != nil {
		t.Errorf("filter hợp lệ bị từ chối: %v", err)
	}

	// Quá số lượng trường cho phép
	tooMany := map[string]interface{}{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		tooMany[k] = 1
	}
	if err := h.validateFilter(tooMany); err == nil {
		t.Error("filter vượt quá 10 trường phải bị từ chối")
	}
}
