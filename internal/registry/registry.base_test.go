// Package registry - Test registry generic thread-safe.
package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("item mới phải trả về isNew = true")
	}

	// Ghi đè item cũ
	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè item cũ phải trả về isNew = false")
	}

	v, exists := r.Get("a")
	if !exists || v != 2 {
		t.Errorf("Get = (%d, %v), muốn (2, true)", v, exists)
	}

	if _, exists := r.Get("b"); exists {
		t.Error("item chưa đăng ký phải trả về exists = false")
	}
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0
	creator := func() (string, error) {
		calls++
		return "value", nil
	}

	v, err := r.GetOrCreate("k", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if v != "value" {
		t.Errorf("GetOrCreate = %q, muốn %q", v, "value")
	}

	// Lần gọi sau phải trả về item đã có, không gọi lại creator
	if _, err := r.GetOrCreate("k", creator); err != nil {
		t.Fatalf("GetOrCreate lần 2 lỗi: %v", err)
	}
	if calls != 1 {
		t.Errorf("creator được gọi %d lần, muốn 1", calls)
	}
}

func TestRegistry_ClearVoiCleanup(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(v int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted || !cleaned {
		t.Error("Clear phải gọi cleanup rồi xóa item")
	}

	// Cleanup lỗi thì item phải được giữ lại
	r.Register("b", 2)
	deleted, err = r.Clear("b", func(v int) error {
		return errors.New("không giải phóng được")
	})
	if err == nil || deleted {
		t.Error("cleanup lỗi thì Clear phải trả về lỗi và không xóa")
	}
	if _, exists := r.Get("b"); !exists {
		t.Error("item phải còn trong registry khi cleanup thất bại")
	}

	// Clear item không tồn tại là no-op
	deleted, err = r.Clear("khong_ton_tai", nil)
	if err != nil || deleted {
		t.Error("Clear item không tồn tại phải trả về (false, nil)")
	}
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll lỗi: %v", err)
	}
	if count != 2 {
		t.Errorf("ClearAll xóa %d items, muốn 2", count)
	}
	if r.Len() != 0 {
		t.Errorf("Len sau ClearAll = %d, muốn 0", r.Len())
	}
}

func TestRegistry_TruyCapDongThoi(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
			r.Len()
			r.Keys()
		}(i)
	}
	wg.Wait()

	if _, exists := r.Get("shared"); !exists {
		t.Error("item phải tồn tại sau các thao tác đồng thời")
	}
}
