package registry

import "testing"

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil || !isNew {
		t.Errorf("Register lần đầu: isNew=%v err=%v, muốn true/nil", isNew, err)
	}

	// Ghi đè item cũ
	isNew, err = r.Register("a", 2)
	if err != nil || isNew {
		t.Errorf("Register ghi đè: isNew=%v err=%v, muốn false/nil", isNew, err)
	}
	if v, ok := r.Get("a"); !ok || v != 2 {
		t.Errorf("Get sau ghi đè = %v/%v, muốn 2/true", v, ok)
	}

	// Tên rỗng bị từ chối
	if _, err := r.Register("", 3); err == nil {
		t.Error("Register với tên rỗng phải trả lỗi")
	}

	if _, ok := r.Get("không tồn tại"); ok {
		t.Error("Get key không tồn tại phải trả về false")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	calls := 0
	creator := func() (string, error) {
		calls++
		return "x", nil
	}

	v, err := r.GetOrCreate("k", creator)
	if err != nil || v != "x" {
		t.Errorf("GetOrCreate lần đầu = %v/%v", v, err)
	}
	// Lần hai không gọi lại creator
	if _, err := r.GetOrCreate("k", creator); err != nil {
		t.Errorf("GetOrCreate lần hai trả lỗi: %v", err)
	}
	if calls != 1 {
		t.Errorf("creator được gọi %d lần, muốn 1", calls)
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, muốn 1", r.Count())
	}
}
