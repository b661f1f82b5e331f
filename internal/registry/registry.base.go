// Package registry cung cấp implementation của registry pattern với generic type.
// Package này cho phép quản lý các singleton instances trong ứng dụng một cách thread-safe.
package registry

import (
	"fmt"
	"sync"
)

// Registry là một thread-safe generic registry.
// Type parameter T cho phép registry quản lý bất kỳ loại object nào,
// thread-safety được đảm bảo thông qua sync.RWMutex.
type Registry[T any] struct {
	items map[string]T // Map lưu trữ các items theo key
	mu    sync.RWMutex // Mutex để đảm bảo thread-safety
}

// NewRegistry tạo và trả về một registry mới.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item mới vào registry.
// Nếu item với name đã tồn tại, nó sẽ bị ghi đè.
//
// Returns:
//   - isNew: true nếu là item mới, false nếu ghi đè item cũ
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("tên item không được rỗng")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo name từ registry.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate lấy item theo name, tạo mới bằng creator nếu chưa tồn tại.
// Creator chỉ được gọi khi item chưa có trong registry.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if existing, exists := r.Get(name); exists {
		return existing, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Kiểm tra lại sau khi giữ write lock (một goroutine khác có thể đã tạo)
	if existing, exists := r.items[name]; exists {
		return existing, nil
	}

	item, err = creator()
	if err != nil {
		var zero T
		return zero, err
	}

	r.items[name] = item
	return item, nil
}

// Count trả về số lượng items trong registry.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
