package idpool

import (
	"fmt"
	"sync/atomic"

	"github.com/bennetthardwick/volatile-unique-id/clog"
	"github.com/bennetthardwick/volatile-unique-id/internal"
)

// idRecord 是同一槽位的所有句柄共享的分配记录
// 持有对池状态的反向引用，因此即使铸造它的生成器已不可达，
// 最后一个句柄关闭时仍能把槽位归还给池
type idRecord struct {
	value  int
	refs   atomic.Int64
	pool   *internal.SlotPool
	logger clog.Logger
}

// ID 是一个整数槽位的共享所有权句柄
// Clone 增加同一分配记录的引用计数而不铸造新槽位
// 最后一个引用 Close 后槽位才回到空闲列表，可被后续 Generate 复用
// 相等性与调试表示都只由槽位值决定
type ID struct {
	record *idRecord
	closed atomic.Bool
}

// Value 返回句柄对应的槽位值
// 在句柄的生命周期内不变；需要把 ID 当作 map 键时以 Value() 作为键
func (id *ID) Value() int {
	return id.record.value
}

// Clone 复制句柄，增加共享引用计数
// 返回的句柄与原句柄相等且不可区分，指向同一个槽位
// 已关闭的句柄不能再复制（槽位可能已被重新发放），此时返回 nil
func (id *ID) Clone() *ID {
	if id.closed.Load() {
		return nil
	}

	id.record.refs.Add(1)
	return &ID{record: id.record}
}

// Close 释放当前句柄持有的引用。这是一个幂等操作
// 当最后一个引用被释放时，槽位回到空闲列表等待复用
// 池已关闭时槽位无法归还：泄漏被计数、记录日志并以错误形式返回
func (id *ID) Close() error {
	// 每个句柄只贡献一次引用计数递减
	if id.closed.Swap(true) {
		return nil
	}

	if id.record.refs.Add(-1) > 0 {
		return nil
	}

	if err := id.record.pool.Release(id.record.value); err != nil {
		if id.record.logger != nil {
			id.record.logger.Warn("槽位无法归还，已泄漏",
				clog.Int("value", id.record.value),
				clog.Err(err),
			)
		}
		return fmt.Errorf("释放槽位 %d 失败: %w", id.record.value, err)
	}

	return nil
}

// Equal 判断两个句柄是否指向同一个槽位值
func (id *ID) Equal(other *ID) bool {
	if other == nil {
		return false
	}
	return id.record.value == other.record.value
}

// String 返回 Id(<value>) 形式的调试表示
func (id *ID) String() string {
	return fmt.Sprintf("Id(%d)", id.record.value)
}
