package internal

import (
	"errors"
	"fmt"
	"sync"
)

// ErrPoolClosed 表示池已经关闭，无法再分配或回收槽位
var ErrPoolClosed = errors.New("idpool: generator is closed")

// SlotPool 管理可回收整数槽位的共享池状态
// free 是 LIFO 栈结构的空闲槽位列表，allocated 记录历史铸造总数（只增不减）
// 所有状态变更都在同一把互斥锁内完成，保证 free/allocated 的变更线性一致
type SlotPool struct {
	mu        sync.Mutex
	free      []int
	allocated int
	chunkSize int
	closed    bool
	leaked    int
}

// NewSlotPool 创建槽位池
// 初始状态下 [0, defaultSize) 的所有槽位都在空闲列表中
// chunkSize 的合法性（> 0）由上层配置验证保证
func NewSlotPool(defaultSize, chunkSize int) *SlotPool {
	free := make([]int, defaultSize)
	for v := 0; v < defaultSize; v++ {
		free[v] = v
	}

	return &SlotPool{
		free:      free,
		allocated: defaultSize,
		chunkSize: chunkSize,
	}
}

// Acquire 取出一个当前未被持有的槽位
// 空闲列表非空时弹出栈顶（最近释放的槽位最先复用）
// 空闲列表耗尽时按 chunkSize 扩容：新区间的最后一个槽位直接返回，
// 其余 chunkSize-1 个槽位预先压入空闲列表，grew 返回 true
func (p *SlotPool) Acquire() (value int, grew bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, false, ErrPoolClosed
	}

	// 优先复用空闲槽位
	if n := len(p.free); n > 0 {
		value = p.free[n-1]
		p.free = p.free[:n-1]
		return value, false, nil
	}

	// 扩容：新槽位不会与任何已发放的值重复
	old := p.allocated
	p.allocated += p.chunkSize
	last := p.allocated - 1

	for v := old; v < last; v++ {
		p.free = append(p.free, v)
	}

	return last, true, nil
}

// Release 将槽位归还到空闲列表
// 调用方（ID 引用计数层）保证每个槽位恰好归还一次，因此这里不做去重检查
// 池关闭后槽位无法归还，计入泄漏并返回 ErrPoolClosed
func (p *SlotPool) Release(value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if value < 0 || value >= p.allocated {
		return fmt.Errorf("idpool: slot %d out of range [0, %d)", value, p.allocated)
	}

	if p.closed {
		p.leaked++
		return ErrPoolClosed
	}

	p.free = append(p.free, value)
	return nil
}

// Close 关闭槽位池，返回关闭时刻仍未归还的槽位数量
// 幂等：重复关闭返回 0
func (p *SlotPool) Close() (outstanding int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0
	}

	p.closed = true
	return p.allocated - len(p.free)
}

// Stats 返回池状态快照
func (p *SlotPool) Stats() (allocated, free, leaked int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.allocated, len(p.free), p.leaked
}
