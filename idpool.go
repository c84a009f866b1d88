// Package idpool 提供可回收的稠密整数 ID 池
// Generate 按需发放小而稠密的整数槽位，每个槽位包装在共享所有权句柄中，
// 当指向同一槽位的所有句柄都被释放后，槽位自动回到复用池
// 适合实体/组件表、对象表、资源句柄等需要紧凑可复用索引空间的场景
package idpool

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bennetthardwick/volatile-unique-id/clog"
	"github.com/bennetthardwick/volatile-unique-id/internal"
)

// ErrGeneratorClosed 表示生成器已关闭
// Generate 在关闭后返回此错误；关闭后释放句柄导致的泄漏错误也可用它匹配
var ErrGeneratorClosed = internal.ErrPoolClosed

// Generator 定义整数 ID 池组件的主接口
// 多个 goroutine 可以共享同一个 Generator 并发调用所有方法
type Generator interface {
	// Generate 发放一个当前未被任何存活句柄持有的槽位
	// 优先复用已释放的槽位，空闲列表耗尽时按 ChunkSize 扩容
	// 生成器关闭后返回 ErrGeneratorClosed
	Generate() (*ID, error)

	// Stats 返回池状态快照
	Stats() Stats

	// Close 关闭生成器并释放资源。这是一个幂等操作
	// 关闭后仍存活的句柄可以安全 Close，但其槽位不再回到空闲列表
	Close() error
}

// Stats 描述某一时刻的池状态
type Stats struct {
	Allocated int `json:"allocated"` // 历史铸造的槽位总数（只增不减）
	Free      int `json:"free"`      // 空闲列表中等待复用的槽位数
	InUse     int `json:"inUse"`     // 被存活句柄持有的槽位数
	Leaked    int `json:"leaked"`    // 因生成器关闭而永久泄漏的槽位数
}

// generator 实现 Generator 接口的具体结构
type generator struct {
	config     *Config
	logger     clog.Logger
	pool       *internal.SlotPool
	instanceID string
	closeOnce  sync.Once
}

var _ Generator = (*generator)(nil)

// New 创建 idpool 组件实例
// 配置验证失败时不会产生任何池状态
func New(ctx context.Context, config *Config, opts ...Option) (Generator, error) {
	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	// 解析选项
	options := parseOptions(opts)

	serviceName := config.ServiceName
	if serviceName == "" {
		serviceName = "idpool"
	}

	g := &generator{
		config:     config,
		logger:     options.logger,
		pool:       internal.NewSlotPool(config.DefaultSize, config.ChunkSize),
		instanceID: uuid.NewString(),
	}

	// 记录初始化信息
	if g.logger != nil {
		g.logger.Info("idpool 组件初始化成功",
			clog.String("service_name", serviceName),
			clog.String("generator_id", g.instanceID),
			clog.Int("chunk_size", config.ChunkSize),
			clog.Int("default_size", config.DefaultSize),
		)
	}

	return g, nil
}

// Generate 发放一个新句柄
func (g *generator) Generate() (*ID, error) {
	value, grew, err := g.pool.Acquire()
	if err != nil {
		return nil, err
	}

	if grew && g.logger != nil {
		g.logger.Debug("空闲槽位耗尽，池已扩容",
			clog.String("generator_id", g.instanceID),
			clog.Int("chunk_size", g.config.ChunkSize),
			clog.Int("value", value),
		)
	}

	record := &idRecord{
		value:  value,
		pool:   g.pool,
		logger: g.logger,
	}
	record.refs.Store(1)

	return &ID{record: record}, nil
}

// Stats 返回池状态快照
func (g *generator) Stats() Stats {
	allocated, free, leaked := g.pool.Stats()

	return Stats{
		Allocated: allocated,
		Free:      free,
		InUse:     allocated - free - leaked,
		Leaked:    leaked,
	}
}

// Close 关闭生成器
func (g *generator) Close() error {
	g.closeOnce.Do(func() {
		outstanding := g.pool.Close()

		if g.logger == nil {
			return
		}

		if outstanding > 0 {
			g.logger.Warn("生成器关闭时仍有未释放的句柄",
				clog.String("generator_id", g.instanceID),
				clog.Int("outstanding", outstanding),
			)
		} else {
			g.logger.Info("idpool 组件已关闭",
				clog.String("generator_id", g.instanceID),
			)
		}
	})
	return nil
}
