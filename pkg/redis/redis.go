/*
	Package redis 提供 Redis 连接和操作的工具包

	1. 连接池管理
	2. 自动重连
	3. 并发安全
*/
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arcanum/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

// 关键配置常量
const (
	// DefaultPoolSize Redis 连接池大小
	DefaultPoolSize = 100
	// DefaultTimeout 默认操作超时时间
	DefaultTimeout = 5 * time.Second
	// DefaultMinIdleConns 最小空闲连接数
	DefaultMinIdleConns = 10
	// DefaultMaxRetries 最大重试次数
	DefaultMaxRetries = 3
	// DefaultIdleTimeout 空闲超时
	DefaultIdleTimeout = 5 * time.Minute
)

// Instance Redis 实例类型
type Instance string

const (
	MainDB    Instance = "main"    // 主数据库实例（限流等业务存储）
	SessionDB Instance = "session" // 会话历史专用实例
)

// Client Redis 客户端封装
type Client struct {
	Client  *redis.Client
	Context context.Context
}

// Config Redis 配置结构
type Config struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	Timeout      time.Duration
}

// Manager 管理多个 Redis 实例
type Manager struct {
	instances map[Instance]*Client
	mutex     sync.RWMutex
}

var (
	once    sync.Once
	manager *Manager
	Redis   *Client // 默认主实例
)

// InitRedis 初始化 Redis 管理器
// mainDB 用于业务存储和限流，sessionDB 用于会话历史
func InitRedis(address, username, password string, mainDB, sessionDB int) {
	once.Do(func() {
		manager = &Manager{
			instances: make(map[Instance]*Client),
		}

		base := Config{
			Address:      address,
			Username:     username,
			Password:     password,
			PoolSize:     DefaultPoolSize,
			MinIdleConns: DefaultMinIdleConns,
			Timeout:      DefaultTimeout,
		}

		mainConfig := base
		mainConfig.DB = mainDB
		manager.instances[MainDB] = NewClient(mainConfig)

		sessionConfig := base
		sessionConfig.DB = sessionDB
		manager.instances[SessionDB] = NewClient(sessionConfig)

		Redis = manager.instances[MainDB]
	})
}

// NewClient 创建新的 Redis 客户端
func NewClient(config Config) *Client {
	rds := &Client{
		Context: context.Background(),
	}

	rds.Client = redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Username:     config.Username,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,

		// 连接池配置
		PoolTimeout:     config.Timeout,
		ConnMaxIdleTime: DefaultIdleTimeout,
		ConnMaxLifetime: 24 * time.Hour,

		// 读写超时
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// 重试策略
		MaxRetries:      DefaultMaxRetries,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	// 测试连接
	if err := rds.Ping(); err != nil {
		panic(fmt.Sprintf("Redis 连接失败: %v", err))
	}

	return rds
}

// GetRedis 获取指定的 Redis 实例
func GetRedis(instance Instance) *Client {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	if client, ok := manager.instances[instance]; ok {
		return client
	}
	return Redis
}

/* 🔍 健康检查方法 */

// Ping 测试 Redis 连接
func (rds *Client) Ping() error {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	_, err := rds.Client.Ping(ctx).Result()
	return err
}

/* 📝 数据操作方法 */

// Has 检查键是否存在
func (rds *Client) Has(key string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	n, err := rds.Client.Exists(ctx, key).Result()
	if err != nil {
		logger.ErrorString("Redis", "Has", err.Error())
		return false
	}
	return n > 0
}

// Del 删除键
func (rds *Client) Del(keys ...string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Del(ctx, keys...).Err(); err != nil {
		logger.ErrorString("Redis", "Del", err.Error())
		return false
	}
	return true
}
