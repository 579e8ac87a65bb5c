package session

// defaultStore 进程级共享的会话存储，启动时由 bootstrap 初始化
var defaultStore *Store

// InitDefault 初始化共享会话存储
func InitDefault(repo readingPersister) {
	defaultStore = NewStore(repo)
}

// Default 获取共享会话存储
func Default() *Store {
	return defaultStore
}
