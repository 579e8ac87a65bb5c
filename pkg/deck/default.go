package deck

import "sync"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default 进程级共享的牌目录
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}
