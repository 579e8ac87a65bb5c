package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// ErrNotEnoughCards 请求的抽牌数超过牌组规模
var ErrNotEnoughCards = errors.New("deck: not enough cards")

// Catalog 牌目录，进程内只读的牌组数据加一个可选的远程刷新入口
// 并发安全：抽牌与查询共享读锁，远程刷新持写锁整体替换
type Catalog struct {
	mu     sync.RWMutex
	cards  []Card
	byName map[string]int // 小写牌名 -> cards 下标
	intn   func(n int) int
}

// NewCatalog 构建标准 78 张韦特牌目录
func NewCatalog() *Catalog {
	c := &Catalog{
		intn: rand.IntN,
	}
	c.replace(append(buildMajors(), buildMinors()...))
	return c
}

// replace 整体替换牌组并重建索引
func (c *Catalog) replace(cards []Card) {
	byName := make(map[string]int, len(cards))
	for i, card := range cards {
		byName[strings.ToLower(card.Name)] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards = cards
	c.byName = byName
}

// Size 牌组规模
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cards)
}

// Cards 返回全部牌的副本
func (c *Catalog) Cards() []Card {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// FindByName 按牌名查找，不区分大小写的精确匹配
func (c *Catalog) FindByName(name string) (Card, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Sample 均匀无放回抽取 n 张互不相同的牌
// n 超出牌组规模属于调用方的前置条件错误，抽牌前即拒绝
func (c *Catalog) Sample(n int) ([]Card, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if n < 1 {
		return nil, fmt.Errorf("%w: invalid count %d", ErrNotEnoughCards, n)
	}
	if n > len(c.cards) {
		return nil, fmt.Errorf("%w: want %d, deck has %d", ErrNotEnoughCards, n, len(c.cards))
	}

	// 部分 Fisher-Yates 洗牌，只需要前 n 个位置
	indices := make([]int, len(c.cards))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + c.intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	out := make([]Card, n)
	for i := 0; i < n; i++ {
		out[i] = c.cards[indices[i]]
	}
	return out, nil
}
