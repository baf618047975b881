package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache evicts the least recently used entry above capacity and drops entries
// not touched for ttl. Get refreshes recency but not expiration; Touch refreshes both.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration
	onEvict  func(key string, value V)
}

func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	return &LRUCache[V]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
		ttl:      ttl,
	}
}

// OnEvict registers a callback invoked, under the cache lock, for every entry removed
// by expiration or capacity.
func (c *LRUCache[V]) OnEvict(fn func(key string, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		ent := ele.Value.(*entry[V])
		if time.Now().After(ent.expiration) {
			c.evict(ele)
			var zero V
			return zero, false
		}
		c.ll.MoveToFront(ele)
		return ent.value, true
	}
	var zero V
	return zero, false
}

// Touch returns the value like Get and extends its lifetime by ttl.
func (c *LRUCache[V]) Touch(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		ent := ele.Value.(*entry[V])
		if time.Now().After(ent.expiration) {
			c.evict(ele)
			var zero V
			return zero, false
		}
		ent.expiration = time.Now().Add(c.ttl)
		c.ll.MoveToFront(ele)
		return ent.value, true
	}
	var zero V
	return zero, false
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = time.Now().Add(c.ttl)
		return
	}

	ent := &entry[V]{key: key, value: value, expiration: time.Now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

// Delete removes key without calling the eviction callback.
func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.removeElement(ele)
	}
}

// Values returns the live values, most recently used first.
func (c *LRUCache[V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	out := make([]V, 0, c.ll.Len())
	for e := c.ll.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry[V])
		if now.After(ent.expiration) {
			continue
		}
		out = append(out, ent.value)
	}
	return out
}

func (c *LRUCache[V]) removeOldest() {
	ele := c.ll.Back()
	if ele != nil {
		c.evict(ele)
	}
}

func (c *LRUCache[V]) evict(e *list.Element) {
	ent := c.removeElement(e)
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}

func (c *LRUCache[V]) removeElement(e *list.Element) *entry[V] {
	c.ll.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.cache, ent.key)
	return ent
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start runs the janitor until ctx is done.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache[V]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[V])
		if time.Now().After(ent.expiration) {
			c.evict(e)
		}
		e = prev
	}
}
