// шардированный inmemory кэш с TTL и фоновой очисткой устаревших записей
package inmemory_cache

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

// основная структура кэша. Ключи распределяются по шардам через fnv хэш
type InmemoryShardedCache struct {
	shards    []*Shard
	numShards int
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// отдельный шард: своя мапа и свой мьютекс
type Shard struct {
	Items map[string]CacheItem
	mu    sync.RWMutex
}

// отдельный элемент кэша
type CacheItem struct {
	value   interface{}
	expTime time.Time
}

// конструктор для создания кэша с указаным количеством шардов и интервалом очистки кэша
// при cleanUpInterval == 0 фоновая очистка не запускается
func NewInmemoryShardedCache(numShards int, cleanUpInterval time.Duration) (*InmemoryShardedCache, error) {
	if numShards <= 0 {
		return nil, fmt.Errorf("numShards must be positive, got %d", numShards)
	}

	if numShards > 1000 {
		return nil, fmt.Errorf("numShards is too large: %d", numShards)
	}

	if cleanUpInterval < 0 {
		return nil, fmt.Errorf("cleanUpInterval must be non-negative, got %v", cleanUpInterval)
	}

	cache := &InmemoryShardedCache{
		shards:    make([]*Shard, numShards),
		numShards: numShards,
		stopChan:  make(chan struct{}),
	}

	for i := 0; i < numShards; i++ {
		cache.shards[i] = &Shard{
			Items: map[string]CacheItem{},
		}
	}

	if cleanUpInterval > 0 {
		go cache.cleanUp(cleanUpInterval)
	}

	return cache, nil
}

// метод получения значения из кэша по ключу
// просроченное значение считается отсутствующим
func (c *InmemoryShardedCache) GetItem(key string) (interface{}, bool) {
	shard := c.getShard(key)
	now := time.Now()

	shard.mu.RLock()
	defer shard.mu.RUnlock()

	val, ok := shard.Items[key]
	if !ok {
		return nil, false
	}

	if now.After(val.expTime) {
		return nil, false
	}

	return val.value, true
}

// метод, чтобы находить нужный шард по заданному ключу
func (c *InmemoryShardedCache) getShard(key string) *Shard {
	hashf := fnv.New32a()
	// запись в fnv хэш не возвращает ошибку
	_, _ = hashf.Write([]byte(key))

	shardIndex := int(hashf.Sum32() % uint32(c.numShards))

	return c.shards[shardIndex]
}

// метод, чтобы записать значение в кэш с заданным TTL
func (c *InmemoryShardedCache) AddItemWithTTL(key string, value interface{}, ttl time.Duration) {
	shard := c.getShard(key)
	now := time.Now()

	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.Items[key] = CacheItem{
		value:   value,
		expTime: now.Add(ttl),
	}
}

// метод удаления элемента из кэша по ключу
func (c *InmemoryShardedCache) DeleteItem(key string) {
	shard := c.getShard(key)

	shard.mu.Lock()
	delete(shard.Items, key)
	shard.mu.Unlock()
}

// количество элементов во всех шардах (включая ещё не вычищенные просроченные)
func (c *InmemoryShardedCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.Items)
		shard.mu.RUnlock()
	}
	return total
}

// метод остановки фоновой очистки, безопасен для повторного вызова
func (c *InmemoryShardedCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// фоновая очистка кэша через заданный интервал, пока кэш не остановлен
func (c *InmemoryShardedCache) cleanUp(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanUpExpired()
		case <-c.stopChan:
			return
		}
	}
}

// метод для очистки кэша от устаревших данных
func (c *InmemoryShardedCache) cleanUpExpired() {
	start := time.Now()
	for _, shard := range c.shards {
		shard.mu.Lock()
		for key, value := range shard.Items {
			if start.After(value.expTime) {
				delete(shard.Items, key)
			}
		}
		shard.mu.Unlock()
	}
}
