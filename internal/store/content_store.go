package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

const (
	keyPosts   = "zenlog_posts"
	keyMoments = "zenlog_moments"
	keyGallery = "zenlog_gallery"
)

// ContentStore 将三个内容集合映射到键值后端，每个集合整体序列化为一个 JSON 数组。
// 读取缺失或损坏的数据一律按空集合处理，保证调用方始终可以渲染。
type ContentStore struct {
	mu sync.Mutex
	kv KeyValue
}

// NewContentStore 构造 ContentStore 实例。
func NewContentStore(kv KeyValue) *ContentStore {
	return &ContentStore{kv: kv}
}

// ListPosts 按存储顺序返回全部文章（新建的在最前）。
func (s *ContentStore) ListPosts() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[Post](s.kv, keyPosts)
}

// SavePost 保存文章：相同 id 原地替换，否则插入到最前。
func (s *ContentStore) SavePost(post Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := readCollection[Post](s.kv, keyPosts)
	posts = upsert(posts, post, func(p Post) string { return p.ID })
	return writeCollection(s.kv, keyPosts, posts)
}

// DeletePost 按 id 删除文章，id 不存在时为空操作。
func (s *ContentStore) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := readCollection[Post](s.kv, keyPosts)
	posts = removeByID(posts, id, func(p Post) string { return p.ID })
	return writeCollection(s.kv, keyPosts, posts)
}

// ListMoments 按存储顺序返回全部瞬间。
func (s *ContentStore) ListMoments() []Moment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[Moment](s.kv, keyMoments)
}

// SaveMoment 保存瞬间：相同 id 原地替换，否则插入到最前。
func (s *ContentStore) SaveMoment(moment Moment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	moments := readCollection[Moment](s.kv, keyMoments)
	moments = upsert(moments, moment, func(m Moment) string { return m.ID })
	return writeCollection(s.kv, keyMoments, moments)
}

// DeleteMoment 按 id 删除瞬间，id 不存在时为空操作。
func (s *ContentStore) DeleteMoment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	moments := readCollection[Moment](s.kv, keyMoments)
	moments = removeByID(moments, id, func(m Moment) string { return m.ID })
	return writeCollection(s.kv, keyMoments, moments)
}

// ListGallery 按存储顺序返回全部作品集条目。
func (s *ContentStore) ListGallery() []MediaItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[MediaItem](s.kv, keyGallery)
}

// SaveMedia 保存作品集条目：相同 id 原地替换，否则插入到最前。
func (s *ContentStore) SaveMedia(item MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := readCollection[MediaItem](s.kv, keyGallery)
	items = upsert(items, item, func(m MediaItem) string { return m.ID })
	return writeCollection(s.kv, keyGallery, items)
}

// DeleteMedia 按 id 删除作品集条目，id 不存在时为空操作。
func (s *ContentStore) DeleteMedia(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := readCollection[MediaItem](s.kv, keyGallery)
	items = removeByID(items, id, func(m MediaItem) string { return m.ID })
	return writeCollection(s.kv, keyGallery, items)
}

func readCollection[T any](kv KeyValue, key string) []T {
	raw, ok, err := kv.Get(key)
	if err != nil {
		log.Printf("[store] read %s failed: %v", key, err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// 损坏的数据按空集合处理，而不是让整个界面不可用
		log.Printf("[store] %s holds malformed data, treating as empty: %v", key, err)
		return nil
	}
	return items
}

func writeCollection[T any](kv KeyValue, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func upsert[T any](items []T, item T, id func(T) string) []T {
	target := id(item)
	for i := range items {
		if id(items[i]) == target {
			items[i] = item
			return items
		}
	}
	return append([]T{item}, items...)
}

func removeByID[T any](items []T, target string, id func(T) string) []T {
	filtered := items[:0]
	for _, item := range items {
		if id(item) != target {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
