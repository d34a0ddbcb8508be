package store

import "time"

// EnsureSeed 在文章集合为空时写入欢迎文章。重复调用不会产生第二份种子数据。
func (s *ContentStore) EnsureSeed() error {
	if len(s.ListPosts()) > 0 {
		return nil
	}

	return s.SavePost(Post{
		ID:       "seed-1",
		Title:    "Hello ZenLog",
		Excerpt:  "Welcome to your new AI-powered digital sanctuary.",
		Content:  "This is the start of something beautiful...",
		Date:     time.Now().Format("Jan 2, 2006"),
		Tags:     []string{"Announcement"},
		Category: "Life",
	})
}
