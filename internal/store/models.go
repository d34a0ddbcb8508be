package store

// MediaType 取值限定为 image 或 video。
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Post 定义了文章模型，JSON 字段与前端持久化格式保持一致。
type Post struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Date       string   `json:"date"`
	Tags       []string `json:"tags"`
	Category   string   `json:"category"`
	CoverImage string   `json:"coverImage,omitempty"`
}

// Moment 定义了随手记录的瞬间模型。
type Moment struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Location string `json:"location,omitempty"`
	Mood     string `json:"mood,omitempty"`
	Image    string `json:"image,omitempty"`
}

// MediaItem 定义作品集中的图片或视频条目。
type MediaItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}
