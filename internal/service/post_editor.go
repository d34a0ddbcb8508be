package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zenlog/internal/store"
)

var (
	ErrEditorClosed       = errors.New("editor session is not open")
	ErrEditorBusy         = errors.New("editor session has an operation in flight")
	ErrDraftIncomplete    = errors.New("post draft requires title and content")
	ErrPostNotFound       = errors.New("post not found")
	ErrDeleteNotConfirmed = errors.New("post deletion requires confirmation")
)

const (
	// DefaultCategory 是保存文章时分类的默认值。
	DefaultCategory = "General"

	excerptFallbackRuneCount    = 100
	coverPromptContentRuneCount = 200
	displayDateLayout           = "Jan 2, 2006"

	pendingSummarizing     = "summarizing"
	pendingGeneratingImage = "generating-image"
	pendingPublishing      = "publishing"
)

// defaultTags 是保存文章时标签的默认值，使用前必须复制。
var defaultTags = []string{"Life"}

// EditorMode 区分编辑会话是新建还是修改已有文章。
type EditorMode int

const (
	EditorModeNew EditorMode = iota
	EditorModeEdit
)

// Draft 汇总编辑会话中可自由修改的字段。
type Draft struct {
	Title      string
	Category   string
	Content    string
	Excerpt    string
	CoverImage string
	Tags       []string
}

// EditorState 是编辑会话的快照，供展示层渲染。
type EditorState struct {
	Open      bool
	Mode      EditorMode
	EditingID string
	Pending   []string
}

// PostEditor 驱动文章的创建、编辑与删除。同一时刻只有一个编辑会话：
// 会话打开后草稿字段可自由修改，保存时补全摘要、封面等缺失字段并落库。
// AI 能力全部是建议性质，失败时用确定性的兜底值继续。
type PostEditor struct {
	mu         sync.Mutex
	store      *store.ContentStore
	summarizer Summarizer
	covers     CoverImageGenerator

	open        bool
	mode        EditorMode
	editingID   string
	editingDate string
	draft       Draft
	pending     map[string]bool

	posts []store.Post
}

// NewPostEditor 构造 PostEditor 并从存储加载文章列表。
func NewPostEditor(cs *store.ContentStore, summarizer Summarizer, covers CoverImageGenerator) *PostEditor {
	return &PostEditor{
		store:      cs,
		summarizer: summarizer,
		covers:     covers,
		pending:    make(map[string]bool),
		posts:      cs.ListPosts(),
	}
}

// Posts 返回最近一次从存储读取的规范列表。
func (e *PostEditor) Posts() []store.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.posts
}

// Search 在列表上做大小写不敏感的子串过滤，匹配标题或摘要。纯视图变换，不触碰存储。
func (e *PostEditor) Search(query string) []store.Post {
	posts := e.Posts()
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return posts
	}

	matched := make([]store.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Excerpt), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Refresh 重新从存储读取文章列表。
func (e *PostEditor) Refresh() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.posts = e.store.ListPosts()
}

// OpenNew 打开一个空草稿的编辑会话。已打开的会话会被直接替换。
func (e *PostEditor) OpenNew() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) > 0 {
		return ErrEditorBusy
	}

	e.open = true
	e.mode = EditorModeNew
	e.editingID = ""
	e.editingDate = ""
	e.draft = Draft{}
	return nil
}

// OpenEdit 以已有文章的副本打开编辑会话。
func (e *PostEditor) OpenEdit(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) > 0 {
		return ErrEditorBusy
	}

	for _, p := range e.posts {
		if p.ID != id {
			continue
		}
		e.open = true
		e.mode = EditorModeEdit
		e.editingID = p.ID
		e.editingDate = p.Date
		e.draft = Draft{
			Title:      p.Title,
			Category:   p.Category,
			Content:    p.Content,
			Excerpt:    p.Excerpt,
			CoverImage: p.CoverImage,
			Tags:       append([]string(nil), p.Tags...),
		}
		return nil
	}
	return ErrPostNotFound
}

// UpdateDraft 整体替换当前草稿，字段之间相互独立，不触发任何保存。
func (e *PostEditor) UpdateDraft(draft Draft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorClosed
	}
	if e.pending[pendingPublishing] {
		return ErrEditorBusy
	}

	draft.Tags = append([]string(nil), draft.Tags...)
	e.draft = draft
	return nil
}

// Draft 返回当前草稿的副本，会话关闭时第二个返回值为 false。
func (e *PostEditor) Draft() (Draft, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return Draft{}, false
	}
	draft := e.draft
	draft.Tags = append([]string(nil), draft.Tags...)
	return draft, true
}

// Cancel 丢弃草稿并关闭会话，不做任何持久化。保存进行中时不可取消。
func (e *PostEditor) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorClosed
	}
	if e.pending[pendingPublishing] {
		return ErrEditorBusy
	}

	e.reset()
	return nil
}

// Save 校验草稿后落库：空摘要先尝试 AI 摘要，失败回退为正文截断；
// 新文章分配 id 与展示日期；成功后关闭会话并重新读取列表。
func (e *PostEditor) Save(ctx context.Context) (store.Post, error) {
	e.mu.Lock()
	if !e.open {
		e.mu.Unlock()
		return store.Post{}, ErrEditorClosed
	}
	if len(e.pending) > 0 {
		e.mu.Unlock()
		return store.Post{}, ErrEditorBusy
	}
	if strings.TrimSpace(e.draft.Title) == "" || strings.TrimSpace(e.draft.Content) == "" {
		e.mu.Unlock()
		return store.Post{}, ErrDraftIncomplete
	}

	draft := e.draft
	mode := e.mode
	editingID := e.editingID
	editingDate := e.editingDate
	e.pending[pendingPublishing] = true
	e.mu.Unlock()

	excerpt := strings.TrimSpace(draft.Excerpt)
	if excerpt == "" {
		e.setPending(pendingSummarizing, true)
		summary, err := e.summarizer.Summarize(ctx, draft.Content)
		e.setPending(pendingSummarizing, false)

		excerpt = strings.TrimSpace(summary)
		if err != nil || excerpt == "" {
			if err != nil {
				log.Printf("[editor] summarize failed, falling back to truncation: %v", err)
			}
			excerpt = FallbackExcerpt(draft.Content)
		}
	}

	post := store.Post{
		ID:         editingID,
		Title:      strings.TrimSpace(draft.Title),
		Excerpt:    excerpt,
		Content:    draft.Content,
		Date:       editingDate,
		Tags:       draft.Tags,
		Category:   strings.TrimSpace(draft.Category),
		CoverImage: draft.CoverImage,
	}
	if mode != EditorModeEdit || post.ID == "" {
		post.ID = uuid.NewString()
	}
	if mode != EditorModeEdit || post.Date == "" {
		post.Date = time.Now().Format(displayDateLayout)
	}
	if post.Category == "" {
		post.Category = DefaultCategory
	}
	if len(post.Tags) == 0 {
		post.Tags = append([]string(nil), defaultTags...)
	}

	err := e.store.SavePost(post)

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, pendingPublishing)
	if err != nil {
		// 持久化失败时保留会话，调用方可以重试
		return store.Post{}, err
	}

	e.reset()
	e.posts = e.store.ListPosts()
	return post, nil
}

// GenerateCover 依据标题与正文开头生成封面图。成功时替换草稿封面，
// 失败时草稿保持不变；返回生成的 data URI，空串表示不可用。
func (e *PostEditor) GenerateCover(ctx context.Context) (string, error) {
	e.mu.Lock()
	if !e.open {
		e.mu.Unlock()
		return "", ErrEditorClosed
	}
	if e.pending[pendingGeneratingImage] || e.pending[pendingPublishing] {
		e.mu.Unlock()
		return "", ErrEditorBusy
	}

	prompt := CoverPrompt(e.draft.Title, e.draft.Content)
	e.pending[pendingGeneratingImage] = true
	e.mu.Unlock()

	uri := e.covers.GenerateCoverImage(ctx, prompt)

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, pendingGeneratingImage)
	if uri != "" && e.open {
		e.draft.CoverImage = uri
	}
	return uri, nil
}

// AttachCover 将用户选择的本地图片编码为 data URI 并无条件替换草稿封面。
func (e *PostEditor) AttachCover(data []byte) error {
	uri, width, height, err := EncodeCoverImage(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorClosed
	}
	if e.pending[pendingPublishing] {
		return ErrEditorBusy
	}

	log.Printf("[editor] attached cover %dx%d", width, height)
	e.draft.CoverImage = uri
	return nil
}

// Delete 按 id 删除文章并刷新列表。独立于编辑会话，要求调用方显式确认。
func (e *PostEditor) Delete(id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	if err := e.store.DeletePost(id); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.posts = e.store.ListPosts()
	return nil
}

// State 返回编辑会话的当前快照。
func (e *PostEditor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := EditorState{Open: e.open, Mode: e.mode, EditingID: e.editingID}
	for op := range e.pending {
		state.Pending = append(state.Pending, op)
	}
	sort.Strings(state.Pending)
	return state
}

func (e *PostEditor) reset() {
	e.open = false
	e.mode = EditorModeNew
	e.editingID = ""
	e.editingDate = ""
	e.draft = Draft{}
}

func (e *PostEditor) setPending(op string, active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if active {
		e.pending[op] = true
		return
	}
	delete(e.pending, op)
}

// FallbackExcerpt 是摘要生成失败时的确定性兜底：正文前 100 个字符加省略号。
func FallbackExcerpt(content string) string {
	return truncateRunes(content, excerptFallbackRuneCount) + "..."
}

// CoverPrompt 由标题与正文前 200 个字符构造封面图提示词，图片链接先压缩为占位符。
func CoverPrompt(title, content string) string {
	compressed, _ := compressMarkdownImageURLs(content)
	snippet := truncateRunes(strings.TrimSpace(compressed), coverPromptContentRuneCount)

	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return snippet
	case snippet == "":
		return title
	default:
		return title + ". " + snippet
	}
}
