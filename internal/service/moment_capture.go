package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zenlog/internal/store"
)

var (
	ErrMomentEmpty = errors.New("moment text is required")
	ErrCaptureBusy = errors.New("mood analysis already in flight")
)

const (
	momentTimeLayout = "3:04 PM"

	// defaultMomentLocation 是未接入定位时的占位地点。
	defaultMomentLocation = "Current Location"
)

// MomentCapture 驱动瞬间的单步创建：分析情绪、构造记录、落库并更新本地列表。
// 情绪分析自带兜底表情，记录流程绝不因 AI 失败而被阻塞。
type MomentCapture struct {
	mu        sync.Mutex
	store     *store.ContentStore
	moods     MoodAnalyzer
	analyzing bool
	moments   []store.Moment
}

// NewMomentCapture 构造 MomentCapture 并从存储加载已有瞬间。
func NewMomentCapture(cs *store.ContentStore, moods MoodAnalyzer) *MomentCapture {
	return &MomentCapture{
		store:   cs,
		moods:   moods,
		moments: cs.ListMoments(),
	}
}

// Moments 返回当前会话视图中的瞬间列表（最新的在最前）。
func (m *MomentCapture) Moments() []store.Moment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.moments
}

// Analyzing 报告是否有情绪分析进行中，展示层据此禁用提交控件。
func (m *MomentCapture) Analyzing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.analyzing
}

// Share 记录一条新的瞬间。文本为空或已有请求在途时拒绝；
// 瞬间是追加写入且顺序确定，保存后直接前插本地列表，无需回读存储。
func (m *MomentCapture) Share(ctx context.Context, text string) (store.Moment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return store.Moment{}, ErrMomentEmpty
	}

	m.mu.Lock()
	if m.analyzing {
		m.mu.Unlock()
		return store.Moment{}, ErrCaptureBusy
	}
	m.analyzing = true
	m.mu.Unlock()

	mood := m.moods.AnalyzeMood(ctx, text)

	moment := store.Moment{
		ID:       uuid.NewString(),
		Text:     text,
		Date:     time.Now().Format(momentTimeLayout),
		Mood:     mood,
		Location: defaultMomentLocation,
	}

	err := m.store.SaveMoment(moment)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyzing = false
	if err != nil {
		return store.Moment{}, err
	}

	m.moments = append([]store.Moment{moment}, m.moments...)
	return moment, nil
}
