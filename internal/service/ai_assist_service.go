package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	defaultTextModel  = "gemini-3-flash-preview"
	defaultImageModel = "gemini-2.5-flash-image"

	// DefaultMoodGlyph 是情绪分析不可用时的兜底表情。
	DefaultMoodGlyph = "✨"

	maxSummaryContentRuneCount = 4000
	maxOutlineTopicRuneCount   = 200
)

// ErrTopicRequired 表示生成大纲时缺少主题。
var ErrTopicRequired = errors.New("outline topic is required")

// ErrContentRequired 表示生成摘要时缺少正文。
var ErrContentRequired = errors.New("summary content is required")

// OutlineGenerator 定义大纲生成能力，便于在业务层注入不同实现。
type OutlineGenerator interface {
	GenerateOutline(ctx context.Context, topic string) (string, error)
}

// Summarizer 定义摘要生成能力。调用方必须为失败情形准备确定性的兜底值。
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// MoodAnalyzer 定义情绪分析能力。实现必须自带兜底表情，永远不返回错误。
type MoodAnalyzer interface {
	AnalyzeMood(ctx context.Context, text string) string
}

// CoverImageGenerator 定义封面图生成能力。失败以空字符串表示，永远不返回错误。
type CoverImageGenerator interface {
	GenerateCoverImage(ctx context.Context, prompt string) string
}

// AIAssistService 基于 Gemini 提供四种内容辅助能力：大綱、摘要、情绪表情与封面图。
// 所有能力都是建议性质的：任何一次调用失败，工作流都必须能用兜底值继续。
type AIAssistService struct {
	client     *geminiClient
	textModel  string
	imageModel string
}

// NewAIAssistService 构造默认的 AIAssistService。
func NewAIAssistService(apiKey, baseURL string) *AIAssistService {
	return &AIAssistService{
		client:     newGeminiClient(apiKey, baseURL),
		textModel:  defaultTextModel,
		imageModel: defaultImageModel,
	}
}

// SetHTTPClient 覆盖默认 HTTP 客户端，主要用于测试。
func (s *AIAssistService) SetHTTPClient(client httpDoer) {
	s.client.SetHTTPClient(client)
}

// SetBaseURL 覆盖默认的 Gemini API 地址。
func (s *AIAssistService) SetBaseURL(base string) {
	s.client.SetBaseURL(base)
}

// SetTextModel 指定文本生成所使用的模型名称。
func (s *AIAssistService) SetTextModel(model string) {
	model = strings.TrimSpace(model)
	if model != "" {
		s.textModel = model
	}
}

// SetImageModel 指定封面图生成所使用的模型名称。
func (s *AIAssistService) SetImageModel(model string) {
	model = strings.TrimSpace(model)
	if model != "" {
		s.imageModel = model
	}
}

// GenerateOutline 为给定主题生成结构化的文章大纲。主题为空时返回 ErrTopicRequired。
func (s *AIAssistService) GenerateOutline(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrTopicRequired
	}

	prompt := fmt.Sprintf(
		"Act as a professional creative writer. Generate a detailed blog post outline for the topic: %q. Include a catchy title, introduction points, three main sections, and a conclusion.",
		truncateRunes(topic, maxOutlineTopicRuneCount),
	)
	logAIExchange("outline", "prompt", prompt)

	content, err := s.client.generate(ctx, s.textModel, prompt)
	if err != nil {
		return "", err
	}

	outline := content.text()
	logAIExchange("outline", "response", outline)
	return outline, nil
}

// Summarize 将任意长度的正文压缩为固定两句话的预览摘要。
func (s *AIAssistService) Summarize(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrContentRequired
	}

	compressed, imageCount := compressMarkdownImageURLs(content)
	if imageCount > 0 {
		logAIExchange("summary", "note", fmt.Sprintf("compressed %d image url(s)", imageCount))
	}
	snippet := truncateRunes(compressed, maxSummaryContentRuneCount)

	prompt := "Summarize the following text in exactly two sentences for a quick-read blog preview: " + snippet
	logAIExchange("summary", "prompt", prompt)

	result, err := s.client.generate(ctx, s.textModel, prompt)
	if err != nil {
		return "", err
	}

	summary := result.text()
	logAIExchange("summary", "response", summary)
	return summary, nil
}

// AnalyzeMood 返回代表短文情绪的单个表情。任何失败或空回复都回退到 DefaultMoodGlyph，
// 记录瞬间的流程绝不因 AI 调用失败而被阻塞。
func (s *AIAssistService) AnalyzeMood(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(
		"Analyze the mood of this short diary entry and return only one single emoji that represents it best: %q",
		text,
	)

	result, err := s.client.generate(ctx, s.textModel, prompt)
	if err != nil {
		logAIExchange("mood", "error", err.Error())
		return DefaultMoodGlyph
	}

	mood := result.text()
	logAIExchange("mood", "response", mood)
	if mood == "" {
		return DefaultMoodGlyph
	}
	return mood
}

// GenerateCoverImage 生成封面图并编码为 data URI，失败时返回空字符串。
// 该操作永远不返回错误：封面图缺失时调用方展示占位图即可。
func (s *AIAssistService) GenerateCoverImage(ctx context.Context, prompt string) string {
	fullPrompt := fmt.Sprintf(
		"A clean, minimalist, high-quality cinematic cover photo for a blog post about: %s. Artistic and aesthetic style.",
		strings.TrimSpace(prompt),
	)
	logAIExchange("cover", "prompt", fullPrompt)

	result, err := s.client.generate(ctx, s.imageModel, fullPrompt)
	if err != nil {
		logAIExchange("cover", "error", err.Error())
		return ""
	}

	inline := result.firstInlineData()
	if inline == nil {
		logAIExchange("cover", "response", "<no inline image>")
		return ""
	}

	mimeType := strings.TrimSpace(inline.MimeType)
	if mimeType == "" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, inline.Data)
}
