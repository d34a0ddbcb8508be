package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrAIAPIKeyMissing 表示未提供必需的 Gemini API Key。
var ErrAIAPIKeyMissing = errors.New("api key is required")

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// geminiClient 封装对 Gemini generateContent 接口的单次请求调用。
type geminiClient struct {
	http    httpDoer
	baseURL string
	apiKey  string
}

func newGeminiClient(apiKey, baseURL string) *geminiClient {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &geminiClient{
		http:    &http.Client{Timeout: 60 * time.Second},
		baseURL: base,
		apiKey:  strings.TrimSpace(apiKey),
	}
}

func (c *geminiClient) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.http = &http.Client{Timeout: 20 * time.Second}
		return
	}
	c.http = client
}

func (c *geminiClient) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

func (c *geminiClient) SetAPIKey(key string) {
	c.apiKey = strings.TrimSpace(key)
}

// generate 调用指定模型生成内容，返回首个候选结果的 content。
func (c *geminiClient) generate(ctx context.Context, model, prompt string) (geminiContent, error) {
	if c.apiKey == "" {
		return geminiContent{}, ErrAIAPIKeyMissing
	}

	client := c.http
	if client == nil {
		client = http.DefaultClient
	}

	payload := generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return geminiContent{}, fmt.Errorf("构造请求失败: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return geminiContent{}, fmt.Errorf("创建 Gemini 请求失败: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "zenlog-ai/1.0")

	resp, err := client.Do(httpReq)
	if err != nil {
		return geminiContent{}, fmt.Errorf("请求 Gemini 接口失败: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return geminiContent{}, fmt.Errorf("读取 Gemini 响应失败: %w", err)
	}

	var completion generateContentResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return geminiContent{}, fmt.Errorf("解析 Gemini 响应失败: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		errMsg := strings.TrimSpace(completion.Error.Message)
		if errMsg == "" {
			errMsg = strings.TrimSpace(string(respBody))
		}
		if errMsg == "" {
			errMsg = resp.Status
		}
		return geminiContent{}, fmt.Errorf("Gemini 接口返回错误：%s", errMsg)
	}

	if len(completion.Candidates) == 0 {
		return geminiContent{}, errors.New("Gemini 接口未返回结果")
	}

	return completion.Candidates[0].Content, nil
}

// text 拼接 content 中所有文本 part。
func (c geminiContent) text() string {
	var builder strings.Builder
	for _, part := range c.Parts {
		builder.WriteString(part.Text)
	}
	return strings.TrimSpace(builder.String())
}

// firstInlineData 返回首个内联图片数据，没有时返回 nil。
func (c geminiContent) firstInlineData() *geminiInlineData {
	for _, part := range c.Parts {
		if part.InlineData != nil && strings.TrimSpace(part.InlineData.Data) != "" {
			return part.InlineData
		}
	}
	return nil
}
