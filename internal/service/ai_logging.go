package service

import (
	"log"
	"strings"
	"unicode/utf8"
)

const maxAILogSnippetRunes = 512

// logAIExchange 输出 AI 请求与响应的关键信息，便于排查模型行为。仅用于诊断，
// 任何 AI 失败都不会因此升级为用户可见错误。
func logAIExchange(op, phase, content string) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		log.Printf("[ai %s] %s: <empty>", op, phase)
		return
	}

	runeCount := utf8.RuneCountInString(trimmed)
	snippet := trimmed
	if runeCount > maxAILogSnippetRunes {
		snippet = string([]rune(trimmed)[:maxAILogSnippetRunes]) + "…(truncated)"
	}
	log.Printf("[ai %s] %s (runes=%d): %s", op, phase, runeCount, snippet)
}
