package service

import (
	"fmt"
	"regexp"
	"strings"
)

var markdownImagePattern = regexp.MustCompile(`!\[[^\]]*]\((<[^>]+>|[^)\s]+)([^)]*)\)`)

// compressMarkdownImageURLs 将 Markdown 图片链接替换为短占位符后返回替换数量。
// 正文里内嵌的 data URI 可能有几十 KB，直接塞进 Prompt 会浪费大量 Token。
func compressMarkdownImageURLs(input string) (string, int) {
	if !markdownImagePattern.MatchString(input) {
		return input, 0
	}

	index := 0
	result := markdownImagePattern.ReplaceAllStringFunc(input, func(match string) string {
		groups := markdownImagePattern.FindStringSubmatch(match)
		if len(groups) < 3 {
			return match
		}

		original := groups[1]
		index++
		placeholder := fmt.Sprintf("image://asset-%d", index)
		if strings.HasPrefix(original, "<") && strings.HasSuffix(original, ">") {
			placeholder = fmt.Sprintf("<%s>", placeholder)
		}
		return strings.Replace(match, original, placeholder, 1)
	})

	return result, index
}

func truncateRunes(input string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(input)
	if len(runes) <= limit {
		return input
	}
	return string(runes[:limit])
}
