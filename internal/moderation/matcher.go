package moderation

import (
	"regexp"
	"strings"

	"github.com/faithwalk/anonboard/internal/model"
)

// MatchResult 过滤词匹配结果
type MatchResult struct {
	// IsClean 没有命中任何过滤词时为 true
	IsClean bool

	// FlaggedWords 命中的过滤词，保持传入过滤词集合的顺序
	FlaggedWords []string

	// HighestSeverity 命中词中的最高严重级别；无命中时为 nil
	HighestSeverity *model.Severity
}

// CheckContent 对净化后的文本执行过滤词匹配。
// 纯函数：结果只取决于 (content, filters)。大小写不敏感、整词匹配，
// 过滤词中的正则元字符一律按字面量处理（QuoteMeta），既是正确性要求
// 也杜绝用户可控模式带来的注入面；RE2 本身没有回溯爆炸问题。
// 空输入返回干净结果，永不失败。
func CheckContent(content string, filters []model.WordFilter) MatchResult {
	result := MatchResult{IsClean: true, FlaggedWords: []string{}}
	if content == "" || len(filters) == 0 {
		return result
	}

	for _, f := range filters {
		word := strings.ToLower(strings.TrimSpace(f.Word))
		if word == "" {
			continue
		}

		re, err := regexp.Compile(wholeWordPattern(word))
		if err != nil {
			// QuoteMeta 之后不应出现，保守跳过该词
			continue
		}

		if re.MatchString(content) {
			result.FlaggedWords = append(result.FlaggedWords, f.Word)
			if result.HighestSeverity == nil || f.Severity.Rank() > result.HighestSeverity.Rank() {
				sev := f.Severity
				result.HighestSeverity = &sev
			}
		}
	}

	result.IsClean = len(result.FlaggedWords) == 0
	return result
}

// wholeWordPattern 构造大小写不敏感的整词匹配模式。
// \b 锚点只加在词首/词尾确为单词字符的一侧：对 "die." 这类以标点
// 结尾的词，紧贴标点的 \b 永远不成立，会导致字面量出现也匹配不到
func wholeWordPattern(word string) string {
	var b strings.Builder
	b.WriteString(`(?i)`)
	if isWordByte(word[0]) {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(word))
	if isWordByte(word[len(word)-1]) {
		b.WriteString(`\b`)
	}
	return b.String()
}

// isWordByte 判断是否为 RE2 \b 意义上的单词字符（ASCII 字母数字下划线）
func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
