// Package moderation 实现内容审核管线的核心：
// 内容净化、过滤词匹配与创建时审核状态机
package moderation

import (
	"regexp"
	"strings"

	"github.com/faithwalk/anonboard/internal/model"
)

var (
	// 危险协议前缀，大小写不敏感
	schemeRe = regexp.MustCompile(`(?i)(?:javascript|vbscript|data)\s*:`)

	// 单层标签结构，多轮执行以剥离嵌套/畸形构造
	tagRe = regexp.MustCompile(`<[^<>]*>`)

	// 内联事件处理器，如 onclick= / onerror =
	eventRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)

	delimReplacer = strings.NewReplacer("<", "", ">", "")
)

// 标签剥离最少执行轮数，抵御 <<script>script> 之类单轮漏网的构造
const minTagStripPasses = 3

// Sanitize 净化用户提交的原始文本。
// 保证：返回值不含标签定界符、不含已知危险协议前缀，长度不超过
// model.MaxContentLength 个字符；对任意输入幂等，且永不失败。
// 长度截断是最后一步——先截断可能把危险片段留在切口处。
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	s := stripUnsafe(raw)
	s = strings.TrimSpace(s)
	s = truncateRunes(s, model.MaxContentLength)
	// 截断可能暴露出行尾空白，再修一次以保持幂等
	return strings.TrimSpace(s)
}

// stripUnsafe 循环剥离危险内容直到不动点。
// 协议前缀在标签剥离前后各清一遍：攻击载荷可以藏在待删除的标签里，
// 剥离之后才会暴露出来
func stripUnsafe(s string) string {
	for {
		next := schemeRe.ReplaceAllString(s, "")

		for pass := 1; ; pass++ {
			stripped := tagRe.ReplaceAllString(next, "")
			if stripped == next && pass >= minTagStripPasses {
				break
			}
			next = stripped
		}

		// 落单的定界符没有配对标签可匹配，直接移除
		next = delimReplacer.Replace(next)
		next = eventRe.ReplaceAllString(next, "")
		next = schemeRe.ReplaceAllString(next, "")

		if next == s {
			return s
		}
		s = next
	}
}

// truncateRunes 按字符数截断，避免把多字节字符切成半个
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
