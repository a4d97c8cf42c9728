package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faithwalk/anonboard/internal/model"
)

func TestSanitizeStripsTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain script tag", "<script>alert(1)</script>hello", "alert(1)hello"},
		{"iframe", `<iframe src="http://evil"></iframe>ok`, "ok"},
		{"nested tag trick", "<<script>script>alert(1)<</script>/script>", "alert(1)"},
		{"attribute payload", `<img src=x onerror=alert(1)>text`, "text"},
		{"angle pair treated as tag", "a < b > c", "a  c"},
		{"lone delimiter removed", "price < 100", "price  100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}

func TestSanitizeStripsSchemes(t *testing.T) {
	assert.Equal(t, "alert(1)", Sanitize("javascript:alert(1)"))
	assert.Equal(t, "alert(1)", Sanitize("JaVaScRiPt:alert(1)"))
	assert.Equal(t, "text/html", Sanitize("data:text/html"))
	assert.Equal(t, "foo()", Sanitize("vbscript:foo()"))

	// 协议前缀藏在待删除的标签里，标签剥掉之后才暴露出来
	assert.Equal(t, "alert(1)", Sanitize("java<b>script:alert(1)"))

	// 自嵌套构造，单轮替换会重新拼出前缀
	assert.Equal(t, "alert(1)", Sanitize("javajavascript:script:alert(1)"))
}

func TestSanitizeStripsEventHandlers(t *testing.T) {
	assert.Equal(t, `"doEvil()"`, Sanitize(`onclick="doEvil()"`))
	assert.Equal(t, "x", Sanitize("ONERROR = x"))
	// 单词内部的 on...= 不在词边界上，保持原样
	assert.Equal(t, "season=4", Sanitize("season=4"))
}

func TestSanitizeTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "hello world", Sanitize("   hello world \n\t"))
}

func TestSanitizeTruncatesLast(t *testing.T) {
	long := strings.Repeat("a", model.MaxContentLength+500)
	got := Sanitize(long)
	assert.Len(t, got, model.MaxContentLength)

	exact := strings.Repeat("b", model.MaxContentLength)
	assert.Equal(t, exact, Sanitize(exact))

	// 按字符截断，多字节字符不能被切成半个
	wide := strings.Repeat("界", model.MaxContentLength+10)
	assert.Equal(t, model.MaxContentLength, len([]rune(Sanitize(wide))))
}

func TestSanitizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "", Sanitize("   \n  "))
	assert.Equal(t, "", Sanitize("<script></script>"))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"hello world",
		"<script>alert(1)</script>",
		"<<script>script>alert(1)<</script>/script>",
		"javascript:alert(1)",
		"java<b>script:alert(1)",
		`<img src=x onerror=alert(1)>`,
		"  padded  ",
		strings.Repeat("x ", model.MaxContentLength),
		"a < b > c < d",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input: %q", in)
	}
}

func TestSanitizeOutputGuarantees(t *testing.T) {
	inputs := []string{
		"<a href='javascript:x()'>click<b>me</b></a>",
		"data:data:text DATA:more",
		"<<<>>><script>javascript:</script>",
		strings.Repeat("<i>javascript:x</i>", 300),
	}

	for _, in := range inputs {
		got := Sanitize(in)
		assert.NotContains(t, got, "<", "input: %q", in)
		assert.NotContains(t, got, ">", "input: %q", in)
		assert.NotContains(t, strings.ToLower(got), "javascript:", "input: %q", in)
		assert.NotContains(t, strings.ToLower(got), "data:", "input: %q", in)
		assert.LessOrEqual(t, len([]rune(got)), model.MaxContentLength)
	}
}
