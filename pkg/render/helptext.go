package render

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// helpTextRenderer turns markdown help text into sanitized HTML.
type helpTextRenderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func newHelpTextRenderer(policy *bluemonday.Policy) *helpTextRenderer {
	if policy == nil {
		policy = helpTextSanitizer()
	}
	return &helpTextRenderer{
		markdown: goldmark.New(),
		policy:   policy,
	}
}

func (h *helpTextRenderer) render(source string) (string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(trimmed), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(h.policy.Sanitize(buf.String())), nil
}

func helpTextSanitizer() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("p", "br", "em", "strong", "code", "ul", "ol", "li")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		helpPolicy = policy
	})
	return helpPolicy
}
