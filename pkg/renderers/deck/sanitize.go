package deck

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

// sanitizeBody filters a rendered slide body down to the markup the deck
// templates produce. Scripts, styles and event handlers never survive.
func sanitizeBody(raw string) string {
	return strings.TrimSpace(bodySanitizer().Sanitize(raw))
}

func bodySanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"h1", "h2", "h3", "p", "div", "span", "strong", "em",
			"ul", "ol", "li", "pre", "code",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
		bodyPolicy = policy
	})
	return bodyPolicy
}
