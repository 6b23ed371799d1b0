// Package htmlsanitize cleans authored HTML before it is embedded in a page.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy is bluemonday's UGC policy plus the class attribute, so authored
// blocks can carry Bootstrap utility classes.
var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}()

// Sanitize strips scripts, event handlers, unsafe URLs and unknown
// elements from s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
