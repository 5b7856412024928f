// Package normalize extracts a resolvable candidate out of freeform shared
// text. Share sheets often hand over multi-line blobs mixing a place name,
// an address and a link; only one candidate string goes into the pipeline.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// Naver map links, including the naver.me shortener and the mobile host.
	naverURLPattern = regexp.MustCompile(`https?://(?:naver\.me|map\.naver\.com|m\.map\.naver\.com)/\S+`)
	// App-scheme deep links shared from the Naver Map app.
	nmapURIPattern = regexp.MustCompile(`nmap://\S+`)
)

// Extract returns the single candidate string to resolve from raw shared
// text: the first Naver map URL if present, else the first nmap:// URI,
// else the whole input trimmed (raw address fallback). Pure; never fails.
// An all-whitespace input yields "", which callers must reject themselves.
func Extract(text string) string {
	if match := naverURLPattern.FindString(text); match != "" {
		return match
	}
	if match := nmapURIPattern.FindString(text); match != "" {
		return match
	}
	return strings.TrimSpace(text)
}
