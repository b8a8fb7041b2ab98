package llm

import "strings"

// MalformedModelResponseError means the model returned something that could
// not be shaped into the requested record. Raw keeps the offending output for
// the logs.
type MalformedModelResponseError struct {
	Reason string
	Raw    []byte
}

func (e *MalformedModelResponseError) Error() string {
	return "malformed model response: " + e.Reason
}

// StripCodeFences removes a ```json ... ``` wrapper when the model ignores
// the response-format instruction and fences its output anyway.
func StripCodeFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "{[") {
		s = s[i+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
