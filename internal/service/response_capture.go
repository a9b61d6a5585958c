package service

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"
)

// TruncationMarker is appended when a response body exceeded the capture cap.
const TruncationMarker = "...[truncated]"

// omitFactor bounds the declared body size still worth streaming, in multiples
// of the cap. A UTF-8 character is at most four bytes.
const omitFactor = 4

// ResponseCapture reads a bounded prefix of a third-party response body so
// diagnostics never hold more than limit characters in memory.
type ResponseCapture struct {
	limit int
}

// NewResponseCapture creates a capture capped at limit characters.
func NewResponseCapture(limit int) *ResponseCapture {
	return &ResponseCapture{limit: limit}
}

// Capture returns the captured body text, or "" when the content type is not
// textual. A declared Content-Length above omitFactor times the cap is not
// read at all.
// The caller still owns closing resp.Body.
func (c *ResponseCapture) Capture(resp *http.Response) string {
	if resp == nil || resp.Body == nil || !isTextualContentType(resp.Header.Get("Content-Type")) {
		return ""
	}

	if resp.ContentLength > int64(c.limit)*omitFactor {
		return fmt.Sprintf("[response body omitted: %d bytes]", resp.ContentLength)
	}

	reader := bufio.NewReader(resp.Body)
	var b strings.Builder
	for n := 0; ; n++ {
		r, _, err := reader.ReadRune()
		if err != nil {
			// EOF, or the endpoint hung up mid-body: keep what arrived.
			break
		}
		if n == c.limit {
			b.WriteString(TruncationMarker)
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isTextualContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/") || strings.Contains(ct, "json") || strings.Contains(ct, "xml")
}
