package cratedocs

// ContentTypeText is the only content item type produced.
const ContentTypeText = "text"

// Response is the envelope returned for every command.
type Response struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Content is a single typed item of response payload.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextResponse returns a successful response carrying text.
func NewTextResponse(text string) *Response {
	return &Response{
		Content: []Content{{Type: ContentTypeText, Text: text}},
	}
}

// NewErrorResponse returns a failed response carrying a human-readable message.
func NewErrorResponse(msg string) *Response {
	return &Response{
		Content: []Content{{Type: ContentTypeText, Text: msg}},
		IsError: true,
	}
}

// Text returns the text of the first content item, or "" if there is none.
func (r *Response) Text() string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].Text
}
