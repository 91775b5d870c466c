package domain

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters in a post title.
const MaxTitleLength = 32

// Post is a blog post. Fields are only reachable through methods so the
// title and content invariants hold after construction and every mutation.
type Post struct {
	id      int64
	title   string
	content string
}

// NewPost builds a post. An id of 0 means the post has not been persisted yet.
func NewPost(id int64, title, content string) (*Post, error) {
	p := &Post{id: id}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetContent(content); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Post) ID() int64       { return p.id }
func (p *Post) HasID() bool     { return p.id != 0 }
func (p *Post) Title() string   { return p.title }
func (p *Post) Content() string { return p.content }

func (p *Post) SetTitle(title string) error {
	if isBlank(title) {
		return ErrBlankTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	p.title = title
	return nil
}

func (p *Post) SetContent(content string) error {
	if isBlank(content) {
		return ErrBlankContent
	}
	p.content = content
	return nil
}

// WithID returns a copy of the post carrying the given id.
func (p *Post) WithID(id int64) *Post {
	cp := *p
	cp.id = id
	return &cp
}

type postJSON struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MarshalJSON omits the id of a post that has not been persisted.
func (p *Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(postJSON{ID: p.id, Title: p.title, Content: p.content})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
