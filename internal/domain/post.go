package domain

// Post is a blog entry shown on the portfolio.
type Post struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
	Img   string `json:"img"`
	Date  string `json:"date"`
	Link  string `json:"link"`
	Mode  string `json:"mode"`
}

// PostFields is the full set of writable Post fields. Updates overwrite
// every field; there is no partial update.
type PostFields struct {
	Label string
	Text  string
	Img   string
	Date  string
	Link  string
	Mode  string
}

// NewPost builds an unsaved Post from fields.
func NewPost(f PostFields) *Post {
	p := &Post{}
	p.Apply(f)
	return p
}

// Apply overwrites every writable field of p with f.
func (p *Post) Apply(f PostFields) {
	p.Label = f.Label
	p.Text = f.Text
	p.Img = f.Img
	p.Date = f.Date
	p.Link = f.Link
	p.Mode = f.Mode
}
