package domain

// Project is a portfolio project. Stack is free text, usually a comma
// separated list of technologies.
type Project struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
	Img   string `json:"img"`
	Stack string `json:"stack"`
	Link  string `json:"link"`
}

// ProjectFields is the full set of writable Project fields.
type ProjectFields struct {
	Label string
	Text  string
	Img   string
	Stack string
	Link  string
}

// NewProject builds an unsaved Project from fields.
func NewProject(f ProjectFields) *Project {
	p := &Project{}
	p.Apply(f)
	return p
}

// Apply overwrites every writable field of p with f.
func (p *Project) Apply(f ProjectFields) {
	p.Label = f.Label
	p.Text = f.Text
	p.Img = f.Img
	p.Stack = f.Stack
	p.Link = f.Link
}
