package domain

// Technology is a skill badge. Group is the category used for filtering
// (for example "backend" or "tools").
type Technology struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Img   string `json:"img"`
	Group string `json:"group"`
	Mode  string `json:"mode"`
}

// TechnologyFields is the full set of writable Technology fields.
type TechnologyFields struct {
	Label string
	Img   string
	Group string
	Mode  string
}

// NewTechnology builds an unsaved Technology from fields.
func NewTechnology(f TechnologyFields) *Technology {
	t := &Technology{}
	t.Apply(f)
	return t
}

// Apply overwrites every writable field of t with f.
func (t *Technology) Apply(f TechnologyFields) {
	t.Label = f.Label
	t.Img = f.Img
	t.Group = f.Group
	t.Mode = f.Mode
}
