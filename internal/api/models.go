package api

import "github.com/ccrayp/portfolio-api/internal/domain"

// Request bodies. Fields are pointers so a field sent as "" is present while
// an omitted one is nil; validate's required tag rejects only the latter.
// Field order is the order missing fields are reported in.

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username *string `mapstructure:"username" validate:"required"`
	Password *string `mapstructure:"password" validate:"required"`
}

// PostRequest is the body of the post create and update routes.
type PostRequest struct {
	Label *string `mapstructure:"label" validate:"required"`
	Text  *string `mapstructure:"text"  validate:"required"`
	Img   *string `mapstructure:"img"   validate:"required"`
	Link  *string `mapstructure:"link"  validate:"required"`
	Date  *string `mapstructure:"date"  validate:"required"`
	Mode  *string `mapstructure:"mode"  validate:"required"`
}

// Fields converts the request into domain fields.
func (p PostRequest) Fields() domain.PostFields {
	return domain.PostFields{
		Label: deref(p.Label),
		Text:  deref(p.Text),
		Img:   deref(p.Img),
		Date:  deref(p.Date),
		Link:  deref(p.Link),
		Mode:  deref(p.Mode),
	}
}

// ProjectRequest is the body of the project create and update routes.
type ProjectRequest struct {
	Label *string `mapstructure:"label" validate:"required"`
	Text  *string `mapstructure:"text"  validate:"required"`
	Img   *string `mapstructure:"img"   validate:"required"`
	Stack *string `mapstructure:"stack" validate:"required"`
	Link  *string `mapstructure:"link"  validate:"required"`
}

// Fields converts the request into domain fields.
func (p ProjectRequest) Fields() domain.ProjectFields {
	return domain.ProjectFields{
		Label: deref(p.Label),
		Text:  deref(p.Text),
		Img:   deref(p.Img),
		Stack: deref(p.Stack),
		Link:  deref(p.Link),
	}
}

// TechnologyRequest is the body of the technology create and update routes.
type TechnologyRequest struct {
	Label *string `mapstructure:"label" validate:"required"`
	Img   *string `mapstructure:"img"   validate:"required"`
	Group *string `mapstructure:"group" validate:"required"`
	Mode  *string `mapstructure:"mode"  validate:"required"`
}

// Fields converts the request into domain fields.
func (t TechnologyRequest) Fields() domain.TechnologyFields {
	return domain.TechnologyFields{
		Label: deref(t.Label),
		Img:   deref(t.Img),
		Group: deref(t.Group),
		Mode:  deref(t.Mode),
	}
}

// CreatedResponse is returned with 201 after a create.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ProtectedResponse is returned by GET /api/protected.
type ProtectedResponse struct {
	LoggedInAs string `json:"logged_in_as"`
	Message    string `json:"message"`
}
