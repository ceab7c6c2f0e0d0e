package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOverwritesEveryField(t *testing.T) {
	t.Parallel()

	post := NewPost(PostFields{Label: "a", Text: "b", Img: "c", Date: "d", Link: "e", Mode: "f"})
	post.ID = 7
	post.Apply(PostFields{Label: "A", Img: "C"})

	assert.Equal(t, &Post{ID: 7, Label: "A", Img: "C"}, post, "apply is a full overwrite, not a merge")

	project := NewProject(ProjectFields{Label: "p", Text: "t", Img: "i", Stack: "go, sql", Link: "l"})
	assert.Equal(t, &Project{Label: "p", Text: "t", Img: "i", Stack: "go, sql", Link: "l"}, project)

	tech := NewTechnology(TechnologyFields{Label: "Go", Img: "go.svg", Group: "backend", Mode: "dark"})
	tech.Apply(TechnologyFields{Label: "Rust", Group: "backend"})
	assert.Equal(t, &Technology{Label: "Rust", Group: "backend"}, tech)
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateID(0))
	assert.NoError(t, ValidateID(42))

	err := ValidateID(-1)
	assert.True(t, errors.Is(err, ErrInvalidID))

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "id", verr.Field)
	assert.Equal(t, "id must not be negative", err.Error())
}
