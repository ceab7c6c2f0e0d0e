package shared

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Label *string `mapstructure:"label" validate:"required"`
	Text  *string `mapstructure:"text"  validate:"required"`
	Link  *string `mapstructure:"link"  validate:"required"`
}

func TestReadFieldsForm(t *testing.T) {
	form := url.Values{"label": {"a", "ignored"}, "text": {""}}
	req := httptest.NewRequest(http.MethodPost, "/?link=query-only", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	fields, err := ReadFields(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"label": "a", "text": ""}, fields, "query string is not part of the body")
}

func TestReadFieldsMultipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("label", "multi"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	fields, err := ReadFields(req)
	require.NoError(t, err)
	assert.Equal(t, "multi", fields["label"])
}

func TestReadFieldsJSON(t *testing.T) {
	body := `{"label":"x","count":3,"flag":true,"gone":null}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	fields, err := ReadFields(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"label": "x", "count": "3", "flag": "true"}, fields)
}

func TestReadFieldsJSONErrors(t *testing.T) {
	for name, body := range map[string]string{
		"not json":      `{"label":`,
		"nested object": `{"label":{"a":1}}`,
		"array body":    `["label"]`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			_, err := ReadFields(req)
			assert.ErrorIs(t, err, ErrMalformedBody)
		})
	}
}

func TestReadFieldsEmptyBody(t *testing.T) {
	for _, ct := range []string{"", "application/json", "application/x-www-form-urlencoded"} {
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		if ct != "" {
			req.Header.Set("Content-Type", ct)
		}
		fields, err := ReadFields(req)
		require.NoError(t, err, ct)
		assert.Empty(t, fields, ct)
	}
}

func TestBindFields(t *testing.T) {
	t.Run("all present, empty string allowed", func(t *testing.T) {
		var dst sampleRequest
		missing, err := BindFields(map[string]string{"label": "L", "text": "", "link": "K"}, &dst)
		require.NoError(t, err)
		assert.Empty(t, missing)
		require.NotNil(t, dst.Text)
		assert.Equal(t, "", *dst.Text)
		assert.Equal(t, "L", *dst.Label)
	})

	t.Run("missing fields reported in declaration order", func(t *testing.T) {
		var dst sampleRequest
		missing, err := BindFields(map[string]string{"text": "t", "extra": "x"}, &dst)
		require.NoError(t, err)
		assert.Equal(t, []string{"label", "link"}, missing)
	})
}
