package google_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"vocab/pkg/translator"
	"vocab/pkg/translator/google"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newClient(status int, body string, seen *http.Request) *google.Client {
	return google.New(google.Options{
		BaseURL: "https://translate.test/",
		HTTPClient: &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
			if seen != nil {
				*seen = *r
			}

			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		})},
	})
}

func TestTranslate_Success(t *testing.T) {
	var req http.Request
	c := newClient(http.StatusOK,
		`[[["Hallo Welt. ","Hello world. ",null,null,10],["Wie geht's?","How are you?",null,null,10]],null,"en",null,null,null,1,[],[["en"],null,[1],["en"]]]`,
		&req)

	out, err := c.Translate(context.Background(), "Hello world. How are you?", "en", "de")
	require.NoError(t, err)
	require.Equal(t, "Hallo Welt. Wie geht's?", out)

	require.Equal(t, "translate.test", req.URL.Host)
	require.Equal(t, "/translate_a/single", req.URL.Path)
	q := req.URL.Query()
	require.Equal(t, "gtx", q.Get("client"))
	require.Equal(t, "en", q.Get("sl"))
	require.Equal(t, "de", q.Get("tl"))
	require.Equal(t, "t", q.Get("dt"))
	require.Equal(t, "Hello world. How are you?", q.Get("q"))
}

func TestTranslate_AutoSource(t *testing.T) {
	c := newClient(http.StatusOK, `[[["Hund","dog",null,null,1]],null,"en"]`, nil)

	out, err := c.Translate(context.Background(), "dog", google.AutoDetect, "de")
	require.NoError(t, err)
	require.Equal(t, "Hund", out)
}

func TestTranslate_UnsupportedLanguage(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		status int
	}{
		{name: "malformed target", source: "en", target: "not a language", status: http.StatusOK},
		{name: "auto target", source: "en", target: "auto", status: http.StatusOK},
		{name: "unknown source", source: "zz", target: "de", status: http.StatusOK},
		{name: "rejected upstream", source: "en", target: "tlh", status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(tt.status, `{}`, nil)
			_, err := c.Translate(context.Background(), "dog", tt.source, tt.target)
			require.ErrorIs(t, err, translator.ErrUnsupportedLanguage)
		})
	}
}

func TestTranslate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops"},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "slow down"},
		{name: "not json", status: http.StatusOK, body: "<html>"},
		{name: "no sentences", status: http.StatusOK, body: `[null,null,"en"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(tt.status, tt.body, nil)
			_, err := c.Translate(context.Background(), "dog", "en", "de")
			require.Error(t, err)
			require.NotErrorIs(t, err, translator.ErrUnsupportedLanguage)
		})
	}
}

func TestTranslate_TransportError(t *testing.T) {
	boom := errors.New("connection refused")
	c := google.New(google.Options{HTTPClient: &http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})}})

	_, err := c.Translate(context.Background(), "dog", "en", "de")
	require.ErrorIs(t, err, boom)
}
