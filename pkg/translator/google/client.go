// Package google provides a translator.Client backed by Google Translate's
// public "gtx" endpoint, the one used by the browser widget. It needs no API
// key.
package google

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vocab/pkg/translator"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/text/language"
)

// DefaultBaseURL is the public endpoint host.
const DefaultBaseURL = "https://translate.googleapis.com"

// AutoDetect lets Google pick the source language.
const AutoDetect = "auto"

// Options configures a Client.
type Options struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Timeout bounds a single request when HTTPClient is nil.
	Timeout time.Duration
	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client
}

// Client implements translator.Client. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ translator.Client = (*Client)(nil)

// New constructs a Client.
func New(opts Options) *Client {
	c := &Client{
		httpClient: opts.HTTPClient,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}

	return c
}

func checkLanguage(code string, allowAuto bool) error {
	if allowAuto && code == AutoDetect {
		return nil
	}
	if _, err := language.Parse(code); err != nil {
		return errors.Wrapf(translator.ErrUnsupportedLanguage, "%q: %s", code, err.Error())
	}

	return nil
}

// Translate sends text to Google and concatenates the translated sentences.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if err := checkLanguage(sourceLang, true); err != nil {
		return "", errors.Wrap(err, "source language")
	}
	if err := checkLanguage(targetLang, false); err != nil {
		return "", errors.Wrap(err, "target language")
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", sourceLang)
	q.Set("tl", targetLang)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response body")
	}
	// Google answers 400 for language codes it does not know.
	if resp.StatusCode == http.StatusBadRequest {
		return "", errors.Wrapf(translator.ErrUnsupportedLanguage, "%s -> %s", sourceLang, targetLang)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("translate failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	out, err := decodeTranslation(b)
	if err != nil {
		return "", errors.Wrap(err, "decode response")
	}

	return out, nil
}

// decodeTranslation reads the positional response
//
//	[[["Hallo Welt","hello world",null,null,10], ...], null, "en", ...]
//
// and joins the first element of every sentence.
func decodeTranslation(b []byte) (string, error) {
	var (
		sb    strings.Builder
		top   int
		found bool
	)
	err := jx.DecodeBytes(b).Arr(func(d *jx.Decoder) error {
		defer func() { top++ }()
		if top != 0 || d.Next() != jx.Array {
			return d.Skip()
		}
		found = true

		return d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.Array {
				return d.Skip()
			}

			field := 0

			return d.Arr(func(d *jx.Decoder) error {
				defer func() { field++ }()
				if field != 0 || d.Next() != jx.String {
					return d.Skip()
				}
				s, err := d.Str()
				if err != nil {
					return err
				}
				sb.WriteString(s)

				return nil
			})
		})
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New("no sentences in response")
	}

	return sb.String(), nil
}
