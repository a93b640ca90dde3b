package upstream

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
)

const defaultImageContentType = "image/jpeg"

// ErrInvalidImageURL indicates the requested image URL is not an absolute http(s) URL.
var ErrInvalidImageURL = errors.New("image url must be an absolute http or https url")

// ErrImageHostNotAllowed indicates the image host is outside the allowlist or resolves
// to a loopback, private or link-local address.
var ErrImageHostNotAllowed = apperrors.Wrap(apperrors.ErrForbidden, "image host not allowed")

// Image is a fetched image. The caller must close Body.
type Image struct {
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

// ImageFetcher downloads vehicle images referenced by upstream payloads.
// These are public assets, so no upstream token is attached.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Image, error)
}

type imageFetcher struct {
	client       *http.Client
	allowedHosts []string
	logger       *slog.Logger
}

// NewImageFetcher creates an ImageFetcher using a copy of client. allowedHosts holds
// exact host names or "*.domain" suffixes; an empty list allows any host. Redirects
// are held to the same allowlist.
func NewImageFetcher(client *http.Client, allowedHosts []string, logger *slog.Logger) ImageFetcher {
	f := &imageFetcher{logger: logger}
	for _, host := range allowedHosts {
		if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
			f.allowedHosts = append(f.allowedHosts, host)
		}
	}

	c := *client
	next := client.CheckRedirect
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if !f.hostAllowed(req.URL.Hostname()) {
			return ErrImageHostNotAllowed
		}
		if next != nil {
			return next(req, via)
		}
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		return nil
	}
	f.client = &c
	return f
}

// hostAllowed matches host against the allowlist.
func (f *imageFetcher) hostAllowed(host string) bool {
	if len(f.allowedHosts) == 0 {
		return true
	}
	host = strings.ToLower(host)
	for _, allowed := range f.allowedHosts {
		if suffix, ok := strings.CutPrefix(allowed, "*."); ok {
			if strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if host == allowed {
			return true
		}
	}
	return false
}

// ParseImageURL accepts only absolute http and https URLs.
func ParseImageURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidImageURL
	}
	return u, nil
}

func (f *imageFetcher) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	u, err := ParseImageURL(rawURL)
	if err != nil {
		return nil, err
	}

	if !f.hostAllowed(u.Hostname()) {
		f.logger.Warn("image host rejected", slog.String("host", u.Host))
		return nil, ErrImageHostNotAllowed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, ErrImageHostNotAllowed) {
			f.logger.Warn("image host rejected", slog.String("host", u.Host), slog.Any("error", err))
			return nil, ErrImageHostNotAllowed
		}
		f.logger.Warn("image fetch failed", slog.String("host", u.Host), slog.Any("error", err))
		return nil, &CallError{Operation: "vehicles.image", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()
		f.logger.Warn("image host returned an error status",
			slog.String("host", u.Host),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, &CallError{Operation: "vehicles.image", StatusCode: resp.StatusCode, Body: string(body)}
	}

	contentType := defaultImageContentType
	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mediaType != "" {
		contentType = mediaType
	}

	return &Image{
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}
