// ABOUTME: Turns a pasted video-platform link into an embed path
// ABOUTME: Also builds the validated embed source URL from host and path

// Package playlist extracts embeddable playlist paths from pasted links
// and builds the embed frame that displays them.
package playlist

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// hostMarker separates the host from the path in accepted links
const hostMarker = ".com/"

// DefaultHost is the embed host used when none is configured
const DefaultHost = "www.youtube.com"

// ErrInvalidLink is returned for links that cannot be embedded
var ErrInvalidLink = errors.New("invalid link")

// segmentPattern limits each path segment to identifier characters
var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ExtractEmbedPath returns everything after the first ".com/" in link.
// The remainder is returned verbatim. A link without the marker, or with
// nothing after it, is rejected.
func ExtractEmbedPath(link string) (string, error) {
	idx := strings.Index(link, hostMarker)
	if idx < 0 {
		return "", fmt.Errorf("%w: missing %q in %q", ErrInvalidLink, hostMarker, link)
	}

	path := link[idx+len(hostMarker):]
	if path == "" {
		return "", fmt.Errorf("%w: nothing after %q", ErrInvalidLink, hostMarker)
	}

	return path, nil
}

// EmbedURL builds https://<host>/embed/<path> after checking that path is
// an identifier path with an optional query string. Query values are
// re-encoded so nothing from the pasted link reaches the URL unescaped.
func EmbedURL(host, path string) (string, error) {
	if host == "" {
		host = DefaultHost
	}

	rawPath, rawQuery, _ := strings.Cut(path, "?")
	if rawPath == "" {
		return "", fmt.Errorf("%w: empty embed path", ErrInvalidLink)
	}

	for _, seg := range strings.Split(rawPath, "/") {
		if !segmentPattern.MatchString(seg) {
			return "", fmt.Errorf("%w: bad path segment %q", ErrInvalidLink, seg)
		}
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}

	u := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     "/embed/" + rawPath,
		RawQuery: query.Encode(),
	}

	return u.String(), nil
}
