// ABOUTME: Embed frame description with its fixed permission attributes
// ABOUTME: Renders escaped iframe markup for a playlist embed

package playlist

import (
	"fmt"
	"html/template"
	"strings"
)

// FrameTitle is the accessible title of the embed frame
const FrameTitle = "YouTube video player"

// ReferrerPolicy is applied to every embed frame
const ReferrerPolicy = "strict-origin-when-cross-origin"

// FramePermissions is the fixed allow list of the embed frame
var FramePermissions = []string{
	"accelerometer",
	"autoplay",
	"clipboard-write",
	"encrypted-media",
	"gyroscope",
	"picture-in-picture",
	"web-share",
}

var frameTemplate = template.Must(template.New("frame").Parse(
	`<iframe width="{{.Width}}" height="{{.Height}}" src="{{.Src}}" title="{{.Title}}" ` +
		`allow="{{.Allow}}" referrerpolicy="{{.ReferrerPolicy}}" allowfullscreen></iframe>`,
))

// Frame describes one embedded playlist frame
type Frame struct {
	Src    string
	Width  int
	Height int
}

// NewFrame builds a frame for path on host sized to half of the host area
func NewFrame(host, path string, hostWidth, hostHeight int) (Frame, error) {
	src, err := EmbedURL(host, path)
	if err != nil {
		return Frame{}, err
	}

	return Frame{
		Src:    src,
		Width:  hostWidth / 2,
		Height: hostHeight / 2,
	}, nil
}

// Allow returns the permission attribute value
func (f Frame) Allow() string {
	return strings.Join(FramePermissions, "; ")
}

// HTML renders the frame as iframe markup
func (f Frame) HTML() (string, error) {
	var b strings.Builder

	err := frameTemplate.Execute(&b, struct {
		Frame
		Title          string
		Allow          string
		ReferrerPolicy string
	}{
		Frame:          f,
		Title:          FrameTitle,
		Allow:          f.Allow(),
		ReferrerPolicy: ReferrerPolicy,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render frame: %w", err)
	}

	return b.String(), nil
}
