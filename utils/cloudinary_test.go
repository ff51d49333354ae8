package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"versioned delivery url",
			"https://res.cloudinary.com/demo/image/upload/v1712345678/documents/report.pdf",
			"documents/report",
		},
		{
			"no version segment",
			"https://res.cloudinary.com/demo/image/upload/documents/report.pdf",
			"documents/report",
		},
		{
			"nested folder",
			"https://res.cloudinary.com/demo/raw/upload/v1/events/2026/banner.png",
			"events/2026/banner",
		},
		{
			"folder starting with v is not a version",
			"https://res.cloudinary.com/demo/image/upload/videos/clip.mp4",
			"videos/clip",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractPublicID(tc.url)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractPublicIDRejectsShortPath(t *testing.T) {
	_, err := extractPublicID("https://res.cloudinary.com/demo/upload")
	assert.Error(t, err)
}
