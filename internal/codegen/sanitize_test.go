package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIDReplacesHyphens(t *testing.T) {
	assert.Equal(t, "button_01J8XK2M", SanitizeID("button-01J8XK2M"))
}

func TestSanitizeIDLeadingDigit(t *testing.T) {
	assert.Equal(t, "widget_9lives", SanitizeID("9lives"))
}

func TestSanitizeIDEmpty(t *testing.T) {
	assert.Equal(t, "widget_0", SanitizeID(""))
}

func TestSanitizeIDPassesValidIdentifiers(t *testing.T) {
	assert.Equal(t, "frame_3", SanitizeID("frame_3"))
}

func TestSanitizeIDNonASCII(t *testing.T) {
	assert.Equal(t, "label___", SanitizeID("label-é!"))
}

func TestSanitizeIDDeterministic(t *testing.T) {
	raw := "entry-01J8XK2M3QRS.TUV"
	assert.Equal(t, SanitizeID(raw), SanitizeID(raw))
}
