package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyImageLatchesVisible(t *testing.T) {
	l := NewLazyImage("https://cdn.test/photos/a.jpg")

	assert.False(t, l.Visible())
	assert.Empty(t, l.Src())

	l.Observe(false)
	assert.False(t, l.Visible())

	l.Observe(true)
	assert.True(t, l.Visible())
	assert.Equal(t, "https://cdn.test/photos/a.jpg", l.Src())

	// 一旦可见不再回退
	l.Observe(false)
	assert.True(t, l.Visible())
	assert.Equal(t, "https://cdn.test/photos/a.jpg", l.Src())
}
