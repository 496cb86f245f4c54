package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFullscreen struct {
	requested int
	exited    int
}

func (f *fakeFullscreen) RequestFullscreen() error { f.requested++; return nil }
func (f *fakeFullscreen) ExitFullscreen() error    { f.exited++; return nil }

func testItems() []Item {
	return []Item{
		{URL: "https://cdn.test/photos/a.jpg"},
		{URL: "https://cdn.test/photos/b.jpg"},
		{URL: "https://cdn.test/photos/c.jpg"},
	}
}

func TestNextPrevCyclic(t *testing.T) {
	c := New(testItems(), nil)
	now := time.Now()

	c.Next(now)
	assert.Equal(t, 1, c.Index())

	c.Next(now)
	c.Next(now)
	assert.Equal(t, 0, c.Index())

	c.Prev(now)
	assert.Equal(t, 2, c.Index())
}

func TestAutoplayTick(t *testing.T) {
	c := New(testItems(), nil)
	start := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	c.Start(start)

	c.Tick(start.Add(2 * time.Second))
	assert.Equal(t, 0, c.Index())

	c.Tick(start.Add(DefaultAutoplayInterval))
	assert.Equal(t, 1, c.Index())

	// 到期切换后计时重置
	c.Tick(start.Add(DefaultAutoplayInterval + 2*time.Second))
	assert.Equal(t, 1, c.Index())

	c.Tick(start.Add(2 * DefaultAutoplayInterval))
	assert.Equal(t, 2, c.Index())
}

func TestManualNavigationRestartsAutoplay(t *testing.T) {
	c := New(testItems(), nil)
	start := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	c.Start(start)

	// 手动翻页把计时推后
	almostDue := start.Add(DefaultAutoplayInterval - time.Millisecond)
	c.Next(almostDue)
	assert.Equal(t, 1, c.Index())

	c.Tick(start.Add(DefaultAutoplayInterval))
	assert.Equal(t, 1, c.Index())

	c.Tick(almostDue.Add(DefaultAutoplayInterval))
	assert.Equal(t, 2, c.Index())
}

func TestRotateAndResetOnIndexChange(t *testing.T) {
	c := New(testItems(), nil)
	now := time.Now()

	c.Rotate()
	c.Rotate()
	assert.Equal(t, 180, c.Rotation())

	c.Rotate()
	c.Rotate()
	assert.Equal(t, 0, c.Rotation())

	c.Rotate()
	require.Equal(t, 90, c.Rotation())

	c.Next(now)
	assert.Equal(t, 0, c.Rotation())
}

func TestSelect(t *testing.T) {
	c := New(testItems(), nil)
	now := time.Now()

	c.Select(2, now)
	assert.Equal(t, 2, c.Index())

	c.Select(10, now) // 越界不做任何事
	assert.Equal(t, 2, c.Index())
}

func TestSwipeThreshold(t *testing.T) {
	c := New(testItems(), nil)
	now := time.Now()

	// 左滑超过阈值 → 下一张
	c.TouchStart(200)
	c.TouchEnd(200-SwipeThreshold-1, now)
	assert.Equal(t, 1, c.Index())

	// 右滑超过阈值 → 上一张
	c.TouchStart(100)
	c.TouchEnd(100+SwipeThreshold+1, now)
	assert.Equal(t, 0, c.Index())

	// 小于阈值忽略
	c.TouchStart(100)
	c.TouchEnd(100-SwipeThreshold, now)
	assert.Equal(t, 0, c.Index())
}

func TestFullscreenTrackedViaCallback(t *testing.T) {
	env := &fakeFullscreen{}
	c := New(testItems(), env)

	require.NoError(t, c.ToggleFullscreen())
	assert.Equal(t, 1, env.requested)
	// 请求不同步生效
	assert.False(t, c.Fullscreen())

	c.HandleFullscreenChange(true)
	assert.True(t, c.Fullscreen())

	require.NoError(t, c.ToggleFullscreen())
	assert.Equal(t, 1, env.exited)

	c.HandleFullscreenChange(false)
	assert.False(t, c.Fullscreen())
}

func TestDownloadName(t *testing.T) {
	c := New([]Item{{URL: "https://cdn.test/photos/1723_pic.jpg"}}, nil)
	assert.Equal(t, "1723_pic.jpg", c.DownloadName())

	c = New([]Item{{URL: "https://cdn.test/"}}, nil)
	assert.Equal(t, "cdn.test", c.DownloadName())

	c = New([]Item{{URL: ""}}, nil)
	assert.Equal(t, "image", c.DownloadName())
}

func TestEmptyCarouselNoops(t *testing.T) {
	c := New(nil, &fakeFullscreen{})
	now := time.Now()

	assert.True(t, c.Empty())
	c.Next(now)
	c.Prev(now)
	c.Rotate()
	c.Start(now)
	c.Tick(now.Add(time.Minute))
	require.NoError(t, c.ToggleFullscreen())

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, Item{}, c.Current())
	assert.Equal(t, "image", c.DownloadName())
}
