package carousel

import (
	"strings"
	"time"
)

// SwipeThreshold 触发翻页的最小水平滑动距离（像素）
const SwipeThreshold = 50

// DefaultAutoplayInterval 自动轮播间隔
const DefaultAutoplayInterval = 5 * time.Second

// Item 轮播里的一张图
type Item struct {
	URL string
	Alt string
}

// FullscreenEnv 全屏能力由环境提供，进入/退出是否生效
// 以 HandleFullscreenChange 回调为准，不同步假定成功
type FullscreenEnv interface {
	RequestFullscreen() error
	ExitFullscreen() error
}

// Carousel 媒体轮播状态机。
// 索引变化会把旋转角清零并重置自动轮播计时
type Carousel struct {
	items    []Item
	index    int
	rotation int
	interval time.Duration

	fullscreen bool
	env        FullscreenEnv

	autoplayAt time.Time

	touchStartX float64
	touching    bool
}

func New(items []Item, env FullscreenEnv) *Carousel {
	return &Carousel{
		items:    items,
		interval: DefaultAutoplayInterval,
		env:      env,
	}
}

// SetInterval 调整自动轮播间隔
func (c *Carousel) SetInterval(d time.Duration) {
	c.interval = d
}

// Empty 列表为空时什么都不渲染
func (c *Carousel) Empty() bool {
	return len(c.items) == 0
}

// Index 当前索引
func (c *Carousel) Index() int {
	return c.index
}

// Current 当前条目，空列表返回零值
func (c *Carousel) Current() Item {
	if c.Empty() {
		return Item{}
	}
	return c.items[c.index]
}

// Rotation 当前旋转角（0/90/180/270）
func (c *Carousel) Rotation() int {
	return c.rotation
}

// Fullscreen 是否处于全屏
func (c *Carousel) Fullscreen() bool {
	return c.fullscreen
}

// Start 启动自动轮播计时，now 之后 interval 到期
func (c *Carousel) Start(now time.Time) {
	c.autoplayAt = now.Add(c.interval)
}

// Tick 推进自动轮播。到期则切到下一张并重置计时
func (c *Carousel) Tick(now time.Time) {
	if c.Empty() || c.autoplayAt.IsZero() {
		return
	}
	if now.Before(c.autoplayAt) {
		return
	}
	c.advance(1, now)
}

// Next 手动下一张，循环
func (c *Carousel) Next(now time.Time) {
	if c.Empty() {
		return
	}
	c.advance(1, now)
}

// Prev 手动上一张，循环
func (c *Carousel) Prev(now time.Time) {
	if c.Empty() {
		return
	}
	c.advance(-1, now)
}

// Select 跳到指定索引，越界时不做任何事
func (c *Carousel) Select(index int, now time.Time) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.index = index
	c.onIndexChange(now)
}

func (c *Carousel) advance(delta int, now time.Time) {
	n := len(c.items)
	c.index = ((c.index+delta)%n + n) % n
	c.onIndexChange(now)
}

// onIndexChange 索引变化：旋转清零，自动轮播计时重置
func (c *Carousel) onIndexChange(now time.Time) {
	c.rotation = 0
	if !c.autoplayAt.IsZero() {
		c.autoplayAt = now.Add(c.interval)
	}
}

// Rotate 旋转 90°，只有 mod 360 影响渲染
func (c *Carousel) Rotate() {
	if c.Empty() {
		return
	}
	c.rotation = (c.rotation + 90) % 360
}

// ToggleFullscreen 请求进入或退出全屏，
// 实际状态变化由 HandleFullscreenChange 回调确认
func (c *Carousel) ToggleFullscreen() error {
	if c.Empty() || c.env == nil {
		return nil
	}
	if c.fullscreen {
		return c.env.ExitFullscreen()
	}
	return c.env.RequestFullscreen()
}

// HandleFullscreenChange 环境的全屏变化通知
func (c *Carousel) HandleFullscreenChange(fullscreen bool) {
	c.fullscreen = fullscreen
}

// TouchStart 记录触摸起点
func (c *Carousel) TouchStart(x float64) {
	c.touchStartX = x
	c.touching = true
}

// TouchEnd 结束触摸。向左滑超过阈值翻下一张，向右滑翻上一张，
// 小于阈值的移动忽略
func (c *Carousel) TouchEnd(x float64, now time.Time) {
	if !c.touching || c.Empty() {
		return
	}
	c.touching = false

	delta := c.touchStartX - x
	switch {
	case delta > SwipeThreshold:
		c.Next(now)
	case delta < -SwipeThreshold:
		c.Prev(now)
	}
}

// DownloadName 当前图片的下载文件名：URL 最后一段，取不到用 "image"
func (c *Carousel) DownloadName() string {
	cur := c.Current()
	if cur.URL == "" {
		return "image"
	}

	url := strings.TrimRight(cur.URL, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		url = url[i+1:]
	}
	if url == "" {
		return "image"
	}
	return url
}
