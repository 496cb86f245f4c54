package carousel

// LazyImage 懒加载图片：第一次观察到进入视口附近后永久可见，
// 真实资源地址只在可见之后暴露
type LazyImage struct {
	src     string
	visible bool
}

func NewLazyImage(src string) *LazyImage {
	return &LazyImage{src: src}
}

// Observe 视口交叉观察回调。一旦可见不再回退
func (l *LazyImage) Observe(intersecting bool) {
	if intersecting {
		l.visible = true
	}
}

// Visible 是否已进入过视口附近
func (l *LazyImage) Visible() bool {
	return l.visible
}

// Src 可见之前返回空串，不触发资源加载
func (l *LazyImage) Src() string {
	if !l.visible {
		return ""
	}
	return l.src
}
