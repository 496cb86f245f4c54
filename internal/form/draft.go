package form

// Step 表单向导的步骤
type Step int

const (
	StepBasicInfo Step = iota
	StepMonthSnapshot
	StepMemories
	StepShareRecommend
	StepVisualUploads

	stepCount
)

// LastStep 最后一步
const LastStep = stepCount - 1

// MaxPhotos 每次提交的照片上限
const MaxPhotos = 5

// 文本字段键
const (
	FieldName           = "name"
	FieldLocation       = "location"
	FieldShortDesc      = "short_desc"
	FieldMood           = "mood"
	FieldColor          = "color"
	FieldMemory         = "memory"
	FieldStory          = "story"
	FieldRecommendation = "recommendation"
	FieldMessage        = "message"
)

// Photo 暂存的待上传文件
type Photo struct {
	Filename string
	Data     []byte
}

// Draft 表单草稿状态机。
// 五步向导，只有第 0 步有校验（name 非空）；
// loading/error/success 是与步骤正交的展示标志
type Draft struct {
	step    Step
	fields  map[string]string
	photos  []Photo
	selfie  *Photo
	loading bool
	err     string
	success bool
}

// NewDraft 创建草稿，name 预填登录用户的昵称或邮箱
func NewDraft(prefillName string) *Draft {
	d := &Draft{
		fields: make(map[string]string),
	}
	if prefillName != "" {
		d.fields[FieldName] = prefillName
	}
	return d
}

// Step 当前步骤
func (d *Draft) Step() Step {
	return d.step
}

// Field 读取文本字段
func (d *Draft) Field(name string) string {
	return d.fields[name]
}

// SetField 更新文本字段，任何步骤都允许
func (d *Draft) SetField(name, value string) {
	d.fields[name] = value
}

// Next 下一步。第 0 步要求 name 非空，失败时设置错误且不前进
func (d *Draft) Next() bool {
	if d.step == StepBasicInfo && d.fields[FieldName] == "" {
		d.err = "Please enter your name"
		return false
	}

	d.err = ""
	if d.step < LastStep {
		d.step++
	}
	return true
}

// Prev 上一步，总是允许，清除错误
func (d *Draft) Prev() {
	d.err = ""
	if d.step > 0 {
		d.step--
	}
}

// AddPhotos 追加照片，总量截断到前 5 张，保持已有顺序在前
func (d *Draft) AddPhotos(photos ...Photo) {
	for _, p := range photos {
		if len(d.photos) >= MaxPhotos {
			break
		}
		d.photos = append(d.photos, p)
	}
}

// ReorderPhotos 把一张照片移动到新位置，目标无效时不做任何事
func (d *Draft) ReorderPhotos(from, to int) {
	if from < 0 || from >= len(d.photos) || to < 0 || to >= len(d.photos) || from == to {
		return
	}

	p := d.photos[from]
	d.photos = append(d.photos[:from], d.photos[from+1:]...)

	rest := append([]Photo{}, d.photos[to:]...)
	d.photos = append(append(d.photos[:to], p), rest...)
}

// RemovePhoto 按位置删除一张照片
func (d *Draft) RemovePhoto(index int) {
	if index < 0 || index >= len(d.photos) {
		return
	}
	d.photos = append(d.photos[:index], d.photos[index+1:]...)
}

// Photos 已暂存照片，顺序即提交顺序
func (d *Draft) Photos() []Photo {
	return d.photos
}

// SetSelfie 替换自拍，nil 表示清除
func (d *Draft) SetSelfie(p *Photo) {
	d.selfie = p
}

// Selfie 已暂存自拍
func (d *Draft) Selfie() *Photo {
	return d.selfie
}

// Loading 是否正在提交
func (d *Draft) Loading() bool {
	return d.loading
}

// Error 当前错误信息，空串表示没有
func (d *Draft) Error() string {
	return d.err
}

// Success 提交是否已成功
func (d *Draft) Success() bool {
	return d.success
}
