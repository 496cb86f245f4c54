package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type fakeUploader struct {
	uploads  []string // kind/filename 记录上传顺序
	failOn   string
	urlCount int
}

func (f *fakeUploader) Upload(_ context.Context, kind, filename string, _ io.Reader) (string, error) {
	key := kind + "/" + filename
	if f.failOn == key {
		return "", errors.New("storage unavailable")
	}
	f.uploads = append(f.uploads, key)
	f.urlCount++
	return fmt.Sprintf("https://cdn.test/%s", key), nil
}

type fakeIngester struct {
	submitted  []dto.SubmitRequest
	submitErr  error
	notified   []string
	notifyErr  error
}

func (f *fakeIngester) Submit(_ context.Context, req dto.SubmitRequest) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, req)
	return nil
}

func (f *fakeIngester) Notify(_ context.Context, name string) error {
	f.notified = append(f.notified, name)
	return f.notifyErr
}

func newTestPipeline(u Uploader, i Ingester) *Pipeline {
	p := NewPipeline(u, i)
	p.now = func() time.Time { return time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC) }
	p.spawn = func(fn func()) { fn() } // 同步执行通知便于断言
	return p
}

func readyDraft() *Draft {
	d := NewDraft("Priya")
	d.SetField(FieldLocation, "Pune")
	d.SetField(FieldMemory, "trek in the rain")
	d.AddPhotos(photo("one.jpg"), photo("two.jpg"))
	return d
}

func TestPipelineSuccess(t *testing.T) {
	up := &fakeUploader{}
	in := &fakeIngester{}
	p := newTestPipeline(up, in)

	d := readyDraft()
	selfie := photo("me.jpg")
	d.SetSelfie(&selfie)

	err := p.Run(context.Background(), d)
	require.NoError(t, err)

	// 照片按列表顺序逐个上传，然后是自拍
	assert.Equal(t, []string{"photos/one.jpg", "photos/two.jpg", "selfies/me.jpg"}, up.uploads)

	require.Len(t, in.submitted, 1)
	req := in.submitted[0]
	assert.Equal(t, "2025-07-14T10:30:00.000Z", req.FormTimestamp)
	assert.Equal(t, req.FormTimestamp, req.Date)
	assert.Equal(t, "Priya", req.Name)
	assert.Equal(t, []string{"https://cdn.test/photos/one.jpg", "https://cdn.test/photos/two.jpg"}, req.PhotoURLs)
	require.NotNil(t, req.SelfieURL)
	assert.Equal(t, "https://cdn.test/selfies/me.jpg", *req.SelfieURL)

	assert.Equal(t, []string{"Priya"}, in.notified)
	assert.True(t, d.Success())
	assert.False(t, d.Loading())
	// 草稿内容保留，不自动清空
	assert.Equal(t, "Priya", d.Field(FieldName))
	assert.Len(t, d.Photos(), 2)
}

func TestPipelineNoSelfie(t *testing.T) {
	up := &fakeUploader{}
	in := &fakeIngester{}
	p := newTestPipeline(up, in)

	d := readyDraft()

	err := p.Run(context.Background(), d)
	require.NoError(t, err)

	require.Len(t, in.submitted, 1)
	assert.Nil(t, in.submitted[0].SelfieURL)
}

func TestPipelineAbortsOnUploadFailureNoRollback(t *testing.T) {
	up := &fakeUploader{failOn: "photos/two.jpg"}
	in := &fakeIngester{}
	p := newTestPipeline(up, in)

	d := readyDraft()

	err := p.Run(context.Background(), d)
	require.Error(t, err)

	// 第一张已经上传，失败后不清理也不继续
	assert.Equal(t, []string{"photos/one.jpg"}, up.uploads)
	assert.Empty(t, in.submitted)
	assert.Empty(t, in.notified)
	assert.False(t, d.Success())
	assert.NotEmpty(t, d.Error())
}

func TestPipelineSubmitFailure(t *testing.T) {
	up := &fakeUploader{}
	in := &fakeIngester{submitErr: errors.New("submit rejected: store offline")}
	p := newTestPipeline(up, in)

	d := readyDraft()

	err := p.Run(context.Background(), d)
	require.Error(t, err)

	assert.Empty(t, in.notified)
	assert.False(t, d.Success())
	assert.Contains(t, d.Error(), "store offline")
}

func TestPipelineNotifyFailureStillSuccess(t *testing.T) {
	up := &fakeUploader{}
	in := &fakeIngester{notifyErr: errors.New("email provider down")}
	p := newTestPipeline(up, in)

	d := readyDraft()

	err := p.Run(context.Background(), d)
	require.NoError(t, err)

	// 通知失败只记日志，提交仍然成功
	assert.True(t, d.Success())
	assert.Empty(t, d.Error())
}
