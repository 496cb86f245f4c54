package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photo(name string) Photo {
	return Photo{Filename: name, Data: []byte(name)}
}

func TestNextRequiresName(t *testing.T) {
	d := NewDraft("")

	ok := d.Next()
	assert.False(t, ok)
	assert.Equal(t, StepBasicInfo, d.Step())
	assert.NotEmpty(t, d.Error())

	d.SetField(FieldName, "Priya")
	ok = d.Next()
	assert.True(t, ok)
	assert.Equal(t, StepMonthSnapshot, d.Step())
	assert.Empty(t, d.Error())
}

func TestNextClampsAtLastStep(t *testing.T) {
	d := NewDraft("Priya")

	for i := 0; i < 10; i++ {
		d.Next()
	}
	assert.Equal(t, LastStep, d.Step())
}

func TestPrevClampsAtZeroAndClearsError(t *testing.T) {
	d := NewDraft("")

	d.Next() // sets error
	require.NotEmpty(t, d.Error())

	d.Prev()
	assert.Equal(t, StepBasicInfo, d.Step())
	assert.Empty(t, d.Error())

	d.Prev()
	assert.Equal(t, StepBasicInfo, d.Step())
}

func TestPrefillName(t *testing.T) {
	d := NewDraft("rahul@example.com")
	assert.Equal(t, "rahul@example.com", d.Field(FieldName))
}

func TestAddPhotosTruncatesToFive(t *testing.T) {
	d := NewDraft("Priya")

	d.AddPhotos(photo("a"), photo("b"), photo("c"))
	d.AddPhotos(photo("d"), photo("e"), photo("f"), photo("g"))

	photos := d.Photos()
	require.Len(t, photos, 5)
	// 已有顺序在前，新增按顺序截断
	assert.Equal(t, "a", photos[0].Filename)
	assert.Equal(t, "e", photos[4].Filename)
}

func TestReorderPhotos(t *testing.T) {
	d := NewDraft("Priya")
	d.AddPhotos(photo("a"), photo("b"), photo("c"))

	d.ReorderPhotos(0, 2)

	photos := d.Photos()
	assert.Equal(t, "b", photos[0].Filename)
	assert.Equal(t, "c", photos[1].Filename)
	assert.Equal(t, "a", photos[2].Filename)
}

func TestReorderPhotosInvalidTargetIsNoop(t *testing.T) {
	d := NewDraft("Priya")
	d.AddPhotos(photo("a"), photo("b"))

	d.ReorderPhotos(0, 5)
	d.ReorderPhotos(-1, 1)
	d.ReorderPhotos(1, 1)

	photos := d.Photos()
	assert.Equal(t, "a", photos[0].Filename)
	assert.Equal(t, "b", photos[1].Filename)
}

func TestRemovePhotoShiftsIndices(t *testing.T) {
	d := NewDraft("Priya")
	d.AddPhotos(photo("a"), photo("b"), photo("c"))

	d.RemovePhoto(1)

	photos := d.Photos()
	require.Len(t, photos, 2)
	assert.Equal(t, "a", photos[0].Filename)
	assert.Equal(t, "c", photos[1].Filename)

	d.RemovePhoto(10) // 越界不做任何事
	assert.Len(t, d.Photos(), 2)
}

func TestSetSelfieReplaces(t *testing.T) {
	d := NewDraft("Priya")

	s1 := photo("selfie1.jpg")
	d.SetSelfie(&s1)
	require.NotNil(t, d.Selfie())
	assert.Equal(t, "selfie1.jpg", d.Selfie().Filename)

	s2 := photo("selfie2.jpg")
	d.SetSelfie(&s2)
	assert.Equal(t, "selfie2.jpg", d.Selfie().Filename)

	d.SetSelfie(nil)
	assert.Nil(t, d.Selfie())
}
