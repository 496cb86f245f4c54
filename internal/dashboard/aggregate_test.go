package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/internal/model"
)

func sub(name, memory string, photos ...string) model.Submission {
	return model.Submission{
		Name:      name,
		Memory:    memory,
		PhotoURLs: model.PhotoURLs(photos),
	}
}

func TestAggregateFeedOrder(t *testing.T) {
	selfie := "https://cdn.test/selfies/s1.jpg"
	subs := []model.Submission{
		sub("Priya", "m", "p1", "p2"),
		{Name: "Rahul", PhotoURLs: model.PhotoURLs{"p3"}, SelfieURL: &selfie},
	}

	data := Aggregate(subs)

	// 提交顺序优先，提交内按照片顺序，自拍不进照片流
	assert.Equal(t, []string{"p1", "p2", "p3"}, data.Feed)
}

func TestAggregateFeedCountEqualsPhotoURLSum(t *testing.T) {
	selfie := "https://cdn.test/selfies/s1.jpg"
	subs := []model.Submission{
		sub("Priya", "m", "p1", "p2"),
		{Name: "Rahul", PhotoURLs: model.PhotoURLs{"p3"}, SelfieURL: &selfie},
		sub("Asha", "m"),
	}

	data := Aggregate(subs)

	total := 0
	for _, s := range subs {
		total += len(s.PhotoURLs)
	}
	assert.Len(t, data.Feed, total)
}

func TestAggregateGroupsByNameWithUnknownSentinel(t *testing.T) {
	subs := []model.Submission{
		sub("Priya", "aa"),
		sub("", "b"),
		sub("Priya", "cc"),
	}

	data := Aggregate(subs)

	require.Len(t, data.Groups, 2)

	var names []string
	for _, g := range data.Groups {
		names = append(names, g.Name)
	}
	assert.Contains(t, names, UnknownName)
	assert.Contains(t, names, "Priya")

	for _, g := range data.Groups {
		if g.Name == "Priya" {
			require.Len(t, g.Entries, 2)
		}
	}
}

func TestAggregateGroupsKeepFirstAppearanceOrder(t *testing.T) {
	subs := []model.Submission{
		sub("Verbose", strings.Repeat("x", 500)),
		sub("Terse", "hi"),
		sub("Medium", strings.Repeat("y", 50)),
	}

	data := Aggregate(subs)

	// 分组顺序与内容量无关，按首次出现顺序
	require.Len(t, data.Groups, 3)
	assert.Equal(t, "Verbose", data.Groups[0].Name)
	assert.Equal(t, "Terse", data.Groups[1].Name)
	assert.Equal(t, "Medium", data.Groups[2].Name)
}

func TestAggregateSortsEntriesWithinGroupByContentSizeAscending(t *testing.T) {
	subs := []model.Submission{
		sub("Priya", strings.Repeat("x", 200)),
		sub("Priya", "hi"),
		sub("Priya", strings.Repeat("y", 50)),
	}

	data := Aggregate(subs)

	require.Len(t, data.Groups, 1)
	entries := data.Groups[0].Entries
	require.Len(t, entries, 3)
	// 内容少的排前面
	assert.Equal(t, "hi", entries[0].Memory)
	assert.Equal(t, strings.Repeat("y", 50), entries[1].Memory)
	assert.Equal(t, strings.Repeat("x", 200), entries[2].Memory)
}

func TestAggregateWithinGroupSortIsStableForEqualSizes(t *testing.T) {
	subs := []model.Submission{
		sub("Priya", "aa", "first"),
		sub("Priya", "bb", "second"),
	}

	data := Aggregate(subs)

	require.Len(t, data.Groups, 1)
	entries := data.Groups[0].Entries
	require.Len(t, entries, 2)
	// 同内容量时保持提交顺序
	assert.Equal(t, "aa", entries[0].Memory)
	assert.Equal(t, "bb", entries[1].Memory)
}

func TestAggregateEmpty(t *testing.T) {
	data := Aggregate(nil)

	assert.Empty(t, data.Feed)
	assert.Empty(t, data.Groups)
}

func TestContentSize(t *testing.T) {
	e := EntryOf(model.Submission{
		Memory:         "abc",
		Story:          "de",
		Recommendation: "f",
		Message:        "gh",
		ShortDesc:      "ignored",
	})

	assert.Equal(t, 8, ContentSize(e))
}
