package dashboard

import (
	"sort"

	"MonthlyMasti/internal/model"
	"MonthlyMasti/internal/model/dto"
)

// UnknownName 名字为空的提交归入该分组
const UnknownName = "Unknown"

// ContentSize 一条提交的文字内容量，用于分组排序
func ContentSize(e dto.DashboardEntry) int {
	return len(e.Memory) + len(e.Story) + len(e.Recommendation) + len(e.Message)
}

// EntryOf 数据库模型转看板条目
func EntryOf(sub model.Submission) dto.DashboardEntry {
	return dto.DashboardEntry{
		FormTimestamp:  sub.FormTimestamp,
		Name:           sub.Name,
		Location:       sub.Location,
		ShortDesc:      sub.ShortDesc,
		Mood:           sub.Mood,
		Color:          sub.Color,
		Memory:         sub.Memory,
		Story:          sub.Story,
		Recommendation: sub.Recommendation,
		Message:        sub.Message,
		Date:           sub.Date,
		PhotoURLs:      []string(sub.PhotoURLs),
		SelfieURL:      sub.SelfieURL,
	}
}

// Aggregate 把提交列表聚合成看板数据：
// 顶部照片流只含 photo_urls，按提交顺序平铺；分组按首次出现顺序排，
// 组内条目按内容量从少到多排，同量保持提交顺序
func Aggregate(subs []model.Submission) dto.DashboardData {
	entries := make([]dto.DashboardEntry, 0, len(subs))
	for _, sub := range subs {
		entries = append(entries, EntryOf(sub))
	}

	feed := make([]string, 0)
	for _, e := range entries {
		feed = append(feed, e.PhotoURLs...)
	}

	groupIndex := make(map[string]int)
	groups := make([]dto.DashboardGroup, 0)
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = UnknownName
		}

		idx, ok := groupIndex[name]
		if !ok {
			idx = len(groups)
			groupIndex[name] = idx
			groups = append(groups, dto.DashboardGroup{Name: name})
		}
		groups[idx].Entries = append(groups[idx].Entries, e)
	}

	for i := range groups {
		entries := groups[i].Entries
		sort.SliceStable(entries, func(a, b int) bool {
			return ContentSize(entries[a]) < ContentSize(entries[b])
		})
	}

	return dto.DashboardData{
		Feed:   feed,
		Groups: groups,
	}
}
