package dashboard

import (
	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/utils"
)

// wideTextThreshold 超过该长度的文本段占整行
const wideTextThreshold = 80

// Section 卡片里的一个文本段
type Section struct {
	Label string
	Text  string
	Wide  bool
}

// Card 单条提交的展示布局
type Card struct {
	Name      string
	Location  string
	ShortDesc string
	Mood      string
	Color     string
	Date      string
	Sections  []Section
	PhotoURLs []string
	SelfieURL string
}

// BuildCard 生成一条提交的卡片布局，空文本段跳过
func BuildCard(e dto.DashboardEntry) Card {
	card := Card{
		Name:      e.Name,
		Location:  e.Location,
		ShortDesc: e.ShortDesc,
		Mood:      e.Mood,
		Color:     e.Color,
		Date:      utils.DatePart(e.Date),
		PhotoURLs: e.PhotoURLs,
	}
	if card.Name == "" {
		card.Name = UnknownName
	}
	if e.SelfieURL != nil {
		card.SelfieURL = *e.SelfieURL
	}

	sections := []struct {
		label string
		text  string
	}{
		{"Memory", e.Memory},
		{"Story", e.Story},
		{"Recommendation", e.Recommendation},
		{"Message", e.Message},
	}

	for _, s := range sections {
		if s.text == "" {
			continue
		}
		card.Sections = append(card.Sections, Section{
			Label: s.label,
			Text:  s.text,
			Wide:  len(s.text) > wideTextThreshold,
		})
	}

	return card
}
