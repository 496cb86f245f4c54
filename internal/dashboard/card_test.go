package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/internal/model/dto"
)

func TestBuildCardSectionsSkipEmpty(t *testing.T) {
	card := BuildCard(dto.DashboardEntry{
		Name:   "Priya",
		Memory: "short one",
		Story:  strings.Repeat("long ", 20),
	})

	require.Len(t, card.Sections, 2)
	assert.Equal(t, "Memory", card.Sections[0].Label)
	assert.False(t, card.Sections[0].Wide)
	assert.Equal(t, "Story", card.Sections[1].Label)
	assert.True(t, card.Sections[1].Wide)
}

func TestBuildCardDatePart(t *testing.T) {
	card := BuildCard(dto.DashboardEntry{
		Name: "Priya",
		Date: "2025-07-14T10:30:00.000Z",
	})

	assert.Equal(t, "2025-07-14", card.Date)
}

func TestBuildCardUnknownName(t *testing.T) {
	card := BuildCard(dto.DashboardEntry{})
	assert.Equal(t, UnknownName, card.Name)
}

func TestBuildCardSelfie(t *testing.T) {
	selfie := "https://cdn.test/selfies/s.jpg"
	card := BuildCard(dto.DashboardEntry{Name: "Priya", SelfieURL: &selfie})
	assert.Equal(t, selfie, card.SelfieURL)
}
