package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgidpl/startup-app/internal/client/models"
)

func TestFilterIdeas(t *testing.T) {
	ideas := []models.Idea{
		{ID: "1", Content: "Паркування біля офісу", Author: "Олена"},
		{ID: "2", Content: "Нові ноутбуки", Author: "Ivan"},
		{ID: "3", Content: "Кімната відпочинку"},
	}

	t.Run("empty query returns all", func(t *testing.T) {
		assert.Len(t, FilterIdeas(ideas, ""), 3)
	})

	t.Run("matches content case-insensitively", func(t *testing.T) {
		got := FilterIdeas(ideas, "ноутбуки")
		require.Len(t, got, 1)
		assert.Equal(t, models.ID("2"), got[0].ID)
	})

	t.Run("matches author", func(t *testing.T) {
		got := FilterIdeas(ideas, "ivan")
		require.Len(t, got, 1)
		assert.Equal(t, models.ID("2"), got[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterIdeas(ideas, "zzz"))
	})
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected []string
	}{
		{
			name:     "few pages list everything",
			current:  3,
			total:    7,
			expected: []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name:     "middle of a long strip",
			current:  5,
			total:    10,
			expected: []string{"1", "...", "4", "5", "6", "...", "10"},
		},
		{
			name:     "near the start",
			current:  2,
			total:    10,
			expected: []string{"1", "2", "3", "...", "10"},
		},
		{
			name:     "near the end",
			current:  9,
			total:    10,
			expected: []string{"1", "...", "8", "9", "10"},
		},
		{
			name:     "single page",
			current:  1,
			total:    1,
			expected: []string{"1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, PageNumbers(tc.current, tc.total))
		})
	}
}
