package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

func TestFromDataset(t *testing.T) {
	ds := &domain.Dataset{
		Overview: domain.NewAreaSet(domain.Area{
			Code:        domain.UnitedKingdomCode,
			DailyDeaths: []domain.Sample{{Date: "2020-04-02", Value: 2}, {Date: "2020-04-01", Value: 1}},
		}),
		Countries: domain.NewAreaSet(domain.Area{
			Code:                domain.EnglandCode,
			DailyConfirmedCases: []domain.Sample{{Date: "2020-04-01", Value: 10}},
		}),
	}

	got := FromDataset(ds)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"total-cases", "daily-cases", "total-deaths", "daily-deaths"},
		[]string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	assert.Equal(t, []int64{1, 2}, got[3].Values())
	assert.Equal(t, Bar, got[3].Kind)
	assert.Equal(t, int64(10), got[1].Max())
	assert.Empty(t, got[0].Samples)
}

func TestFromEmptyDataset(t *testing.T) {
	for _, c := range FromDataset(nil) {
		assert.Empty(t, c.Samples)
		assert.Zero(t, c.Max())
	}
}

func TestDownsample(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, Downsample([]int64{1, 2, 3}, 5))
	assert.Equal(t, []int64{2, 9, 6}, Downsample([]int64{1, 2, 9, 4, 5, 6}, 3))
	assert.Nil(t, Downsample([]int64{1}, 0))
	assert.Len(t, Downsample(make([]int64, 100), 7), 7)
}
