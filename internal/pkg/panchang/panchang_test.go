package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVikramSamvat(t *testing.T) {
	assert.Equal(t, 2081, VikramSamvat(date(2025, time.February, 10)))
	assert.Equal(t, 2082, VikramSamvat(date(2025, time.April, 1)))
	assert.Equal(t, 2082, VikramSamvat(date(2025, time.December, 31)))
}

func TestPakshaTithi(t *testing.T) {
	paksha, tithi := PakshaTithi(date(2025, time.June, 1))
	assert.Equal(t, "Shukla Paksha", paksha)
	assert.Equal(t, "Pratipada", tithi)

	paksha, tithi = PakshaTithi(date(2025, time.June, 15))
	assert.Equal(t, "Shukla Paksha", paksha)
	assert.Equal(t, "Purnima", tithi)

	paksha, tithi = PakshaTithi(date(2025, time.June, 16))
	assert.Equal(t, "Krishna Paksha", paksha)
	assert.Equal(t, "Pratipada", tithi)

	paksha, tithi = PakshaTithi(date(2025, time.June, 30))
	assert.Equal(t, "Krishna Paksha", paksha)
	assert.Equal(t, "Purnima", tithi)
}

func TestFestivalFor(t *testing.T) {
	f := FestivalFor(date(2025, time.March, 14))
	if assert.NotNil(t, f) {
		assert.Equal(t, "Holi", f.Name)
	}

	assert.Nil(t, FestivalFor(date(2025, time.March, 15)))
	assert.Nil(t, FestivalFor(date(2030, time.January, 1)), "dates outside the table have no festival")
}

func TestIsShraddha(t *testing.T) {
	assert.True(t, IsShraddha(date(2025, time.September, 10)))
	assert.True(t, IsShraddha(date(2025, time.September, 6)))
	assert.True(t, IsShraddha(date(2025, time.September, 21)))
	assert.False(t, IsShraddha(date(2025, time.September, 22)))
	assert.False(t, IsShraddha(date(2030, time.September, 10)))
}

func TestGetSummary(t *testing.T) {
	s := GetSummary(date(2025, time.November, 1))
	assert.Equal(t, "2025-11-01", s.GregorianDate)
	assert.Equal(t, "Kartik", s.HinduMonth)
	assert.Equal(t, 2082, s.VikramSamvat)
	if assert.NotNil(t, s.Festival) {
		assert.Equal(t, "Diwali", s.Festival.Name)
	}
	assert.Contains(t, s.FormattedHinduDate, "Vikram Samvat 2082")
}

func TestMonthFestivals(t *testing.T) {
	fs := MonthFestivals(2025, 10)
	assert.Len(t, fs, 3) // Gandhi Jayanti, Amavasya, Dussehra
	for _, f := range fs {
		assert.Equal(t, time.October, time.Month(10))
		assert.NotEmpty(t, f.Festival.Name)
	}

	assert.Empty(t, MonthFestivals(2030, 1))
}

func TestSuggestedHolidays(t *testing.T) {
	suggestions := SuggestedHolidays(2025, 3)
	assert.Len(t, suggestions, 3) // Holi, Amavasya, Ram Navami
	for _, s := range suggestions {
		assert.True(t, s.IsSuggested)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Date)
	}
}
