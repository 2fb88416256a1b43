// Package panchang provides a cosmetic Hindu calendar (Panchang) lookup:
// a fixed festival table plus rough tithi/paksha arithmetic. It is display
// enrichment only and carries no correctness obligation for payroll.
package panchang

import (
	"strconv"
	"time"
)

// Hindu months (Purnimanta system)
var hinduMonths = map[time.Month]string{
	time.January:   "Pausha",
	time.February:  "Magha",
	time.March:     "Phalguna",
	time.April:     "Chaitra",
	time.May:       "Vaishakha",
	time.June:      "Jyeshtha",
	time.July:      "Ashadha",
	time.August:    "Shravana",
	time.September: "Bhadrapada",
	time.October:   "Ashwin",
	time.November:  "Kartik",
	time.December:  "Margashirsha",
}

// Tithis (lunar days)
var tithis = [...]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

// Festival is one entry of the static festival table.
type Festival struct {
	Name         string `json:"name"`
	Significance string `json:"significance"`
	Type         string `json:"type"`
}

// Summary is the full Panchang readout for one Gregorian date.
type Summary struct {
	GregorianDate      string    `json:"gregorian_date"`
	HinduMonth         string    `json:"hindu_month"`
	VikramSamvat       int       `json:"vikram_samvat"`
	Paksha             string    `json:"paksha"`
	Tithi              string    `json:"tithi"`
	Festival           *Festival `json:"festival"`
	IsShraddha         bool      `json:"is_shraddha"`
	FormattedHinduDate string    `json:"formatted_hindu_date"`
}

// MonthFestival pairs a festival with its date within a month listing.
type MonthFestival struct {
	Date     string   `json:"date"`
	Day      int      `json:"day"`
	Festival Festival `json:"festival"`
}

// SuggestedHoliday is a festival shaped for the holiday-admin screen.
type SuggestedHoliday struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsSuggested bool   `json:"is_suggested"`
}

const dateLayout = "2006-01-02"

// VikramSamvat returns the Vikram Samvat year for a Gregorian date.
// The Samvat year turns over around April: Jan-Mar is +56, Apr-Dec is +57.
func VikramSamvat(date time.Time) int {
	if date.Month() <= time.March {
		return date.Year() + 56
	}
	return date.Year() + 57
}

// HinduMonth returns the approximate Hindu month for a Gregorian date.
// The real mapping depends on lunar position; this is a fixed table.
func HinduMonth(date time.Time) string {
	return hinduMonths[date.Month()]
}

// PakshaTithi approximates the lunar fortnight and day from the Gregorian
// day of month: days 1-15 map onto Shukla Paksha, 16-31 onto Krishna Paksha.
func PakshaTithi(date time.Time) (paksha, tithi string) {
	day := date.Day()
	if day <= 15 {
		return "Shukla Paksha", tithis[(day-1)%15]
	}
	return "Krishna Paksha", tithis[(day-16)%15]
}

// FestivalFor returns the festival on a date, or nil.
func FestivalFor(date time.Time) *Festival {
	f, ok := festivals[date.Format(dateLayout)]
	if !ok {
		return nil
	}
	return &f
}

// IsShraddha reports whether the date falls in the Pitru Paksha window.
func IsShraddha(date time.Time) bool {
	period, ok := shraddhaPeriods[date.Year()]
	if !ok {
		return false
	}
	d := date.Format(dateLayout)
	return d >= period.start && d <= period.end
}

// GetSummary assembles the complete Panchang summary for a date.
func GetSummary(date time.Time) Summary {
	hinduMonth := HinduMonth(date)
	samvat := VikramSamvat(date)
	paksha, tithi := PakshaTithi(date)

	return Summary{
		GregorianDate:      date.Format(dateLayout),
		HinduMonth:         hinduMonth,
		VikramSamvat:       samvat,
		Paksha:             paksha,
		Tithi:              tithi,
		Festival:           FestivalFor(date),
		IsShraddha:         IsShraddha(date),
		FormattedHinduDate: hinduMonth + ", " + paksha + ", " + tithi + ", Vikram Samvat " + strconv.Itoa(samvat),
	}
}

// MonthFestivals lists all festivals falling in a calendar month.
func MonthFestivals(year, month int) []MonthFestival {
	result := []MonthFestival{}
	days := daysInMonth(year, month)
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if f := FestivalFor(date); f != nil {
			result = append(result, MonthFestival{
				Date:     date.Format(dateLayout),
				Day:      day,
				Festival: *f,
			})
		}
	}
	return result
}

// SuggestedHolidays shapes the month's festivals as holiday suggestions.
func SuggestedHolidays(year, month int) []SuggestedHoliday {
	suggestions := []SuggestedHoliday{}
	for _, mf := range MonthFestivals(year, month) {
		suggestions = append(suggestions, SuggestedHoliday{
			Date:        mf.Date,
			Name:        mf.Festival.Name,
			Type:        mf.Festival.Type,
			Description: mf.Festival.Significance,
			IsSuggested: true,
		})
	}
	return suggestions
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
