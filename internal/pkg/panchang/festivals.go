package panchang

// Static festival table for 2024-2025. Dates beyond this window simply have
// no festival annotation; the table needs a yearly refresh.
var festivals = map[string]Festival{
	"2024-03-25": {Name: "Holi", Significance: "Festival of Colors", Type: "festival"},
	"2024-04-09": {Name: "Ram Navami", Significance: "Birth of Lord Rama", Type: "festival"},
	"2024-04-17": {Name: "Hanuman Jayanti", Significance: "Birth of Lord Hanuman", Type: "festival"},
	"2024-08-19": {Name: "Janmashtami", Significance: "Birth of Lord Krishna", Type: "festival"},
	"2024-09-07": {Name: "Ganesh Chaturthi", Significance: "Birth of Lord Ganesha", Type: "festival"},
	"2024-10-02": {Name: "Gandhi Jayanti", Significance: "National Holiday", Type: "national"},
	"2024-10-12": {Name: "Dussehra", Significance: "Victory of Good over Evil", Type: "festival"},
	"2024-11-01": {Name: "Diwali", Significance: "Festival of Lights", Type: "festival"},
	"2024-11-15": {Name: "Bhai Dooj", Significance: "Brother-Sister Festival", Type: "festival"},

	// Amavasya (new moon) days, 2024
	"2024-01-11": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-02-09": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-03-10": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-04-08": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-05-08": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-06-06": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-07-05": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-08-04": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-09-03": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-12-01": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2024-12-30": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},

	// 2025 festivals
	"2025-03-14": {Name: "Holi", Significance: "Festival of Colors", Type: "festival"},
	"2025-03-30": {Name: "Ram Navami", Significance: "Birth of Lord Rama", Type: "festival"},
	"2025-04-06": {Name: "Hanuman Jayanti", Significance: "Birth of Lord Hanuman", Type: "festival"},
	"2025-08-16": {Name: "Janmashtami", Significance: "Birth of Lord Krishna", Type: "festival"},
	"2025-08-27": {Name: "Ganesh Chaturthi", Significance: "Birth of Lord Ganesha", Type: "festival"},
	"2025-10-02": {Name: "Gandhi Jayanti", Significance: "National Holiday", Type: "national"},
	"2025-10-22": {Name: "Dussehra", Significance: "Victory of Good over Evil", Type: "festival"},
	"2025-11-01": {Name: "Diwali", Significance: "Festival of Lights", Type: "festival"},
	"2025-11-03": {Name: "Bhai Dooj", Significance: "Brother-Sister Festival", Type: "festival"},

	// Amavasya days, 2025
	"2025-01-29": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-02-28": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-03-29": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-04-27": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-05-27": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-06-25": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-07-24": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-08-23": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-09-21": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-10-21": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-11-20": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
	"2025-12-19": {Name: "Amavasya", Significance: "New Moon Day", Type: "lunar"},
}

type shraddhaPeriod struct {
	start, end string
}

// Pitru Paksha windows, approximate.
var shraddhaPeriods = map[int]shraddhaPeriod{
	2024: {start: "2024-09-17", end: "2024-10-02"},
	2025: {start: "2025-09-06", end: "2025-09-21"},
}
