package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"
)

// EventSearchParams is a discovery query for external events around a
// city within a date range.
type EventSearchParams struct {
	Location   string
	EventTypes []string
	StartDate  time.Time
	EndDate    time.Time
}

// ExternalEvent is one discovered event candidate. Candidates are not
// persisted; the caller promotes the ones worth tracking into Events.
type ExternalEvent struct {
	ID          string    `json:"id"`
	EventName   string    `json:"eventName"`
	EventType   string    `json:"eventType"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	EventTime   string    `json:"eventTime"`
	EndTime     string    `json:"endTime"`
	VenueName   string    `json:"venueName"`
	City        string    `json:"city"`
	Source      string    `json:"source"`
	SourceURL   string    `json:"sourceUrl"`
	PriceRange  string    `json:"priceRange"`
	IsFree      bool      `json:"isFree"`
}

type eventTemplate struct {
	name        string
	venue       string
	description string
	startTime   string
	hours       int
	price       string
}

var eventCategoryKeywords = map[string][]string{
	"sports":    {"Sports", "Football", "Basketball", "Tennis", "Soccer", "Baseball"},
	"concerts":  {"Concerts", "Music", "Festivals", "Live Music"},
	"fairs":     {"Fairs", "Expos", "Trade Shows", "Markets"},
	"culture":   {"Art", "Culture", "Museums", "Theater", "Dance"},
	"community": {"Community", "Local Events", "Meetups", "Workshops"},
}

// EventFinder generates event candidates for a city and window. Output
// is deterministic for the same query so repeated searches agree.
type EventFinder struct{}

func NewEventFinder() *EventFinder {
	return &EventFinder{}
}

// SearchEvents produces candidates for every requested type. An empty
// type list searches all of them.
func (s *EventFinder) SearchEvents(params EventSearchParams) []ExternalEvent {
	types := params.EventTypes
	if len(types) == 0 {
		types = []string{"sports", "concerts", "fairs", "culture", "community", "business"}
	}

	city := cityFromLocation(params.Location)
	var found []ExternalEvent

	for _, eventType := range types {
		switch strings.ToLower(eventType) {
		case "sports":
			found = append(found, s.generate(city, "sports", sportsTemplates(city), params)...)
		case "concerts", "music":
			found = append(found, s.generate(city, "concerts", musicTemplates(city), params)...)
		case "fairs", "business":
			found = append(found, s.generate(city, "business", businessTemplates(city), params)...)
		case "culture", "art":
			found = append(found, s.generate(city, "culture", cultureTemplates(city), params)...)
		case "community":
			found = append(found, s.generate(city, "community", communityTemplates(city), params)...)
		default:
			found = append(found, s.mixed(city, params)...)
		}
	}
	return found
}

// mixed takes the first candidate of every category.
func (s *EventFinder) mixed(city string, params EventSearchParams) []ExternalEvent {
	var out []ExternalEvent
	for _, set := range []struct {
		category  string
		templates []eventTemplate
	}{
		{"sports", sportsTemplates(city)},
		{"concerts", musicTemplates(city)},
		{"business", businessTemplates(city)},
		{"culture", cultureTemplates(city)},
		{"community", communityTemplates(city)},
	} {
		events := s.generate(city, set.category, set.templates, params)
		if len(events) > 0 {
			out = append(out, events[0])
		}
	}
	return out
}

func (s *EventFinder) generate(city, category string, templates []eventTemplate, params EventSearchParams) []ExternalEvent {
	windowDays := EventDuration(params.StartDate, params.EndDate)
	if windowDays < 1 {
		return nil
	}

	// the date spread is seeded from the query so identical searches
	// return identical candidates
	rng := rand.New(rand.NewSource(searchSeed(city, category, params.StartDate)))

	var events []ExternalEvent
	for i, tpl := range templates {
		offset := rng.Intn(windowDays)
		date := truncateDay(params.StartDate).AddDate(0, 0, offset)
		if date.After(truncateDay(params.EndDate)) {
			continue
		}

		events = append(events, ExternalEvent{
			ID:          fmt.Sprintf("%s-%s-%d", category, strings.ToLower(city), i),
			EventName:   tpl.name,
			EventType:   category,
			Description: tpl.description,
			EventDate:   date,
			EventTime:   tpl.startTime,
			EndTime:     addHours(tpl.startTime, tpl.hours),
			VenueName:   tpl.venue,
			City:        city,
			Source:      sourceName(category),
			SourceURL:   fmt.Sprintf("https://%sevents.example.com/%s", category, strings.ToLower(city)),
			PriceRange:  tpl.price,
			IsFree:      strings.Contains(tpl.price, "Free"),
		})
	}
	return events
}

func cityFromLocation(location string) string {
	return strings.TrimSpace(strings.Split(location, ",")[0])
}

func searchSeed(city, category string, start time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(city)))
	h.Write([]byte(category))
	h.Write([]byte(start.Format("2006-01-02")))
	return int64(h.Sum64())
}

func sourceName(category string) string {
	switch category {
	case "sports":
		return "Sports Events Network"
	case "concerts":
		return "Music Events Hub"
	case "business":
		return "Business Events Network"
	case "culture":
		return "Cultural Events Hub"
	default:
		return "Community Events Board"
	}
}

func addHours(timeStr string, hours int) string {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return timeStr
	}
	return t.Add(time.Duration(hours) * time.Hour).Format("15:04")
}

// CategorizeEventTitle maps a free-form title to a category label.
func CategorizeEventTitle(title string) string {
	titleLower := strings.ToLower(title)

	for _, keywords := range eventCategoryKeywords {
		for _, keyword := range keywords {
			if strings.Contains(titleLower, strings.ToLower(keyword)) {
				return keywords[0]
			}
		}
	}

	switch {
	case strings.Contains(titleLower, "conference"), strings.Contains(titleLower, "summit"):
		return "Conference"
	case strings.Contains(titleLower, "festival"), strings.Contains(titleLower, "fair"):
		return "Festival"
	case strings.Contains(titleLower, "expo"), strings.Contains(titleLower, "show"):
		return "Trade Show"
	case strings.Contains(titleLower, "concert"), strings.Contains(titleLower, "music"):
		return "Concert"
	case strings.Contains(titleLower, "sport"), strings.Contains(titleLower, "game"):
		return "Sports"
	}
	return "Community"
}

func sportsTemplates(city string) []eventTemplate {
	return []eventTemplate{
		{
			name:        fmt.Sprintf("%s Marathon", city),
			venue:       fmt.Sprintf("%s City Center", city),
			description: fmt.Sprintf("Annual marathon race through the streets of %s, attracting thousands of participants and spectators", city),
			startTime:   "08:00", hours: 6, price: "Free to watch, $85 to participate",
		},
		{
			name:        fmt.Sprintf("%s Tennis Championship", city),
			venue:       fmt.Sprintf("%s Tennis Complex", city),
			description: "Professional tennis tournament featuring international players and multiple courts",
			startTime:   "14:00", hours: 8, price: "$45-$150",
		},
		{
			name:        fmt.Sprintf("%s Football Classic", city),
			venue:       fmt.Sprintf("%s Stadium", city),
			description: "Major football game with live entertainment, food vendors, and family activities",
			startTime:   "17:30", hours: 4, price: "$75-$250",
		},
	}
}

func musicTemplates(city string) []eventTemplate {
	return []eventTemplate{
		{
			name:        fmt.Sprintf("%s Summer Music Festival", city),
			venue:       fmt.Sprintf("%s Concert Hall", city),
			description: "Multi-day music festival featuring local and international artists across various genres",
			startTime:   "19:00", hours: 4, price: "$55-$120",
		},
		{
			name:        fmt.Sprintf("Jazz Night at %s", city),
			venue:       fmt.Sprintf("%s Jazz Club", city),
			description: "Intimate jazz performance featuring renowned musicians in an elegant venue",
			startTime:   "20:30", hours: 3, price: "$35-$75",
		},
		{
			name:        fmt.Sprintf("%s Symphony Orchestra", city),
			venue:       fmt.Sprintf("%s Opera House", city),
			description: "Classical music performance by the city's premier orchestra with guest soloists",
			startTime:   "19:30", hours: 3, price: "$45-$150",
		},
	}
}

func businessTemplates(city string) []eventTemplate {
	return []eventTemplate{
		{
			name:        fmt.Sprintf("%s Business Expo", city),
			venue:       fmt.Sprintf("%s Convention Center", city),
			description: "Large-scale business exhibition featuring industry leaders, networking opportunities, and product showcases",
			startTime:   "09:00", hours: 8, price: "$125-$450",
		},
		{
			name:        fmt.Sprintf("%s Tech Summit", city),
			venue:       fmt.Sprintf("%s Innovation Hub", city),
			description: "Technology conference bringing together startups, investors, and established tech companies",
			startTime:   "08:30", hours: 10, price: "$200-$850",
		},
		{
			name:        fmt.Sprintf("%s Trade Fair", city),
			venue:       fmt.Sprintf("%s Exhibition Hall", city),
			description: "International trade fair connecting buyers and sellers across various industries",
			startTime:   "10:00", hours: 8, price: "$150-$600",
		},
	}
}

func cultureTemplates(city string) []eventTemplate {
	return []eventTemplate{
		{
			name:        fmt.Sprintf("%s Art Gallery Opening", city),
			venue:       fmt.Sprintf("%s Museum of Fine Arts", city),
			description: "Contemporary art exhibition featuring works by emerging and established artists",
			startTime:   "18:00", hours: 4, price: "Free-$25",
		},
		{
			name:        fmt.Sprintf("%s Theater Festival", city),
			venue:       fmt.Sprintf("%s Performing Arts Center", city),
			description: "Multi-day theater festival showcasing local and international productions",
			startTime:   "19:30", hours: 3, price: "$35-$85",
		},
		{
			name:        fmt.Sprintf("%s Cultural Heritage Day", city),
			venue:       fmt.Sprintf("%s Cultural Center", city),
			description: "Celebration of local culture with traditional music, dance, and food",
			startTime:   "12:00", hours: 8, price: "Free",
		},
	}
}

func communityTemplates(city string) []eventTemplate {
	return []eventTemplate{
		{
			name:        fmt.Sprintf("%s Farmers Market", city),
			venue:       fmt.Sprintf("%s Town Square", city),
			description: "Weekly farmers market featuring local produce, crafts, and live entertainment",
			startTime:   "09:00", hours: 6, price: "Free entry",
		},
		{
			name:        fmt.Sprintf("%s Community Festival", city),
			venue:       fmt.Sprintf("%s Community Park", city),
			description: "Annual community celebration with food trucks, live music, and family activities",
			startTime:   "11:00", hours: 8, price: "Free",
		},
		{
			name:        fmt.Sprintf("%s Book Club Meeting", city),
			venue:       fmt.Sprintf("%s Public Library", city),
			description: "Monthly book discussion group open to all community members",
			startTime:   "19:00", hours: 2, price: "Free",
		},
	}
}
