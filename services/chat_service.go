package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelrev/config"
	"hotelrev/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// normalizeInput strips accents and case so Vietnamese city names match
// however the user types them.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// IntentHandler produces the assistant reply for a matched intent. The
// raw query is passed so handlers can pull arguments out of it.
type IntentHandler func(ctx context.Context, query string) (string, error)

// ChatIntent is one rule in the assistant's table. Keywords are matched
// against the normalized query, exact-substring first and fuzzy second.
type ChatIntent struct {
	Name     string
	Keywords []string
	Handle   IntentHandler
}

// ChatAssistant answers questions from database contents through a
// keyword rule table. New intents can be registered at startup.
type ChatAssistant struct {
	intents []ChatIntent
}

// similarity below this is treated as no match
const intentMatchThreshold = 0.72

// NewChatAssistant builds an assistant with the default rule table.
func NewChatAssistant() *ChatAssistant {
	a := &ChatAssistant{}
	a.RegisterIntent(ChatIntent{
		Name:     "hotel_count",
		Keywords: []string{"how many hotels", "hotel count", "number of hotels"},
		Handle:   answerHotelCount,
	})
	a.RegisterIntent(ChatIntent{
		Name:     "top_hotels",
		Keywords: []string{"top hotels", "best hotels", "top performers", "highest revenue"},
		Handle:   answerTopHotels,
	})
	a.RegisterIntent(ChatIntent{
		Name:     "upcoming_events",
		Keywords: []string{"upcoming events", "next events", "events coming"},
		Handle:   answerUpcomingEvents,
	})
	a.RegisterIntent(ChatIntent{
		Name:     "month_revenue",
		Keywords: []string{"revenue this month", "monthly revenue", "total revenue"},
		Handle:   answerMonthRevenue,
	})
	a.RegisterIntent(ChatIntent{
		Name:     "open_tasks",
		Keywords: []string{"open tasks", "pending tasks", "my tasks"},
		Handle:   answerOpenTasks,
	})
	return a
}

// RegisterIntent appends a rule. Earlier rules win on equal match
// quality.
func (a *ChatAssistant) RegisterIntent(intent ChatIntent) {
	a.intents = append(a.intents, intent)
}

// matchIntent finds the rule whose keywords best fit the query. Exact
// substring matches win immediately; otherwise the fuzzy score decides.
func (a *ChatAssistant) matchIntent(query string) *ChatIntent {
	normalized := normalizeInput(query)

	for i := range a.intents {
		for _, kw := range a.intents[i].Keywords {
			if strings.Contains(normalized, normalizeInput(kw)) {
				return &a.intents[i]
			}
		}
	}

	var best *ChatIntent
	bestScore := 0.0
	for i := range a.intents {
		matcher := createMatcher(a.intents[i].Keywords)
		closest := matcher.Closest(normalized)
		if closest == "" {
			continue
		}
		score := calculateSimilarity(normalized, normalizeInput(closest))
		if score > bestScore {
			bestScore = score
			best = &a.intents[i]
		}
	}

	if bestScore >= intentMatchThreshold {
		return best
	}
	return nil
}

// Answer resolves one user message, persisting both sides of the
// exchange to the chat history.
func (a *ChatAssistant) Answer(ctx context.Context, userID uint, sessionID, input string) (string, error) {
	if err := SaveChatHistory(userID, sessionID, "user", input); err != nil {
		return "", err
	}

	reply := a.resolve(ctx, input)

	if err := SaveChatHistory(userID, sessionID, "assistant", reply); err != nil {
		return "", err
	}
	return reply, nil
}

func (a *ChatAssistant) resolve(ctx context.Context, input string) string {
	intent := a.matchIntent(input)
	if intent == nil {
		return "I can answer questions about hotels, revenue, upcoming events and tasks. " +
			"Try asking \"how many hotels\" or \"top hotels this month\"."
	}

	reply, err := intent.Handle(ctx, input)
	if err != nil {
		return "Something went wrong while looking that up. Please try again."
	}
	return reply
}

func SaveChatHistory(userID uint, sessionID, sender, content string) error {
	chat := models.ChatHistory{
		UserID:    userID,
		SessionID: sessionID,
		Sender:    sender,
		Content:   content,
	}
	return config.DB.Create(&chat).Error
}

// GetChatHistory returns the most recent messages of a user or session,
// oldest first.
func GetChatHistory(userID uint, sessionID string, limit int) ([]models.ChatHistory, error) {
	if limit <= 0 {
		limit = 50
	}

	query := config.DB.Model(&models.ChatHistory{})
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	} else {
		query = query.Where("session_id = ?", sessionID)
	}

	var history []models.ChatHistory
	err := query.Order("created_at DESC").Limit(limit).Find(&history).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// matchCityInQuery resolves a known city name mentioned in the query,
// tolerating accents and typos.
func matchCityInQuery(query string, cities []string) string {
	normalized := normalizeInput(query)

	for _, city := range cities {
		if strings.Contains(normalized, normalizeInput(city)) {
			return city
		}
	}

	if len(cities) == 0 {
		return ""
	}
	normalizedCities := make([]string, len(cities))
	for i, city := range cities {
		normalizedCities[i] = normalizeInput(city)
	}
	closest := createMatcher(normalizedCities).Closest(normalized)
	for i, nc := range normalizedCities {
		if nc == closest && calculateSimilarity(normalized, nc) >= intentMatchThreshold {
			return cities[i]
		}
	}
	return ""
}

func knownCities() []string {
	var cities []string
	config.DB.Model(&models.Hotel{}).Distinct("city").Where("city <> ''").Pluck("city", &cities)
	return cities
}

func answerHotelCount(ctx context.Context, query string) (string, error) {
	db := config.DB.Model(&models.Hotel{}).Where("status = ?", "active")

	city := matchCityInQuery(query, knownCities())
	if city != "" {
		db = db.Where("city = ?", city)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return "", err
	}

	if city != "" {
		return fmt.Sprintf("There are %d active hotels in %s.", count, city), nil
	}
	return fmt.Sprintf("There are %d active hotels in the portfolio.", count), nil
}

func answerTopHotels(ctx context.Context, query string) (string, error) {
	first, last := MonthWindow(time.Now().Year(), time.Now().Month())
	ranked, err := RankHotelsByMetric(first, last, RankByRevenue, TieBreakHotelCode)
	if err != nil {
		return "", err
	}

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) == 0 {
		return "No revenue data has been recorded this month yet.", nil
	}

	var b strings.Builder
	b.WriteString("Top hotels by revenue this month:")
	for _, h := range top {
		fmt.Fprintf(&b, " %d. %s (%.2f)", h.Rank, h.HotelName, h.TotalRevenue)
	}
	return b.String(), nil
}

func answerUpcomingEvents(ctx context.Context, query string) (string, error) {
	db := config.DB.Model(&models.Event{}).
		Where("is_active = ? AND start_date >= ?", true, truncateDay(time.Now()))

	city := matchCityInQuery(query, knownCities())
	if city != "" {
		db = db.Where("city = ?", city)
	}

	var events []models.Event
	if err := db.Order("start_date").Limit(5).Find(&events).Error; err != nil {
		return "", err
	}

	if len(events) == 0 {
		return "No upcoming events found.", nil
	}

	var b strings.Builder
	b.WriteString("Upcoming events:")
	for _, ev := range events {
		fmt.Fprintf(&b, " %s (%s, starts %s);", ev.Name, ev.City, ev.StartDate.Format("2006-01-02"))
	}
	return strings.TrimSuffix(b.String(), ";"), nil
}

func answerMonthRevenue(ctx context.Context, query string) (string, error) {
	stats, err := ComputeDashboardStats(time.Now())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Total recorded revenue this month is %.2f across %d room nights.",
		stats.MonthRevenue, stats.MonthRoomNights), nil
}

func answerOpenTasks(ctx context.Context, query string) (string, error) {
	var count int64
	err := config.DB.Model(&models.Task{}).
		Where("status IN ?", []string{"pending", "in-progress"}).
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("There are %d open tasks.", count), nil
}
