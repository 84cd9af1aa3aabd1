package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubIntent(name string, keywords ...string) ChatIntent {
	return ChatIntent{
		Name:     name,
		Keywords: keywords,
		Handle: func(ctx context.Context, query string) (string, error) {
			return name, nil
		},
	}
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "ha noi", normalizeInput("  Hà Nội "))
	assert.Equal(t, "da nang", normalizeInput("Đà Nẵng"))
	assert.Equal(t, "hotel", normalizeInput("HOTEL"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("hanoi", "hanoi"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.InDelta(t, 0.8, calculateSimilarity("hanoi", "hano"), 0.01)
	assert.Less(t, calculateSimilarity("hanoi", "saigon"), 0.5)
}

func TestMatchIntentExactKeyword(t *testing.T) {
	a := &ChatAssistant{}
	a.RegisterIntent(stubIntent("hotel_count", "how many hotels"))
	a.RegisterIntent(stubIntent("top_hotels", "top hotels"))

	intent := a.matchIntent("So, how many hotels do we have?")
	require.NotNil(t, intent)
	assert.Equal(t, "hotel_count", intent.Name)

	intent = a.matchIntent("show me the TOP HOTELS please")
	require.NotNil(t, intent)
	assert.Equal(t, "top_hotels", intent.Name)
}

func TestMatchIntentFuzzy(t *testing.T) {
	a := &ChatAssistant{}
	a.RegisterIntent(stubIntent("top_hotels", "top hotels"))

	intent := a.matchIntent("top hotles")
	require.NotNil(t, intent)
	assert.Equal(t, "top_hotels", intent.Name)
}

func TestMatchIntentNoMatch(t *testing.T) {
	a := &ChatAssistant{}
	a.RegisterIntent(stubIntent("hotel_count", "how many hotels"))

	assert.Nil(t, a.matchIntent("what is the weather like"))
}

func TestResolveFallsBackOnUnknownQuery(t *testing.T) {
	a := &ChatAssistant{}
	a.RegisterIntent(stubIntent("hotel_count", "how many hotels"))

	reply := a.resolve(context.Background(), "tell me a joke")
	assert.Contains(t, reply, "I can answer questions")
}

func TestResolveCallsHandler(t *testing.T) {
	a := &ChatAssistant{}
	a.RegisterIntent(stubIntent("open_tasks", "open tasks"))

	reply := a.resolve(context.Background(), "list my open tasks")
	assert.Equal(t, "open_tasks", reply)
}

func TestRegisteredIntentsArePluggable(t *testing.T) {
	a := NewChatAssistant()
	a.RegisterIntent(stubIntent("custom", "magic phrase"))

	intent := a.matchIntent("please run the magic phrase now")
	require.NotNil(t, intent)
	assert.Equal(t, "custom", intent.Name)
}

func TestMatchCityInQuery(t *testing.T) {
	cities := []string{"Hanoi", "Da Nang", "Ho Chi Minh City"}

	assert.Equal(t, "Hanoi", matchCityInQuery("how many hotels in hanoi", cities))
	assert.Equal(t, "Da Nang", matchCityInQuery("events in Đà Nẵng next week", cities))
	assert.Equal(t, "", matchCityInQuery("how many hotels overall", cities))
	assert.Equal(t, "", matchCityInQuery("anything", nil))
}
