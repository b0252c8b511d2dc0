package preferences

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorai/explorai-api/internal/types"
)

func TestNewSession_Defaults(t *testing.T) {
	sess := NewSession()

	prefs := sess.Preferences()
	assert.Equal(t, types.StyleBalanced, prefs.TravelStyle)
	assert.Equal(t, string(types.BudgetModerate), prefs.Budget)
	assert.Equal(t, 5000.0, prefs.BudgetValue)
	assert.Empty(t, prefs.Interests)
	assert.NotEqual(t, NewSession().ID, sess.ID)
}

func TestToggleInterest_AddAndRemove(t *testing.T) {
	sess := NewSession()

	prefs := sess.ToggleInterest("cultura")
	assert.Equal(t, []string{"cultura"}, prefs.Interests)

	prefs = sess.ToggleInterest("praia")
	assert.Equal(t, []string{"cultura", "praia"}, prefs.Interests)

	prefs = sess.ToggleInterest("cultura")
	assert.Equal(t, []string{"praia"}, prefs.Interests)
}

func TestToggleActivity(t *testing.T) {
	sess := NewSession()

	prefs := sess.ToggleActivity("experimentar gastronomia")
	assert.Equal(t, []string{"experimentar gastronomia"}, prefs.PreferredActivities)

	prefs = sess.ToggleActivity("experimentar gastronomia")
	assert.Empty(t, prefs.PreferredActivities)
}

func TestUpdate_NotifiesListenersSynchronously(t *testing.T) {
	sess := NewSession()

	var notified []types.UserPreferences
	sess.Subscribe(func(p types.UserPreferences) {
		notified = append(notified, p)
	})

	sess.SetTravelStyle(types.StyleCultural)
	require.Len(t, notified, 1)
	assert.Equal(t, types.StyleCultural, notified[0].TravelStyle)

	sess.SetBudget(string(types.BudgetLuxury), 20000)
	require.Len(t, notified, 2)
	assert.Equal(t, string(types.BudgetLuxury), notified[1].Budget)
}

func TestListener_ReceivesCopy(t *testing.T) {
	sess := NewSession()

	var got types.UserPreferences
	sess.Subscribe(func(p types.UserPreferences) { got = p })

	sess.ToggleInterest("cultura")
	got.Interests[0] = "mutated"

	assert.Equal(t, []string{"cultura"}, sess.Preferences().Interests)
}

func TestPreferences_ReturnsCopy(t *testing.T) {
	sess := NewSession()
	sess.ToggleInterest("cultura")

	prefs := sess.Preferences()
	prefs.Interests[0] = "mutated"

	assert.Equal(t, []string{"cultura"}, sess.Preferences().Interests)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	sess := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			sess.ToggleInterest(fmt.Sprintf("interest-%d", i%5))
		}(i)
		go func() {
			defer wg.Done()
			_ = sess.Preferences()
		}()
	}
	wg.Wait()
}

func TestAppendMessage_TrimsHistory(t *testing.T) {
	sess := NewSession()

	for i := 0; i < 60; i++ {
		sess.AppendMessage(types.NewChatMessage(types.RoleUser, fmt.Sprintf("msg-%d", i)))
	}

	recent := sess.RecentMessages(100)
	require.Len(t, recent, 50)
	assert.Equal(t, "msg-10", recent[0].Content)
	assert.Equal(t, "msg-59", recent[len(recent)-1].Content)
}

func TestRecentMessages_Window(t *testing.T) {
	sess := NewSession()
	for i := 0; i < 10; i++ {
		sess.AppendMessage(types.NewChatMessage(types.RoleUser, fmt.Sprintf("msg-%d", i)))
	}

	recent := sess.RecentMessages(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "msg-7", recent[0].Content)
	assert.Equal(t, "msg-9", recent[2].Content)
}

func TestLastIntent(t *testing.T) {
	sess := NewSession()
	assert.Equal(t, types.Intent(""), sess.LastIntent())

	sess.SetLastIntent(types.IntentGreeting)
	assert.Equal(t, types.IntentGreeting, sess.LastIntent())
}

func TestReplace(t *testing.T) {
	sess := NewSession()

	updated := sess.Replace(types.UserPreferences{
		Interests:   []string{"vinhos"},
		TravelStyle: types.StyleRelaxed,
		Budget:      string(types.BudgetEconomic),
		BudgetValue: 1500,
	})

	assert.Equal(t, []string{"vinhos"}, updated.Interests)
	assert.Equal(t, types.StyleRelaxed, sess.Preferences().TravelStyle)
}
