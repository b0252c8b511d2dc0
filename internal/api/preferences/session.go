package preferences

import (
	"sync"

	"github.com/google/uuid"

	"github.com/explorai/explorai-api/internal/types"
)

// maxConversationHistory bounds the per-session chat transcript. Old turns
// fall off the front; prompts only ever use a small recent window anyway.
const maxConversationHistory = 50

// Listener is notified synchronously after every preference update, with a
// copy of the fully-updated record.
type Listener func(types.UserPreferences)

// Session owns one user's in-memory state: the current preference record and
// the conversation context of the chat panel. Updates are atomic with respect
// to reads, so a scoring pass never observes a half-applied change.
type Session struct {
	ID uuid.UUID

	mu        sync.RWMutex
	prefs     types.UserPreferences
	listeners []Listener

	// Conversation context of the chat feature. Owned here, per session,
	// never as package-level state.
	history    []types.ChatMessage
	lastIntent types.Intent
}

// NewSession creates a session with default preferences.
func NewSession() *Session {
	return &Session{
		ID:    uuid.New(),
		prefs: types.DefaultPreferences(),
	}
}

// Preferences returns a copy of the current preference record.
func (s *Session) Preferences() types.UserPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPreferences(s.prefs)
}

// Subscribe registers a listener called synchronously after each update.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Update applies a mutation to the preference record under the write lock and
// notifies listeners with the updated copy. Every update is total: mutations
// are plain set/replace operations on validated values.
func (s *Session) Update(mutate func(*types.UserPreferences)) types.UserPreferences {
	s.mu.Lock()
	mutate(&s.prefs)
	updated := copyPreferences(s.prefs)
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(updated)
	}
	return updated
}

// ToggleInterest adds the interest if absent, removes it if present.
func (s *Session) ToggleInterest(interest string) types.UserPreferences {
	return s.Update(func(p *types.UserPreferences) {
		p.Interests = toggle(p.Interests, interest)
	})
}

// ToggleActivity adds the activity if absent, removes it if present.
func (s *Session) ToggleActivity(activity string) types.UserPreferences {
	return s.Update(func(p *types.UserPreferences) {
		p.PreferredActivities = toggle(p.PreferredActivities, activity)
	})
}

// SetTravelStyle replaces the travel style.
func (s *Session) SetTravelStyle(style types.TravelStyle) types.UserPreferences {
	return s.Update(func(p *types.UserPreferences) {
		p.TravelStyle = style
	})
}

// SetBudget replaces the coarse budget label and optional numeric value.
func (s *Session) SetBudget(budget string, value float64) types.UserPreferences {
	return s.Update(func(p *types.UserPreferences) {
		p.Budget = budget
		p.BudgetValue = value
	})
}

// SetDuration replaces the preferred trip duration.
func (s *Session) SetDuration(duration string) types.UserPreferences {
	return s.Update(func(p *types.UserPreferences) {
		p.Duration = duration
	})
}

// SetSeason replaces the preferred season.
func (s *Session) SetSeason(season types.Season) types.UserPreferences {
	return s.Update(func(p *types.UserPreferences) {
		p.Season = season
	})
}

// Replace swaps the whole preference record.
func (s *Session) Replace(prefs types.UserPreferences) types.UserPreferences {
	return s.Update(func(p *types.UserPreferences) {
		*p = copyPreferences(prefs)
	})
}

// AppendMessage records a conversation turn, trimming the oldest turns once
// the history cap is reached.
func (s *Session) AppendMessage(msg types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, msg)
	if len(s.history) > maxConversationHistory {
		s.history = s.history[len(s.history)-maxConversationHistory:]
	}
}

// RecentMessages returns a copy of the last n conversation turns.
func (s *Session) RecentMessages(n int) []types.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 || n > len(s.history) {
		n = len(s.history)
	}
	out := make([]types.ChatMessage, n)
	copy(out, s.history[len(s.history)-n:])
	return out
}

// LastIntent returns the intent of the last reply shown, used to avoid
// repeating the same reply template back to back.
func (s *Session) LastIntent() types.Intent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastIntent
}

// SetLastIntent records the intent the chat feature just answered.
func (s *Session) SetLastIntent(intent types.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastIntent = intent
}

func toggle(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

func copyPreferences(p types.UserPreferences) types.UserPreferences {
	out := p
	out.Interests = append([]string(nil), p.Interests...)
	out.PreferredActivities = append([]string(nil), p.PreferredActivities...)
	return out
}
