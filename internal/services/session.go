package services

import (
	"log"
	"sync"
	"time"

	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/storage"
)

const greeting = "Hi! I'm your AI credit card advisor. I'll ask you a few questions to recommend the best cards for your needs. Let's start - what's your approximate monthly income in rupees?"

// guestUserID tags persisted chat rows until real accounts exist
const guestUserID = "guest"

// ChatMessage is one exchanged message inside a live conversation
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Conversation is the per-session state of the advisor script.
// Messages, Profile and Stage are guarded by mu; the expiry fields are
// guarded by the manager's lock.
type Conversation struct {
	SessionID  string             `json:"session_id"`
	Messages   []ChatMessage      `json:"messages"`
	Profile    models.UserProfile `json:"user_profile"`
	Stage      Stage              `json:"stage"`
	CreatedAt  time.Time          `json:"created_at"`
	LastActive time.Time          `json:"last_active"`
	ExpiresAt  time.Time          `json:"expires_at"`

	mu sync.Mutex
}

// ChatResult is what a processed message yields back to the handler
type ChatResult struct {
	Reply   string
	Profile models.UserProfile
	Stage   Stage
}

// ReplyGenerator produces a free-form reply from the conversation so
// far, falling back to a canned response when generation is unavailable.
type ReplyGenerator interface {
	Generate(messages []ChatMessage, fallback string) string
}

// ConversationManager owns all live conversations, keyed by session ID
type ConversationManager struct {
	store      storage.Store
	generator  ReplyGenerator
	sessions   map[string]*Conversation
	mu         sync.RWMutex
	sessionTTL time.Duration
	stopCh     chan struct{}
}

// NewConversationManager creates a manager with a 30 minute idle TTL
// and starts the background eviction sweep.
func NewConversationManager(store storage.Store, generator ReplyGenerator) *ConversationManager {
	cm := &ConversationManager{
		store:      store,
		generator:  generator,
		sessions:   make(map[string]*Conversation),
		sessionTTL: 30 * time.Minute,
		stopCh:     make(chan struct{}),
	}

	go cm.cleanupExpiredSessions()

	return cm
}

// HandleMessage advances the conversation for sessionID by one user
// message. Messages to the same session are serialized on the session's
// own lock; distinct sessions never wait on each other, even while one
// of them is blocked inside the text generator.
func (cm *ConversationManager) HandleMessage(sessionID, message string) (*ChatResult, error) {
	conv := cm.getOrCreate(sessionID)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	conv.Messages = append(conv.Messages, ChatMessage{Role: "user", Content: message})
	cm.persistMessage(sessionID, message, true)

	reply := Advance(message, conv.Profile, conv.Stage)
	reply.Patch.Apply(&conv.Profile)
	conv.Stage = reply.NextStage

	response := reply.Response
	if conv.Stage == StageGeneral && cm.generator != nil {
		// Post-script small talk may go through the text generator.
		// This can block on the network for up to 30s; only this
		// session's lock is held while it runs.
		response = cm.generator.Generate(conv.Messages, response)
	}

	conv.Messages = append(conv.Messages, ChatMessage{Role: "assistant", Content: response})
	cm.persistMessage(sessionID, response, false)

	cm.touch(conv)

	return &ChatResult{
		Reply:   response,
		Profile: conv.Profile,
		Stage:   conv.Stage,
	}, nil
}

// getOrCreate returns the live conversation for sessionID, starting a
// fresh one when none exists or the previous one has expired.
func (cm *ConversationManager) getOrCreate(sessionID string) *Conversation {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conv := cm.sessions[sessionID]
	if conv == nil || time.Now().After(conv.ExpiresAt) {
		conv = cm.newConversation(sessionID)
		cm.sessions[sessionID] = conv
	}
	return conv
}

func (cm *ConversationManager) touch(conv *Conversation) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	now := time.Now()
	conv.LastActive = now
	conv.ExpiresAt = now.Add(cm.sessionTTL)
}

// History returns the message log for a session. Live sessions are
// served from memory; evicted ones fall back to the persisted rows.
func (cm *ConversationManager) History(sessionID string) ([]ChatMessage, error) {
	cm.mu.RLock()
	conv, exists := cm.sessions[sessionID]
	live := exists && !time.Now().After(conv.ExpiresAt)
	cm.mu.RUnlock()

	if live {
		conv.mu.Lock()
		messages := make([]ChatMessage, len(conv.Messages))
		copy(messages, conv.Messages)
		conv.mu.Unlock()
		return messages, nil
	}

	stored, err := cm.store.GetChatHistory(sessionID)
	if err != nil {
		return nil, err
	}
	messages := make([]ChatMessage, 0, len(stored))
	for _, msg := range stored {
		role := "assistant"
		if msg.IsUser {
			role = "user"
		}
		messages = append(messages, ChatMessage{Role: role, Content: msg.Message})
	}
	return messages, nil
}

// ActiveSessions returns the number of live conversations (for monitoring)
func (cm *ConversationManager) ActiveSessions() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.sessions)
}

// Stop halts the background eviction sweep
func (cm *ConversationManager) Stop() {
	close(cm.stopCh)
}

func (cm *ConversationManager) newConversation(sessionID string) *Conversation {
	now := time.Now()
	return &Conversation{
		SessionID:  sessionID,
		Messages:   []ChatMessage{{Role: "assistant", Content: greeting}},
		Stage:      StageIncome,
		CreatedAt:  now,
		LastActive: now,
		ExpiresAt:  now.Add(cm.sessionTTL),
	}
}

func (cm *ConversationManager) persistMessage(sessionID, content string, isUser bool) {
	if cm.store == nil {
		return
	}
	_, err := cm.store.SaveChatMessage(&models.ChatMessage{
		UserID:    guestUserID,
		SessionID: sessionID,
		Message:   content,
		IsUser:    isUser,
	})
	if err != nil {
		log.Printf("Failed to persist chat message for session %s: %v", sessionID, err)
	}
}

// cleanupExpiredSessions runs periodically to evict idle conversations
func (cm *ConversationManager) cleanupExpiredSessions() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			evicted := cm.evictExpired(time.Now())
			if evicted > 0 {
				log.Printf("Evicted %d expired conversation(s)", evicted)
			}
		case <-cm.stopCh:
			return
		}
	}
}

func (cm *ConversationManager) evictExpired(now time.Time) int {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	evicted := 0
	for sessionID, conv := range cm.sessions {
		if now.After(conv.ExpiresAt) {
			delete(cm.sessions, sessionID)
			evicted++
		}
	}
	return evicted
}
