package jobs

import (
	"log"
	"time"

	"github.com/cardwise/cardwise-backend/internal/storage"
)

// chatHistoryRetention is how long persisted chat rows are kept
const chatHistoryRetention = 30 * 24 * time.Hour

// CleanupJob prunes old chat history on a schedule
type CleanupJob struct {
	store    storage.Store
	interval time.Duration
	stopCh   chan struct{}
}

// NewCleanupJob creates a cleanup job running hourly
func NewCleanupJob(store storage.Store) *CleanupJob {
	return &CleanupJob{
		store:    store,
		interval: time.Hour,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the background cleanup loop
func (j *CleanupJob) Start() {
	go j.run()
	log.Println("Chat history cleanup job started")
}

// Stop halts the cleanup loop
func (j *CleanupJob) Stop() {
	close(j.stopCh)
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.pruneChatHistory()
		case <-j.stopCh:
			return
		}
	}
}

func (j *CleanupJob) pruneChatHistory() {
	cutoff := time.Now().Add(-chatHistoryRetention)
	removed, err := j.store.DeleteChatHistoryBefore(cutoff)
	if err != nil {
		log.Printf("Failed to prune chat history: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Pruned %d chat message(s) older than %s", removed, cutoff.Format("2006-01-02"))
	}
}
