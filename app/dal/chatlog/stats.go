package chatlog

import (
	"math"
	"time"
)

const recentSessionLimit = 5

// RecentSession is the per-session projection shown on the dashboard.
type RecentSession struct {
	SessionID             string  `json:"session_id"`
	Feedback              string  `json:"feedback"`
	TotalMessages         int     `json:"total_messages"`
	AverageLatencySeconds float64 `json:"average_latency_seconds"`
}

// Stats aggregates all persisted session records.
type Stats struct {
	TotalChats                 int             `json:"total_chats"`
	ChatsWithFeedback          int             `json:"chats_with_feedback"`
	PositiveFeedbackPercent    float64         `json:"positive_feedback_percent"`
	AvgConversationDurationSec float64         `json:"avg_conversation_duration_sec"`
	AvgMessagesPerChat         float64         `json:"avg_messages_per_chat"`
	RecentSessions             []RecentSession `json:"recent_sessions"`
}

// ComputeStats folds records into cross-session statistics. Empty input gives
// the zero-valued structure, never an error. Records with missing or
// unparseable timestamps are left out of the duration average only.
func ComputeStats(records []*Record) Stats {
	stats := Stats{RecentSessions: []RecentSession{}}
	if len(records) == 0 {
		return stats
	}

	stats.TotalChats = len(records)

	var (
		positive      int
		totalMessages int
		durationSum   float64
		durationCount int
	)
	for _, rec := range records {
		switch rec.UserFeedback {
		case "positive":
			positive++
			stats.ChatsWithFeedback++
		case "negative":
			stats.ChatsWithFeedback++
		}
		totalMessages += rec.TotalMessages

		start, errStart := time.Parse(time.RFC3339, rec.TimestampStart)
		end, errEnd := time.Parse(time.RFC3339, rec.TimestampEnd)
		if errStart == nil && errEnd == nil {
			durationSum += end.Sub(start).Seconds()
			durationCount++
		}
	}

	if stats.ChatsWithFeedback > 0 {
		stats.PositiveFeedbackPercent = round2(100 * float64(positive) / float64(stats.ChatsWithFeedback))
	}
	if durationCount > 0 {
		stats.AvgConversationDurationSec = round2(durationSum / float64(durationCount))
	}
	stats.AvgMessagesPerChat = round2(float64(totalMessages) / float64(len(records)))

	first := len(records) - recentSessionLimit
	if first < 0 {
		first = 0
	}
	for _, rec := range records[first:] {
		stats.RecentSessions = append(stats.RecentSessions, RecentSession{
			SessionID:             rec.SessionID,
			Feedback:              rec.UserFeedback,
			TotalMessages:         rec.TotalMessages,
			AverageLatencySeconds: rec.AverageLatencySeconds,
		})
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
