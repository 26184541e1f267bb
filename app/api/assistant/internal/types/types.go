// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	Text      string `json:"text"`
	SessionId string `json:"session_id,optional"`
}

type ChatResponse struct {
	Response         string `json:"response"`
	IsRecommendation bool   `json:"is_recommendation"`
	SessionId        string `json:"session_id"`
}

type NewChatRequest struct {
	SessionId string `json:"session_id,optional"`
}

type NewChatData struct {
	SessionId string `json:"session_id"`
}

type FeedbackRequest struct {
	Feedback  string `json:"feedback"`
	SessionId string `json:"session_id,optional"`
}

type RecentSession struct {
	SessionId             string  `json:"session_id"`
	Feedback              string  `json:"feedback"`
	TotalMessages         int     `json:"total_messages"`
	AverageLatencySeconds float64 `json:"average_latency_seconds"`
}

type StatsResponse struct {
	TotalChats                 int             `json:"total_chats"`
	ChatsWithFeedback          int             `json:"chats_with_feedback"`
	PositiveFeedbackPercent    float64         `json:"positive_feedback_percent"`
	AvgConversationDurationSec float64         `json:"avg_conversation_duration_sec"`
	AvgMessagesPerChat         float64         `json:"avg_messages_per_chat"`
	RecentSessions             []RecentSession `json:"recent_sessions"`
}
