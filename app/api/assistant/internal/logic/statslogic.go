// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"ShopPilot/app/api/assistant/internal/svc"
	"ShopPilot/app/api/assistant/internal/types"
	"ShopPilot/app/dal/chatlog"

	"github.com/zeromicro/go-zero/core/logx"
)

type StatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StatsLogic {
	return &StatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Stats aggregates the persisted chat log. A failed read degrades to the
// empty statistics structure rather than an error response.
func (l *StatsLogic) Stats() (*types.StatsResponse, error) {
	records, err := l.svcCtx.ChatLog.FindAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: chat log read failed: ", err)
		records = nil
	}

	stats := chatlog.ComputeStats(records)

	recent := make([]types.RecentSession, 0, len(stats.RecentSessions))
	for _, rs := range stats.RecentSessions {
		recent = append(recent, types.RecentSession{
			SessionId:             rs.SessionID,
			Feedback:              rs.Feedback,
			TotalMessages:         rs.TotalMessages,
			AverageLatencySeconds: rs.AverageLatencySeconds,
		})
	}

	return &types.StatsResponse{
		TotalChats:                 stats.TotalChats,
		ChatsWithFeedback:          stats.ChatsWithFeedback,
		PositiveFeedbackPercent:    stats.PositiveFeedbackPercent,
		AvgConversationDurationSec: stats.AvgConversationDurationSec,
		AvgMessagesPerChat:         stats.AvgMessagesPerChat,
		RecentSessions:             recent,
	}, nil
}
