// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"ShopPilot/app/api/assistant/internal/mq"
	"ShopPilot/app/api/assistant/internal/svc"
	"ShopPilot/app/api/assistant/internal/types"
	"ShopPilot/app/common/consts/errno"
	"ShopPilot/app/common/response"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type NewchatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewNewchatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewchatLogic {
	return &NewchatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// NewChat persists the session's log record, then resets the session. Log
// persistence is best-effort: a failed append is reported but never fails the
// reset itself.
func (l *NewchatLogic) NewChat(req *types.NewChatRequest) (*response.ResponseWithData, error) {
	var sessionId string
	if req != nil {
		sessionId = req.SessionId
	}
	sess := l.svcCtx.Sessions.Get(sessionId)
	if sess == nil {
		return nil, xerrors.New(errno.SessionNotFound, "unknown session id")
	}

	record := sess.BuildLogRecord()
	if err := l.svcCtx.ChatLog.Insert(l.ctx, record); err != nil {
		l.Logger.Error("logic: chat log append failed: ", err)
	}
	if err := mq.PublishChatLogRecord(l.svcCtx, record); err != nil {
		l.Logger.Error("logic: chat log publish failed: ", err)
	}

	l.svcCtx.Sessions.Reset(sess)

	resp := response.NewResponseWithData(errno.StatusOK, "chat reset", types.NewChatData{
		SessionId: sess.ID(),
	})
	return &resp, nil
}
