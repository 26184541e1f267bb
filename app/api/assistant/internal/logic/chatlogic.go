// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"
	"strings"

	"ShopPilot/app/api/assistant/internal/agent"
	"ShopPilot/app/api/assistant/internal/svc"
	"ShopPilot/app/api/assistant/internal/types"
	"ShopPilot/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

// userFacingTurnError hides parser/transport details from the client.
const userFacingTurnError = "unable to process your message right now, please try again"

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (*types.ChatResponse, error) {
	if req == nil || strings.TrimSpace(req.Text) == "" {
		return nil, xerrors.New(errno.InvalidParam, "empty message text")
	}

	sess := l.svcCtx.Sessions.Get(req.SessionId)
	if sess == nil {
		return nil, xerrors.New(errno.SessionNotFound, "unknown session id")
	}

	answer, isRecommendation, err := l.svcCtx.Agent.HandleUserTurn(l.ctx, sess, req.Text)
	if err != nil {
		l.Logger.Error("logic: chat turn failed: ", err)
		return nil, turnError(err)
	}

	return &types.ChatResponse{
		Response:         answer,
		IsRecommendation: isRecommendation,
		SessionId:        sess.ID(),
	}, nil
}

// turnError maps internal turn failures to coded responses. The message stays
// generic on purpose: raw parse errors never reach the user.
func turnError(err error) error {
	switch {
	case errors.Is(err, agent.ErrNoJSONFound):
		return xerrors.New(errno.NoJsonFound, userFacingTurnError)
	case errors.Is(err, agent.ErrMalformedJSON):
		return xerrors.New(errno.MalformedJson, userFacingTurnError)
	case errors.Is(err, agent.ErrMissingField):
		return xerrors.New(errno.MissingField, userFacingTurnError)
	case errors.Is(err, agent.ErrUnknownCategory):
		return xerrors.New(errno.UnknownCategory, userFacingTurnError)
	default:
		return xerrors.New(errno.TransportError, userFacingTurnError)
	}
}
