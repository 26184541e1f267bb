// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"ShopPilot/app/api/assistant/internal/svc"
	"ShopPilot/app/api/assistant/internal/types"
	"ShopPilot/app/common/consts/errno"
	"ShopPilot/app/common/response"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type FeedbackLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFeedbackLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FeedbackLogic {
	return &FeedbackLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *FeedbackLogic) Feedback(req *types.FeedbackRequest) (*response.Response, error) {
	if req == nil {
		return nil, xerrors.New(errno.InvalidParam, "empty request")
	}

	sess := l.svcCtx.Sessions.Get(req.SessionId)
	if sess == nil {
		return nil, xerrors.New(errno.SessionNotFound, "unknown session id")
	}

	if err := sess.SetFeedback(req.Feedback); err != nil {
		return nil, xerrors.New(errno.InvalidFeedback, err.Error())
	}

	resp := response.NewResponse(errno.StatusOK, "feedback recorded")
	return &resp, nil
}
