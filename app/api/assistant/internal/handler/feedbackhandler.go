// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"ShopPilot/app/api/assistant/internal/logic"
	"ShopPilot/app/api/assistant/internal/svc"
	"ShopPilot/app/api/assistant/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func FeedbackHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.FeedbackRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewFeedbackLogic(r.Context(), svcCtx)
		resp, err := l.Feedback(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
