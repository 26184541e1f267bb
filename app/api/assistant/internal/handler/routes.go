// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"ShopPilot/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/chat",
				Handler: ChatHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/new_chat",
				Handler: NewChatHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/feedback",
				Handler: FeedbackHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/logs",
				Handler: StatsHandler(serverCtx),
			},
		},
	)
}
