package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kbc981/oracle-ai-migrate-gcp/middleware"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/Kbc981/oracle-ai-migrate-gcp/service"
	"github.com/Kbc981/oracle-ai-migrate-gcp/service/user"
)

type ChatApi struct{}

// HandleChat OPTIONS预检, GET健康检查, POST对话
func (d *ChatApi) HandleChat(ctx *gin.Context) {
	switch ctx.Request.Method {
	case http.MethodOptions:
		common.SuccessEmpty(ctx)
		return
	case http.MethodGet:
		common.Success(ctx, service.Service.UserServiceGroup.ChatService.Health())
		return
	case http.MethodPost:
	default:
		common.Fail(ctx, http.StatusMethodNotAllowed, enum.MsgMethodNotAllowed)
		return
	}

	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, http.StatusBadRequest, enum.MsgMissingMessage)
		return
	}

	res, err := service.Service.UserServiceGroup.ChatService.Reply(ctx.Request.Context(), middleware.GetRequestId(ctx), &req)
	switch {
	case err == nil:
		common.Success(ctx, res)
	case errors.Is(err, user.ErrValidation):
		common.Fail(ctx, http.StatusBadRequest, enum.MsgMissingMessage)
	case errors.Is(err, user.ErrConfiguration):
		common.Fail(ctx, http.StatusInternalServerError, enum.MsgKeysNotConfigured)
	default:
		common.Fail(ctx, http.StatusInternalServerError, enum.MsgProcessFailed, err.Error())
	}
}
