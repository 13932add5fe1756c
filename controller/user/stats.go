package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/Kbc981/oracle-ai-migrate-gcp/service"
	"github.com/Kbc981/oracle-ai-migrate-gcp/service/user"
)

type StatsApi struct{}

// GetStats 各回复来源的请求数, ?days=7
func (s *StatsApi) GetStats(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "7"))

	res, err := service.Service.UserServiceGroup.StatsService.SourceCounts(days)
	if err != nil {
		if errors.Is(err, user.ErrStatsDisabled) {
			common.FailNotFound(ctx)
			return
		}
		global.Log.Errorf("查询统计失败: %v", err)
		common.Fail(ctx, http.StatusInternalServerError, enum.MsgProcessFailed, err.Error())
		return
	}
	common.Success(ctx, res)
}
