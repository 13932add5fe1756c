package router

import (
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/controller"
	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/middleware"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"

	"github.com/gin-gonic/gin"
)

// 聊天组件使用的路径, 兼容旧的函数地址
var chatPaths = []string{"/api/chat", "/.netlify/functions/chatbot"}

func Start(ginServer *gin.Engine) {
	// 请求体只有json
	ginServer.MaxMultipartMemory = 1 << 20

	ginServer.Use(
		middleware.RequestId(),
		middleware.CorsHandle(),
		middleware.RateLimit(global.Config.RateLimit.Requests, time.Duration(global.Config.RateLimit.WindowSeconds)*time.Second),
	) //全局中间件

	ginServer.NoRoute(common.FailNotFound)

	for _, p := range chatPaths {
		ginServer.Any(p, controller.Api.UserApiGroup.ChatApi.HandleChat)
	}

	v1 := ginServer.Group("api/v1")
	{
		v1.GET("/stats", controller.Api.UserApiGroup.StatsApi.GetStats)
	}
}
