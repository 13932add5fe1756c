package initialize

import (
	"context"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/dao"
	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/router"
	"github.com/Kbc981/oracle-ai-migrate-gcp/service"
	"github.com/Kbc981/oracle-ai-migrate-gcp/service/user"
	"github.com/Kbc981/oracle-ai-migrate-gcp/task"
	"github.com/gin-gonic/gin"
)

var server *http.Server

func Start(initializer *Initializer, taskManager *task.Manager, startTime time.Time) {
	initializer.StartSystem(taskManager)

	var chatLogs user.ChatLogStore
	if dao.DB != nil {
		chatLogs = &dao.App.ChatLogDb
	}

	service.Service.UserServiceGroup = user.NewServiceGroup(user.Deps{
		Log:               global.Log,
		Knowledge:         initializer.knowledge,
		Retriever:         global.Retriever,
		Gateway:           global.LlmGateway,
		ChatLogs:          chatLogs,
		DocsExcerptLength: global.Config.Ai.DocsExcerptLength,
	})

	initGinServer()
	//协程启动服务
	go startServer()

	logStartupInfo(startTime)

	waitForShutdown()
}

func initGinServer() {
	mode := gin.ReleaseMode
	if global.Config.Debug {
		mode = gin.DebugMode
	}
	gin.SetMode(mode)

	ginServer := gin.New()
	ginServer.Use(gin.Logger(), gin.Recovery())
	ginServer.ForwardedByClientIP = true
	router.Start(ginServer)

	server = &http.Server{
		Addr:              global.Config.GinAddr,
		Handler:           ginServer,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// 启动HTTP服务器
func startServer() {
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		global.Log.Panic("服务出错[isjfio]: ", err.Error()) //外部并不能捕获Panic
	}
}

// 记录启动信息
func logStartupInfo(startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	global.Log.Infof("服务已启动, 耗时: %v, Go: %s, 端口: %s, 模式: %s, PID: %d, 内存: %.2fMiB", time.Since(startTime), runtime.Version(), global.Config.GinAddr, gin.Mode(), syscall.Getpid(), float64(m.Alloc)/1024/1024)
}

// 等待关闭信号(ctrl+C)
func waitForShutdown() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done() //阻塞等待

	global.Log.Infof("程序关闭中..., port: %s, pid: %d", global.Config.GinAddr, syscall.Getpid())

	shutdownServer()
}

// 平滑关闭服务器
func shutdownServer() {
	//给程序最多5秒处理余下请求
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(timeoutCtx); err != nil {
		global.Log.Errorln("服务关闭出错[oijojiud]", err)
		return
	}
	global.Log.Infoln("服务退出成功")
}
