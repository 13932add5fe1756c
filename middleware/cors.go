package middleware

import (
	"net/http"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsHandle 跨域, 预检请求直接返回200
func CorsHandle() gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:              []string{http.MethodPost, http.MethodOptions, http.MethodGet},
		AllowHeaders:              []string{"Content-Type", RequestIdHeader},
		ExposeHeaders:             []string{RequestIdHeader},
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	}

	origins := global.Config.Cors
	if len(origins) == 0 || utils.InSlice(origins, "*") >= 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}

	return cors.New(c)
}
