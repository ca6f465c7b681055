package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS 只對 prefix 底下的路徑開放跨域；掛在全域才能處理沒有對應路由的預檢請求
func CORS(prefix string) gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID", "Location"},
		MaxAge:        12 * time.Hour,
	})
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			handler(c)
		}
	}
}
