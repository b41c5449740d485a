// file: utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Response 统一响应包体。code 为 0 表示成功，非 0 为应用层错误码：
// 参数 1xxx / 账号 2xxx / 业务与判定 3xxx / 鉴权与不存在 4xxx / 服务端 5xxx。
// 业务语义全部由 code 表达，HTTP 状态恒为 200。
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success 业务成功
func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

// Error 业务失败，判定拒绝的 code 见 services.ReasonCode
func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}
