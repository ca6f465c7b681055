package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParseID 解析路徑中的數字 ID，格式錯誤視同找不到
func ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, common.ErrNotFound
	}
	return uint(id), nil
}

// BindingFields 將綁定錯誤轉為欄位錯誤，無法對應欄位時回傳 nil
func BindingFields(err error) map[string]string {
	if fields := common.FieldErrors(err); len(fields) > 0 {
		return fields
	}
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// RespondError 將錯誤轉為 JSON 錯誤響應
func RespondError(c *gin.Context, err error) {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: ve.Error(),
			Fields:  ve.Fields,
		})
		return
	}

	status, ce := common.StatusOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		common.LogError("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(status, common.ErrorResponse{
		Code:    ce.Code,
		Message: ce.Message,
	})
}

// RespondBindError 請求內容驗證失敗
func RespondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, common.ErrorResponse{
		Code:    common.ErrCodeInvalidRequest,
		Message: common.ErrInvalidRequest.Message,
		Fields:  BindingFields(err),
	})
}
