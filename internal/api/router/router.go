package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"
	"go.opentelemetry.io/otel/trace"

	"resume-iq-go/internal/api/handler"
	"resume-iq-go/internal/config"
	"resume-iq-go/internal/parser"
	"resume-iq-go/internal/tracing"
)

// respondError 返回错误响应，并在当前span上记录HTTP错误
func respondError(c context.Context, ctx *app.RequestContext, status int, msg string, err error) {
	if err != nil {
		tracing.RecordHTTPError(trace.SpanFromContext(c), err, status)
	}
	ctx.JSON(status, utils.H{"error": msg})
}

var errFileTooLarge = errors.New("文件超出大小限制")

// AnalyzeTextRequest 文本分析请求体
type AnalyzeTextRequest struct {
	Text string `json:"text"`
	Role string `json:"role,omitempty"`
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config, analyzeHandler *handler.AnalyzeHandler) {
	api := h.Group("/api/v1")

	// 配置了API Key时启用请求头鉴权
	if cfg.Server.APIKey != "" {
		api.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:X-API-Key", ""),
			keyauth.WithValidator(func(c context.Context, ctx *app.RequestContext, key string) (bool, error) {
				return key == cfg.Server.APIKey, nil
			}),
		))
	}

	api.POST("/resume/analyze", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			respondError(c, ctx, consts.StatusBadRequest, "文件未找到", err)
			return
		}
		maxSize := int64(cfg.Server.MaxUploadSizeMB) * 1024 * 1024
		if fileHeader.Size > maxSize {
			respondError(c, ctx, consts.StatusRequestEntityTooLarge, "文件超出大小限制", errFileTooLarge)
			return
		}

		role := ctx.PostForm("role")

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, ctx, consts.StatusInternalServerError, "打开文件失败", err)
			return
		}
		defer file.Close()

		resp, err := analyzeHandler.HandleAnalyzeUpload(c, file, fileHeader.Filename, role)
		if err != nil {
			if errors.Is(err, parser.ErrUnsupportedFormat) {
				respondError(c, ctx, consts.StatusUnsupportedMediaType, "不支持的文件类型，仅支持 .pdf 和 .docx", err)
				return
			}
			respondError(c, ctx, consts.StatusInternalServerError, err.Error(), err)
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/analyze-text", func(c context.Context, ctx *app.RequestContext) {
		var req AnalyzeTextRequest
		if err := ctx.BindJSON(&req); err != nil {
			respondError(c, ctx, consts.StatusBadRequest, "请求体解析失败", err)
			return
		}

		resp, err := analyzeHandler.HandleAnalyzeText(c, req.Text, req.Role)
		if err != nil {
			respondError(c, ctx, consts.StatusInternalServerError, err.Error(), err)
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/roles", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, analyzeHandler.HandleListRoles(c))
	})

	// 健康检查不走鉴权
	h.GET("/api/v1/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
