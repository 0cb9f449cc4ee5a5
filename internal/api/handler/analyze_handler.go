package handler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gofrs/uuid/v5"

	"resume-iq-go/internal/config"
	"resume-iq-go/internal/logger"
	"resume-iq-go/internal/processor"
	"resume-iq-go/internal/types"
	"resume-iq-go/internal/vocab"
)

// AnalyzeHandler 简历分析处理器，负责协调一次分析请求的处理流程
type AnalyzeHandler struct {
	cfg      *config.Config
	analyzer *processor.ResumeAnalyzer
}

// NewAnalyzeHandler 创建一个新的简历分析处理器
func NewAnalyzeHandler(cfg *config.Config, analyzer *processor.ResumeAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:      cfg,
		analyzer: analyzer,
	}
}

// AnalyzeResponse 简历分析响应
type AnalyzeResponse struct {
	ReportID        string        `json:"report_id"`
	AnalyzerVersion string        `json:"analyzer_version"`
	Role            string        `json:"role,omitempty"`
	Report          *types.Report `json:"report"`
}

// RolesResponse 支持的岗位列表响应
type RolesResponse struct {
	Roles []string `json:"roles"`
}

// HandleAnalyzeUpload 处理简历文件上传分析请求
// 文件内容提取后走统一的文本分析流程；不支持的文档类型向上返回错误由路由层映射为4xx
func (h *AnalyzeHandler) HandleAnalyzeUpload(ctx context.Context, reader io.Reader, filename string, role string) (*AnalyzeResponse, error) {
	report, err := h.analyzer.AnalyzeReader(ctx, reader, filename, role)
	if err != nil {
		return nil, err
	}
	return h.buildResponse(report, role)
}

// HandleAnalyzeText 处理已提取文本的分析请求
func (h *AnalyzeHandler) HandleAnalyzeText(ctx context.Context, text string, role string) (*AnalyzeResponse, error) {
	report, err := h.analyzer.AnalyzeText(ctx, text, role)
	if err != nil {
		return nil, err
	}
	return h.buildResponse(report, role)
}

// HandleListRoles 返回岗位匹配启发式内置支持的岗位名称
func (h *AnalyzeHandler) HandleListRoles(ctx context.Context) *RolesResponse {
	return &RolesResponse{Roles: vocab.KnownRoles()}
}

func (h *AnalyzeHandler) buildResponse(report *types.Report, role string) (*AnalyzeResponse, error) {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成报告ID失败: %w", err)
	}

	if role == "" {
		role = h.cfg.Analyzer.DefaultRole
	}

	resp := &AnalyzeResponse{
		ReportID:        uuidV7.String(),
		AnalyzerVersion: h.cfg.Analyzer.Version,
		Role:            strings.TrimSpace(role),
		Report:          report,
	}
	logger.Debug().
		Str("report_id", resp.ReportID).
		Str("role", resp.Role).
		Float64("final_score", report.Score.FinalScore).
		Msg("分析响应已生成")
	return resp, nil
}
