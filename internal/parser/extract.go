package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrUnsupportedFormat 文档类型不在支持范围内（当前仅支持 .pdf 与 .docx）
// 这个检查发生在任何核心处理之前，直接作为拒绝向上返回
var ErrUnsupportedFormat = errors.New("unsupported file format, only .pdf and .docx are handled")

// TextExtractor 文档文本提取能力
// 约定：尽力返回保留换行的文本；失败返回错误，调用方把空文本降级为空报告
type TextExtractor interface {
	// ExtractFromFile 从本地文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractTextFromReader 从io.Reader提取文本和元数据，uri仅用于日志与元数据
	ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error)

	// ExtractTextFromBytes 从字节数组提取文本和元数据
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error)
}

// ResumeTextExtractor 按文件扩展名分发到具体提取器
type ResumeTextExtractor struct {
	pdf  TextExtractor
	docx TextExtractor
}

// NewResumeTextExtractor 组装PDF与DOCX提取器
func NewResumeTextExtractor(ctx context.Context, logger *zerolog.Logger) (*ResumeTextExtractor, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	pdfExtractor, err := NewEinoPDFTextExtractor(ctx, WithEinoLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("初始化PDF提取器失败: %w", err)
	}
	return &ResumeTextExtractor{
		pdf:  pdfExtractor,
		docx: NewDocxTextExtractor(logger),
	}, nil
}

// ExtractFromFile 根据扩展名提取本地文件的文本
func (e *ResumeTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	extractor, err := e.forName(filePath)
	if err != nil {
		return "", nil, err
	}
	return extractor.ExtractFromFile(ctx, filePath)
}

// ExtractTextFromReader 根据uri扩展名提取流内容的文本
func (e *ResumeTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	extractor, err := e.forName(uri)
	if err != nil {
		return "", nil, err
	}
	return extractor.ExtractTextFromReader(ctx, reader, uri)
}

// ExtractTextFromBytes 根据uri扩展名提取字节内容的文本
func (e *ResumeTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error) {
	extractor, err := e.forName(uri)
	if err != nil {
		return "", nil, err
	}
	return extractor.ExtractTextFromBytes(ctx, data, uri)
}

// forName 按扩展名选择提取器，未支持的类型立即拒绝
func (e *ResumeTextExtractor) forName(name string) (TextExtractor, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return e.pdf, nil
	case ".docx":
		return e.docx, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}
