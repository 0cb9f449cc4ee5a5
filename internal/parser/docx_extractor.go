package parser

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DocxTextExtractor 从 .docx 包里的 word/document.xml 提取段落文本
// 每个段落输出为一行，段内的软换行也转换为换行，保证下游按行分段可用
type DocxTextExtractor struct {
	logger *zerolog.Logger
}

// NewDocxTextExtractor 创建DOCX文本提取器
func NewDocxTextExtractor(logger *zerolog.Logger) *DocxTextExtractor {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &DocxTextExtractor{logger: logger}
}

// ExtractFromFile 从DOCX文件提取文本和元数据
func (e *DocxTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read DOCX file %s: %w", filePath, err)
	}
	return e.ExtractTextFromBytes(ctx, data, filePath)
}

// ExtractTextFromReader 从io.Reader提取文本和元数据
func (e *DocxTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read DOCX stream %s: %w", uri, err)
	}
	return e.ExtractTextFromBytes(ctx, data, uri)
}

// ExtractTextFromBytes 从字节数组提取文本内容
func (e *DocxTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("invalid DOCX archive %s: %w", uri, err)
	}

	var documentXML []byte
	for _, file := range zipReader.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return "", nil, fmt.Errorf("failed to open document.xml in %s: %w", uri, err)
			}
			documentXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", nil, fmt.Errorf("failed to read document.xml in %s: %w", uri, err)
			}
			break
		}
	}
	if documentXML == nil {
		return "", nil, fmt.Errorf("DOCX archive %s has no word/document.xml", uri)
	}

	text, paragraphs, err := extractParagraphText(documentXML)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse document.xml in %s: %w", uri, err)
	}

	e.logger.Debug().Str("uri", uri).Int("paragraphs", paragraphs).Msg("DOCX提取完成")
	metadata := map[string]interface{}{
		"paragraph_count": paragraphs,
		"text_length":     len(text),
	}
	return text, metadata, nil
}

// extractParagraphText 流式遍历XML，收集每个 w:p 段落的 w:t 文本
// w:br 与 w:tab 分别转成换行和空格
func extractParagraphText(documentXML []byte) (string, int, error) {
	decoder := xml.NewDecoder(bytes.NewReader(documentXML))

	var builder strings.Builder
	var paragraph strings.Builder
	paragraphs := 0
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br":
				paragraph.WriteString("\n")
			case "tab":
				paragraph.WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				builder.WriteString(paragraph.String())
				builder.WriteString("\n")
				paragraph.Reset()
				paragraphs++
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}

	return builder.String(), paragraphs, nil
}
