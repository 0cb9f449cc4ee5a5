package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-iq-go/internal/parser"
)

// 定义提取命令的命令行参数
var (
	extractSaveFile = flag.String("extract-save", "", "保存提取内容到文件")
)

// loadResumeText 读取简历文本：.txt直接读取，.pdf/.docx走文本提取器
func loadResumeText(ctx context.Context, filePath string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("无法获取文件的绝对路径: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return "", fmt.Errorf("无法访问文件 %s: %w", absPath, err)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if ext == ".txt" || ext == "" {
		data, err := os.ReadFile(absPath)
		if err != nil {
			return "", fmt.Errorf("读取文本文件失败: %w", err)
		}
		return string(data), nil
	}

	nop := zerolog.Nop()
	extractor, err := parser.NewResumeTextExtractor(ctx, &nop)
	if err != nil {
		return "", fmt.Errorf("创建文本提取器失败: %w", err)
	}
	text, _, err := extractor.ExtractFromFile(ctx, absPath)
	if err != nil {
		return "", fmt.Errorf("提取文本失败: %w", err)
	}
	return text, nil
}

// 处理提取文本命令
func handleExtractCommand() {
	if *inputFilePath == "" {
		fmt.Println("错误: 必须提供简历文件路径。使用 -file 参数。")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Printf("准备处理简历文件: %s\n", *inputFilePath)
	startTime := time.Now()

	text, err := loadResumeText(ctx, *inputFilePath)
	if err != nil {
		fmt.Printf("提取简历文本失败: %v\n", err)
		os.Exit(1)
	}

	elapsedTime := time.Since(startTime)
	fmt.Printf("提取完成! 耗时: %v\n", elapsedTime)

	fmt.Printf("\n===== 提取的文本 (总计 %d 字符) =====\n", len(text))
	displayText := text
	if *maxLen >= 0 && len(text) > *maxLen {
		displayText = text[:*maxLen] + "...(已截断，使用 -maxlen 参数显示更多)"
	}
	fmt.Println(displayText)

	if *extractSaveFile != "" {
		err = os.WriteFile(*extractSaveFile, []byte(text), 0644)
		if err != nil {
			fmt.Printf("保存到文件失败: %v\n", err)
		} else {
			fmt.Printf("文本已保存到: %s\n", *extractSaveFile)
		}
	}
}
