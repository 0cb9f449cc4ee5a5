package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"resume-iq-go/internal/processor"
	"resume-iq-go/internal/vocab"
)

// 处理完整分析命令，输出最终的JSON报告
func handleAnalyzeCommand() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	text := mustLoadText(ctx)

	nop := zerolog.Nop()
	components := processor.NewDefaultComponents(vocab.NewDefault(), &nop)
	analyzer := processor.NewResumeAnalyzer(components, &processor.Settings{}, &nop)

	startTime := time.Now()
	report, err := analyzer.AnalyzeText(ctx, text, *targetRole)
	if err != nil {
		fmt.Printf("分析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("分析完成! 耗时: %v\n", time.Since(startTime))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Printf("序列化报告失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
