package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"resume-iq-go/internal/extractor"
	"resume-iq-go/internal/vocab"
)

// mustLoadText 读取简历文本并做规整，失败直接退出
func mustLoadText(ctx context.Context) string {
	if *inputFilePath == "" {
		fmt.Println("错误: 必须提供简历文件路径。使用 -file 参数。")
		flag.Usage()
		os.Exit(1)
	}
	text, err := loadResumeText(ctx, *inputFilePath)
	if err != nil {
		fmt.Printf("读取简历文本失败: %v\n", err)
		os.Exit(1)
	}
	return extractor.NormalizeText(text)
}

// 处理联系方式提取命令
func handleContactsCommand() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text := mustLoadText(ctx)
	v := vocab.NewDefault()

	contacts := extractor.NewContactExtractor(v).Extract(text)

	fmt.Printf("===== 邮箱 (%d) =====\n", len(contacts.Emails))
	for _, email := range contacts.Emails {
		fmt.Printf("  %s\n", email)
	}
	fmt.Printf("===== 链接 (%d) =====\n", len(contacts.Links))
	for _, link := range contacts.Links {
		fmt.Printf("  %s\n", link)
	}
}

// 处理章节结构命令
func handleSectionsCommand() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text := mustLoadText(ctx)
	v := vocab.NewDefault()

	segmenter := extractor.NewSectionSegmenter(extractor.NewLineClassifier(v))
	merger := extractor.NewBulletMerger(v, 0)
	sections := segmenter.Segment(text)

	fmt.Printf("共识别出 %d 个章节\n", len(sections))
	for _, section := range sections {
		fmt.Printf("\n===== %s =====\n", section.SectionName)
		for _, entry := range section.Entries {
			if entry.Title != "" {
				fmt.Printf("  [%s]\n", entry.Title)
			}
			for _, bullet := range merger.Merge(entry.Bullets) {
				fmt.Printf("    - %s\n", bullet)
			}
		}
	}
}

// 处理技能列表命令
func handleSkillsCommand() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text := mustLoadText(ctx)
	v := vocab.NewDefault()

	skills := extractor.NewSkillExtractor(v, 0, 0).Extract(text, nil)
	fmt.Printf("===== 技能 (%d) =====\n", len(skills))
	for i, skill := range skills {
		fmt.Printf("  %2d. %s\n", i+1, skill)
	}
}
