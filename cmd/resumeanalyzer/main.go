package main

import (
	"flag"
	"fmt"
	"os"
)

// 命令行参数定义
var (
	inputFilePath = flag.String("file", "", "简历文件路径 (.pdf/.docx/.txt)")
	targetRole    = flag.String("role", "", "目标岗位，例如 \"Backend Developer\"")
	maxLen        = flag.Int("maxlen", 1000, "显示的文本最大长度，设为-1显示全部")
	command       = flag.String("cmd", "analyze", "执行的命令: extract=仅提取文本, contacts=联系方式, sections=章节结构, skills=技能列表, analyze=完整分析")
)

func main() {
	flag.Parse()

	switch *command {
	case "extract":
		handleExtractCommand()
	case "contacts":
		handleContactsCommand()
	case "sections":
		handleSectionsCommand()
	case "skills":
		handleSkillsCommand()
	case "analyze":
		handleAnalyzeCommand()
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: extract, contacts, sections, skills, analyze\n", *command)
		flag.Usage()
		os.Exit(1)
	}
}
