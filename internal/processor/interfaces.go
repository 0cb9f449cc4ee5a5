package processor // 简历分析流水线的组件聚合与编排

import (
	"resume-iq-go/internal/extractor"
	"resume-iq-go/internal/parser"
	"resume-iq-go/internal/scorer"
)

// Components 聚合所有功能组件依赖，便于集中管理和测试替换
// 文本提取器与三个分类器是外部协作方，以接口注入；其余为核心纯函数组件
type Components struct {
	// 外部协作方接口
	TextExtractor parser.TextExtractor // 文档文本提取接口（PDF/DOCX解码在核心之外）

	// 核心文本结构化组件
	Contacts  *extractor.ContactExtractor // 联系方式提取
	Segmenter *extractor.SectionSegmenter // 章节分段
	Merger    *extractor.BulletMerger     // 要点合并
	Skills    *extractor.SkillExtractor   // 技能抽取

	// 得分聚合（内部持有三个注入的分类器能力）
	Scorer *scorer.Aggregator
}

// Settings 纯配置项，不包含任何业务逻辑组件
type Settings struct {
	DefaultRole     string   // 请求未指定目标岗位时使用的默认岗位
	ExtraSkillVocab []string // 追加到技能词表的额外词条
	Debug           bool     // 是否开启调试日志
}
