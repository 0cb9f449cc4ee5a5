package processor

import (
	"resume-iq-go/internal/extractor"
	"resume-iq-go/internal/parser"
	"resume-iq-go/internal/scorer"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// WithTextExtractor 注入文档文本提取器
func WithTextExtractor(e parser.TextExtractor) ComponentOpt {
	return func(c *Components) {
		c.TextExtractor = e
	}
}

// WithContactExtractor 注入联系方式提取器
func WithContactExtractor(e *extractor.ContactExtractor) ComponentOpt {
	return func(c *Components) {
		c.Contacts = e
	}
}

// WithSegmenter 注入章节分段器
func WithSegmenter(s *extractor.SectionSegmenter) ComponentOpt {
	return func(c *Components) {
		c.Segmenter = s
	}
}

// WithBulletMerger 注入要点合并器
func WithBulletMerger(m *extractor.BulletMerger) ComponentOpt {
	return func(c *Components) {
		c.Merger = m
	}
}

// WithSkillExtractor 注入技能提取器
func WithSkillExtractor(s *extractor.SkillExtractor) ComponentOpt {
	return func(c *Components) {
		c.Skills = s
	}
}

// WithScorer 注入得分聚合器
func WithScorer(a *scorer.Aggregator) ComponentOpt {
	return func(c *Components) {
		c.Scorer = a
	}
}

// WithDefaultRole 设置默认目标岗位
func WithDefaultRole(role string) SettingOpt {
	return func(s *Settings) {
		s.DefaultRole = role
	}
}

// WithExtraSkillVocab 追加技能词表词条
func WithExtraSkillVocab(vocab []string) SettingOpt {
	return func(s *Settings) {
		s.ExtraSkillVocab = vocab
	}
}

// WithDebug 开启调试日志
func WithDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}
