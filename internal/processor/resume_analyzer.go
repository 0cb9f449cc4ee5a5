package processor

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"resume-iq-go/internal/extractor"
	"resume-iq-go/internal/parser"
	"resume-iq-go/internal/scorer"
	"resume-iq-go/internal/tracing"
	"resume-iq-go/internal/types"
	"resume-iq-go/internal/vocab"
)

var (
	// ErrExtractorNotInit 文本提取器未初始化错误
	ErrExtractorNotInit = errors.New("text extractor is not initialized")
)

// 定义tracer
var tracer = otel.Tracer("processor")

// ResumeAnalyzer 简历分析服务
// 采用Facade模式，内部持有全部组件；一次调用处理一份文档，调用之间不保留任何状态，
// 多份文档可以各自用独立调用完全并行处理
type ResumeAnalyzer struct {
	components Components      // 组件依赖
	settings   Settings        // 配置信息
	logger     *zerolog.Logger // 日志记录器
}

// NewResumeAnalyzer 创建简历分析服务
func NewResumeAnalyzer(components *Components, settings *Settings, logger *zerolog.Logger) *ResumeAnalyzer {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ResumeAnalyzer{
		components: *components,
		settings:   *settings,
		logger:     logger,
	}
}

// NewDefaultComponents 基于词表构建全部默认组件
// 分类器使用内置的确定性启发式实现，部署方可通过选项替换为真实模型
func NewDefaultComponents(v *vocab.Vocabulary, logger *zerolog.Logger, opts ...ComponentOpt) *Components {
	classifier := extractor.NewLineClassifier(v)
	components := &Components{
		Contacts:  extractor.NewContactExtractor(v),
		Segmenter: extractor.NewSectionSegmenter(classifier),
		Merger:    extractor.NewBulletMerger(v, 0),
		Skills:    extractor.NewSkillExtractor(v, 0, 0),
		Scorer: scorer.NewAggregator(
			scorer.NewKeywordSTARClassifier(v),
			scorer.NewLexiconDepthClassifier(v),
			scorer.NewRolePatternClassifier(),
			scorer.WithAggregatorLogger(logger),
		),
	}
	for _, opt := range opts {
		opt(components)
	}
	return components
}

// AnalyzeText 对已提取的简历文本执行完整分析
// 流程：规整 → 联系方式/分段 → 逐条目要点合并 → 技能抽取 → 整批要点评分
// 空文本返回空但结构完整的报告而不是错误
func (a *ResumeAnalyzer) AnalyzeText(ctx context.Context, text string, role string) (*types.Report, error) {
	ctx, span := tracer.Start(ctx, "analyzer.AnalyzeText")
	defer span.End()

	normalized := extractor.NormalizeText(text)
	span.SetAttributes(attribute.String("analyze.text_preview", tracing.SafeResumeContent(normalized)))
	if strings.TrimSpace(normalized) == "" {
		span.SetAttributes(attribute.Bool("analyze.empty_input", true))
		a.logger.Info().Msg("输入文本为空，返回空报告")
		return types.EmptyReport(), nil
	}

	report := types.EmptyReport()
	report.Contacts = a.components.Contacts.Extract(normalized)
	report.Sections = a.components.Segmenter.Segment(normalized)

	// 就地把每个条目的原始要点行替换为合并后的逻辑要点
	for _, section := range report.Sections {
		for _, entry := range section.Entries {
			entry.Bullets = a.components.Merger.Merge(entry.Bullets)
		}
	}

	report.Skills = a.components.Skills.Extract(normalized, a.settings.ExtraSkillVocab)

	if role == "" {
		role = a.settings.DefaultRole
	}
	bullets := report.AllBullets()
	report.Score = a.components.Scorer.Score(ctx, bullets, role)

	span.SetAttributes(
		attribute.Int("analyze.section_count", len(report.Sections)),
		attribute.Int("analyze.bullet_count", len(bullets)),
		attribute.Int("analyze.skill_count", len(report.Skills)),
		attribute.Float64("analyze.final_score", report.Score.FinalScore),
	)
	a.logger.Debug().
		Int("sections", len(report.Sections)).
		Int("bullets", len(bullets)).
		Float64("final_score", report.Score.FinalScore).
		Msg("简历分析完成")
	return report, nil
}

// AnalyzeReader 提取流内容的文本后执行完整分析
// 不支持的文档类型在任何核心处理之前被拒绝；
// 提取失败按协作方契约降级为空文本，返回空但结构完整的报告
func (a *ResumeAnalyzer) AnalyzeReader(ctx context.Context, reader io.Reader, uri string, role string) (*types.Report, error) {
	if a.components.TextExtractor == nil {
		return nil, ErrExtractorNotInit
	}

	ctx, span := tracer.Start(ctx, "analyzer.AnalyzeReader")
	defer span.End()
	span.SetAttributes(attribute.String("analyze.uri", tracing.SafeAttributeValue("uri", uri, tracing.DefaultMaxLength)))

	text, _, err := a.components.TextExtractor.ExtractTextFromReader(ctx, reader, uri)
	if err != nil {
		if errors.Is(err, parser.ErrUnsupportedFormat) {
			tracing.RecordError(span, err, tracing.ErrorTypeValidation)
			return nil, err
		}
		// 提取失败不是流水线中止：部分数据的报告比没有报告更有用
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		a.logger.Warn().Err(err).Str("uri", uri).Msg("文本提取失败，返回空报告")
		return types.EmptyReport(), nil
	}

	return a.AnalyzeText(ctx, text, role)
}

// AnalyzeFile 提取本地文件的文本后执行完整分析
func (a *ResumeAnalyzer) AnalyzeFile(ctx context.Context, filePath string, role string) (*types.Report, error) {
	if a.components.TextExtractor == nil {
		return nil, ErrExtractorNotInit
	}

	ctx, span := tracer.Start(ctx, "analyzer.AnalyzeFile")
	defer span.End()

	text, _, err := a.components.TextExtractor.ExtractFromFile(ctx, filePath)
	if err != nil {
		if errors.Is(err, parser.ErrUnsupportedFormat) {
			tracing.RecordError(span, err, tracing.ErrorTypeValidation)
			return nil, err
		}
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		a.logger.Warn().Err(err).Str("path", filePath).Msg("文本提取失败，返回空报告")
		return types.EmptyReport(), nil
	}

	return a.AnalyzeText(ctx, text, role)
}
