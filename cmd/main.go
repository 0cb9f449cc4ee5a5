package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"resume-iq-go/internal/api/handler"
	"resume-iq-go/internal/api/router"
	"resume-iq-go/internal/config"
	"resume-iq-go/internal/extractor"
	appCoreLogger "resume-iq-go/internal/logger"
	"resume-iq-go/internal/parser"
	"resume-iq-go/internal/processor"
	"resume-iq-go/internal/scorer"
	"resume-iq-go/internal/tracing"
	"resume-iq-go/internal/vocab"
)

// @title Resume IQ API
// @version 1.0
// @description 简历结构化分析与质量评分服务的API文档
// @BasePath /api/v1
func main() {
	var configPath string
	var sampleConfig string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.StringVar(&sampleConfig, "write-sample-config", "", "Write a sample config file to the given path and exit")
	pflag.Parse()

	if sampleConfig != "" {
		if err := config.CreateSampleConfig(sampleConfig); err != nil {
			glog.Fatalf("生成示例配置失败: %v", err)
		}
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.InitTracerProvider(ctx, cfg.Tracing)
	if err != nil {
		glog.Fatalf("初始化链路追踪失败: %v", err)
	}
	glog.Info("链路追踪初始化成功")

	textExtractor, err := parser.NewResumeTextExtractor(ctx, &appCoreLogger.Logger)
	if err != nil {
		glog.Fatalf("创建文本提取器失败: %v", err)
	}
	glog.Info("文本提取器初始化成功")

	v := vocab.NewDefault()
	components := processor.NewDefaultComponents(v, &appCoreLogger.Logger,
		processor.WithTextExtractor(textExtractor),
		processor.WithBulletMerger(extractor.NewBulletMerger(v, cfg.Heuristics.MinBulletWords)),
		processor.WithSkillExtractor(extractor.NewSkillExtractor(v, cfg.Heuristics.MaxSkills, cfg.Heuristics.MaxCandidatePhrases)),
		processor.WithScorer(scorer.NewAggregator(
			scorer.NewKeywordSTARClassifier(v),
			scorer.NewLexiconDepthClassifier(v),
			scorer.NewRolePatternClassifier(),
			scorer.WithParams(scorerParams(cfg)),
			scorer.WithAggregatorLogger(&appCoreLogger.Logger),
		)),
	)
	settings := &processor.Settings{
		DefaultRole:     cfg.Analyzer.DefaultRole,
		ExtraSkillVocab: cfg.Analyzer.ExtraSkillVocab,
		Debug:           cfg.Logger.Level == "debug",
	}

	analyzer := processor.NewResumeAnalyzer(components, settings, &appCoreLogger.Logger)
	glog.Info("ResumeAnalyzer初始化成功")

	analyzeHandler := handler.NewAnalyzeHandler(cfg, analyzer)
	glog.Info("AnalyzeHandler初始化成功")

	serverTracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		serverTracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))
	h.Use(cors.Default())

	router.RegisterRoutes(h, cfg, analyzeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("服务器关闭失败: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		glog.Errorf("链路追踪关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// scorerParams 把配置中的权重覆盖到默认调优参数上
func scorerParams(cfg *config.Config) scorer.Params {
	params := scorer.DefaultParams()
	params.StructuralWeight = cfg.Heuristics.StructuralWeight
	params.DepthWeight = cfg.Heuristics.DepthWeight
	params.PatternWeight = cfg.Heuristics.PatternWeight
	return params
}

// initLogger 初始化zerolog并把Hertz的hlog桥接到同一输出
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(cfg.Logger)
	zlog.Logger = appCoreLogger.Logger

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)

	switch cfg.Logger.Level {
	case "debug":
		glog.SetLevel(glog.LevelDebug)
	case "warn":
		glog.SetLevel(glog.LevelWarn)
	case "error":
		glog.SetLevel(glog.LevelError)
	default:
		glog.SetLevel(glog.LevelInfo)
	}
}
