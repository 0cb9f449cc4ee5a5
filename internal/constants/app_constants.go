package constants

const (
	// Application-level constants
	DefaultAnalyzerVer = "1.0" // 当前分析流水线版本号

	// 逻辑饱和（sigmoid）参数：每个启发式各自的饱和点与陡峭度
	StructuralSaturationMidpoint  = 0.6  // 结构（STAR）得分饱和点
	StructuralSaturationSteepness = 12.0 // 结构得分陡峭度
	DepthSaturationMidpoint       = 0.8  // 深度得分饱和点
	DepthSaturationSteepness      = 10.0 // 深度得分陡峭度
	PatternSaturationMidpoint     = 0.9  // 岗位匹配得分饱和点
	PatternSaturationSteepness    = 10.0 // 岗位匹配得分陡峭度

	// 综合得分的凸组合权重，三者之和为1
	DepthWeight      = 0.45 // 深度启发式权重
	StructuralWeight = 0.35 // 结构启发式权重
	PatternWeight    = 0.20 // 岗位匹配启发式权重

	// 岗位关键词匹配中必备/推荐技能的权重
	RequiredKeywordWeight    = 0.7 // 必备技能占比
	RecommendedKeywordWeight = 0.3 // 推荐技能占比

	// 要点抽取调优常量（经验值，可被配置覆盖）
	MinBulletWords = 5 // 噪声过滤的最小词数：低于该值且无强动作动词的要点被丢弃

	// 技能抽取上限
	MaxSkills           = 20 // 技能列表总数上限
	MaxCandidatePhrases = 10 // 频率挖掘候选短语数量上限
	MaxPhraseTokens     = 3  // 候选短语的最大词数
	MinPhraseFrequency  = 2  // 候选短语进入排名所需的最低出现次数

	// 标题识别：以冒号结尾的行最多允许的词数
	HeadingMaxColonWords = 4
)
