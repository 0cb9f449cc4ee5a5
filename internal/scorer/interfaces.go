package scorer // 质量评分：外部分类器能力接口与综合得分聚合

import "context"

// 三个分类器都是从整批要点到 [0,1] 比例的纯函数能力
// 真正的训练模型在核心之外，这里只定义注入点；核心绝不训练或修改分类器
// 每份文档对每个分类器只调用一次（整批要点），以摊薄固定的推理开销

// StructuralClassifier 判定要点是否符合STAR叙事结构的分类器
type StructuralClassifier interface {
	// ClassifyStructural 返回整批要点中STAR达标的比例
	ClassifyStructural(ctx context.Context, bullets []string) (float64, error)
}

// DepthClassifier 判定要点技术/方法论深度的分类器
type DepthClassifier interface {
	// ClassifyDepth 返回整批要点中有深度的比例
	ClassifyDepth(ctx context.Context, bullets []string) (float64, error)
}

// PatternClassifier 判定要点与目标岗位关键词匹配程度的分类器
type PatternClassifier interface {
	// ClassifyPattern 返回整批要点对目标岗位关键词的平均覆盖比例
	ClassifyPattern(ctx context.Context, bullets []string, role string) (float64, error)
}
