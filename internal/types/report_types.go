package types

// ContactSet 提取到的联系方式集合
// 不变式：emails 与 links 互斥，links 中不出现个人邮箱服务商域名，两个列表内部均无重复
type ContactSet struct {
	Emails []string `json:"emails"` // 去重后的邮箱地址（统一小写）
	Links  []string `json:"links"`  // 过滤后的外链，保持首次出现顺序
}

// Entry 简历章节中的一个条目（一段工作/项目/教育经历）
type Entry struct {
	Title   string   `json:"title"`   // 职位/日期行，或由标题派生的占位标题
	Bullets []string `json:"bullets"` // 合并后的逻辑要点；分段期间暂存原始要点行
}

// Section 简历章节
type Section struct {
	SectionName string   `json:"section_name"` // 原始标题文本（去除首尾空白）
	Entries     []*Entry `json:"entries"`      // 有序条目列表
}

// ScoreBreakdown 三个启发式得分与综合得分
// 均为按请求即时计算的派生值，不做任何持久化
type ScoreBreakdown struct {
	Structural float64  `json:"structural"`         // 结构（STAR）启发式比例 [0,1]
	Depth      float64  `json:"depth"`              // 深度启发式比例 [0,1]
	Pattern    float64  `json:"pattern"`            // 岗位关键词匹配比例 [0,1]
	FinalScore float64  `json:"final_score"`        // 综合得分 [0,1)
	Degraded   []string `json:"degraded,omitempty"` // 因分类器失败而按0计的启发式名称
}

// Report 一次简历分析的完整输出
type Report struct {
	Contacts ContactSet     `json:"contacts"` // 联系方式
	Sections []*Section     `json:"sections"` // 章节→条目→要点层级
	Skills   []string       `json:"skills"`   // 技能列表（词表命中优先，频率排序）
	Score    ScoreBreakdown `json:"score"`    // 质量得分
}

// EmptyReport 返回空但结构完整的报告
// 上游文本提取失败（空文本）时返回它而不是报错
func EmptyReport() *Report {
	return &Report{
		Contacts: ContactSet{Emails: []string{}, Links: []string{}},
		Sections: []*Section{},
		Skills:   []string{},
		Score:    ScoreBreakdown{},
	}
}

// AllBullets 按文档顺序收集报告中的全部要点
// 外部分类器按整批要点调用一次，而不是逐条调用
func (r *Report) AllBullets() []string {
	var bullets []string
	for _, section := range r.Sections {
		for _, entry := range section.Entries {
			bullets = append(bullets, entry.Bullets...)
		}
	}
	return bullets
}
