package vocab

import "strings"

// RecommendedSkills 目标岗位的推荐技能，分为技术类与软技能两组
type RecommendedSkills struct {
	Technical []string // 技术类推荐技能
	Soft      []string // 软技能（当前打分不使用，仅保留数据）
}

// RoleProfile 目标岗位的关键词画像
type RoleProfile struct {
	RequiredSkills    []string          // 必备技能
	RecommendedSkills RecommendedSkills // 推荐技能
}

// jobRoles 岗位→关键词画像查找表，进程内只读
var jobRoles = map[string]RoleProfile{
	"Backend Developer": {
		RequiredSkills: []string{"Python", "Java", "SQL", "REST API"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"Docker", "Kubernetes", "Redis", "Microservices", "PostgreSQL"},
			Soft:      []string{"Communication", "Problem Solving"},
		},
	},
	"Frontend Developer": {
		RequiredSkills: []string{"JavaScript", "HTML", "CSS", "React"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"TypeScript", "Next.js", "GraphQL", "Webpack"},
			Soft:      []string{"Attention to Detail", "Collaboration"},
		},
	},
	"Full Stack Developer": {
		RequiredSkills: []string{"JavaScript", "SQL", "React", "Node.js"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"TypeScript", "Docker", "REST API", "MongoDB"},
			Soft:      []string{"Adaptability", "Communication"},
		},
	},
	"Data Engineer": {
		RequiredSkills: []string{"Python", "SQL", "ETL", "Spark"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"Airflow", "Kafka", "Hadoop", "AWS", "Data Warehouse"},
			Soft:      []string{"Analytical Thinking"},
		},
	},
	"Data Scientist": {
		RequiredSkills: []string{"Python", "Machine Learning", "Statistics", "SQL"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"TensorFlow", "PyTorch", "Pandas", "Scikit-learn", "Deep Learning"},
			Soft:      []string{"Storytelling", "Curiosity"},
		},
	},
	"DevOps Engineer": {
		RequiredSkills: []string{"Linux", "Docker", "Kubernetes", "CI/CD"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"Terraform", "Ansible", "AWS", "Jenkins", "Bash"},
			Soft:      []string{"Incident Response"},
		},
	},
	"Machine Learning Engineer": {
		RequiredSkills: []string{"Python", "Machine Learning", "Deep Learning", "PyTorch"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"TensorFlow", "Kubernetes", "MLOps", "Spark", "Natural Language Processing"},
			Soft:      []string{"Research Mindset"},
		},
	},
	"Mobile Developer": {
		RequiredSkills: []string{"Swift", "Kotlin", "Mobile Development"},
		RecommendedSkills: RecommendedSkills{
			Technical: []string{"React Native", "Flutter", "REST API", "Firebase"},
			Soft:      []string{"User Empathy"},
		},
	},
}

// KeywordsForRole 返回指定岗位的必备/推荐（技术类）关键词，全部转为小写
// 未知岗位返回两个空列表而不是错误
func KeywordsForRole(role string) (required []string, recommended []string) {
	profile, ok := jobRoles[role]
	if !ok {
		return nil, nil
	}
	for _, kw := range profile.RequiredSkills {
		required = append(required, strings.ToLower(kw))
	}
	for _, kw := range profile.RecommendedSkills.Technical {
		recommended = append(recommended, strings.ToLower(kw))
	}
	return required, recommended
}

// KnownRoles 返回查找表中所有岗位名称（无序）
func KnownRoles() []string {
	roles := make([]string, 0, len(jobRoles))
	for role := range jobRoles {
		roles = append(roles, role)
	}
	return roles
}
