package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsKnownHeading 大小写与行尾冒号都不影响匹配
func TestIsKnownHeading(t *testing.T) {
	v := NewDefault()

	assert.True(t, v.IsKnownHeading("Work Experience"))
	assert.True(t, v.IsKnownHeading("EDUCATION"))
	assert.True(t, v.IsKnownHeading("Skills:"))
	assert.True(t, v.IsKnownHeading("  Projects  "))
	assert.False(t, v.IsKnownHeading("My Favorite Movies"))
	assert.False(t, v.IsKnownHeading(""))
}

// TestIsStrongActionVerb 大小写不敏感
func TestIsStrongActionVerb(t *testing.T) {
	v := NewDefault()

	assert.True(t, v.IsStrongActionVerb("built"))
	assert.True(t, v.IsStrongActionVerb("Led"))
	assert.True(t, v.IsStrongActionVerb("SPEARHEADED"))
	assert.False(t, v.IsStrongActionVerb("responsible"))
}

// TestKeywordsForRole 已知岗位返回小写关键词，未知岗位返回空
func TestKeywordsForRole(t *testing.T) {
	required, recommended := KeywordsForRole("Backend Developer")
	assert.Contains(t, required, "python")
	assert.Contains(t, required, "rest api")
	assert.Contains(t, recommended, "docker")

	required, recommended = KeywordsForRole("Wizard")
	assert.Nil(t, required)
	assert.Nil(t, recommended)
}

// TestKnownRoles 列表覆盖查找表中的全部岗位
func TestKnownRoles(t *testing.T) {
	roles := KnownRoles()
	assert.Len(t, roles, len(jobRoles))
	assert.Contains(t, roles, "Data Engineer")
}
