package entity

import (
	"regexp"
	"strings"
)

// RoleKey identifies a role group in the question-set store
type RoleKey string

const (
	RoleFrontend        RoleKey = "frontend"
	RoleBackend         RoleKey = "backend"
	RoleFullstack       RoleKey = "fullstack"
	RoleDevOps          RoleKey = "devops"
	RoleAIEngineer      RoleKey = "ai_engineer"
	RoleMobileDeveloper RoleKey = "mobile_developer"
)

// RoleKeys lists the supported role groups in display order
var RoleKeys = []RoleKey{
	RoleFrontend,
	RoleBackend,
	RoleFullstack,
	RoleDevOps,
	RoleAIEngineer,
	RoleMobileDeveloper,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeRole lower-cases role and replaces every whitespace run with "_".
func NormalizeRole(role string) RoleKey {
	return RoleKey(whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(role)), "_"))
}

func (k RoleKey) IsValid() bool {
	for _, known := range RoleKeys {
		if k == known {
			return true
		}
	}
	return false
}

func RoleKeyNames() []string {
	names := make([]string, len(RoleKeys))
	for i, k := range RoleKeys {
		names[i] = string(k)
	}
	return names
}
