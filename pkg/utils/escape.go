package utils

import "strings"

var (
	likeEscaper     = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
)

// EscapeLike 转义 SQL LIKE 通配符，配合 ESCAPE '\' 使用
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern 生成按字面匹配子串的 LIKE 模式
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// EscapeWildcard 转义 Elasticsearch wildcard 查询中的特殊字符
func EscapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}
