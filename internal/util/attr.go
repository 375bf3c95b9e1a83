package util

import (
	"regexp"
)

var dataAttributeRe = regexp.MustCompile(`^data-[a-z0-9][a-z0-9-]*$`)

// IsDataAttribute 判断属性名是否为 data-* 形式（仅小写字母、数字和连字符）
func IsDataAttribute(name string) bool {
	return dataAttributeRe.MatchString(name)
}
