package safemd

import (
	"fmt"
	"strings"

	"github.com/riverfjs/safemd-go/internal/converter"
	"github.com/riverfjs/safemd-go/internal/parser"
	"github.com/riverfjs/safemd-go/internal/types"
	"github.com/riverfjs/safemd-go/internal/verify"
)

// render 完整管道：RawInput → CodeExtracted → LinkExtracted → Formatted → Final
//
// 步骤：
// 1. 提取围栏代码块为 span 引用
// 2. 在剩余文本中提取 http/https 链接为 span 引用
// 3. 按行分类（列表/普通行）并解析行内格式
// 4. 输出 HTML：文本叶子转义，引用按索引查表输出
// 5. 可选：bluemonday 清洗；严格模式下校验输出
func render(input string, opts *RenderOptions) (string, *types.Spans) {
	config := opts.Config
	if config == nil {
		config = DefaultConfig()
	}

	input = strings.ToValidUTF8(input, "\uFFFD")

	nodes, spans := parser.Extract(input)
	lines := converter.Format(nodes)

	writer := converter.NewWriter(spans, config)
	writer.Logger = Logger
	out := writer.Write(lines)

	if config.Sanitize {
		out = SanitizeWithConfig(out, config)
	}

	if config.Strict {
		if err := verify.Check(out, verify.OptionsFor(config)); err != nil {
			panic(fmt.Errorf("safemd: rendered markup failed verification: %w", err))
		}
	}

	return out, spans
}
