package safemd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/riverfjs/safemd-go/internal/types"
	"github.com/riverfjs/safemd-go/internal/util"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

// ErrInvalidLangAttribute is returned when lang_attribute is not a plain
// lowercase data-* attribute name.
var ErrInvalidLangAttribute = errors.New("lang_attribute must match ^data-[a-z0-9][a-z0-9-]*$")

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns a copy of the default render configuration.
//
// The defaults are built once; each call returns its own copy so callers can
// adjust it without affecting other renders.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	cfg := *defaultConfig
	return &cfg
}

// ValidateConfig 检查配置是否合法
func ValidateConfig(config *RenderConfig) error {
	if config == nil {
		return nil
	}
	if !util.IsDataAttribute(config.LangAttribute) {
		return fmt.Errorf("invalid lang_attribute %q: %w", config.LangAttribute, ErrInvalidLangAttribute)
	}
	return nil
}

// LoadConfig 从 TOML 文件加载配置，未设置的字段保留默认值
//
// Example file:
//
//	lang_attribute = "data-language"
//	highlight = true
//	sanitize = false
//	strict = false
func LoadConfig(path string) (*RenderConfig, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Logger.Printf("config %s: ignoring unknown keys %v", path, undecoded)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig is LoadConfig for TOML held in memory.
func ParseConfig(data string) (*RenderConfig, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
