package mahjong

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var ErrInvalidRule = errors.New("invalid rule")

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Rule 牌局规则，由 yaml 或命令行加载
type Rule struct {
	Banker      int32  `mapstructure:"banker"`       // 庄家座位
	ShuffleSeed int64  `mapstructure:"shuffle_seed"` // 洗牌种子，0 表示按时间
	DiscardSeed int64  `mapstructure:"discard_seed"` // 出牌种子，0 表示按时间
	InitCard    string `mapstructure:"initcard"`     // 配牌文件
	Format      string `mapstructure:"format"`       // text / json
}

func NewRule() *Rule {
	return &Rule{
		Banker: 0,
		Format: FormatText,
	}
}

// SetRuleDefaults 注册默认值，使 viper 能识别未出现在配置文件中的键
func SetRuleDefaults(vp *viper.Viper) {
	def := NewRule()
	vp.SetDefault("banker", def.Banker)
	vp.SetDefault("shuffle_seed", def.ShuffleSeed)
	vp.SetDefault("discard_seed", def.DiscardSeed)
	vp.SetDefault("initcard", def.InitCard)
	vp.SetDefault("format", def.Format)
}

func LoadRule(vp *viper.Viper) (*Rule, error) {
	SetRuleDefaults(vp)
	rule := NewRule()
	if err := vp.Unmarshal(rule); err != nil {
		return nil, fmt.Errorf("unmarshal rule: %w", err)
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// ReadRuleFile 从 yaml 文件加载规则
func ReadRuleFile(file string) (*Rule, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(file)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule %s: %w", file, err)
	}
	return LoadRule(vp)
}

func (r *Rule) Validate() error {
	if r.Banker < 0 || r.Banker >= NP4 {
		return fmt.Errorf("banker %d out of range: %w", r.Banker, ErrInvalidRule)
	}
	if r.Format != FormatText && r.Format != FormatJSON {
		return fmt.Errorf("unknown format %q: %w", r.Format, ErrInvalidRule)
	}
	return nil
}
