package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kevin-chtw/tw_onesuit/mahjong"
	"github.com/kevin-chtw/tw_onesuit/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	vp, err := loadConfig(args)
	if err != nil {
		return err
	}

	l, err := utils.Logger(utils.ParseLevel(vp.GetString("log_level")), vp.GetString("log_dir"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetLogger(l)

	rule, err := mahjong.LoadRule(vp)
	if err != nil {
		return err
	}
	logger.Log.Infof("rule: banker=%d shuffle_seed=%d discard_seed=%d initcard=%q",
		rule.Banker, rule.ShuffleSeed, rule.DiscardSeed, rule.InitCard)

	game, err := mahjong.NewGame(rule, mahjong.NewSender(out, rule.Format))
	if err != nil {
		return err
	}
	game.Run()
	return nil
}

func loadConfig(args []string) (*viper.Viper, error) {
	fs := pflag.NewFlagSet("onesuit", pflag.ContinueOnError)
	fs.String("config", "", "rule yaml file")
	fs.Int32("banker", 0, "banker seat (0-3)")
	fs.Int64("shuffle-seed", 0, "wall shuffle seed, 0 for time based")
	fs.Int64("discard-seed", 0, "discard choice seed, 0 for time based")
	fs.String("initcard", "", "preset hands yaml file")
	fs.String("format", mahjong.FormatText, "report format: text or json")
	fs.String("log-level", "warn", "log level")
	fs.String("log-dir", "", "rotate logs into this directory instead of stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	vp := viper.New()
	mahjong.SetRuleDefaults(vp)
	vp.SetDefault("log_level", "warn")
	vp.SetDefault("log_dir", "")

	if file, _ := fs.GetString("config"); file != "" {
		vp.SetConfigType("yaml")
		vp.SetConfigFile(file)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	// 命令行显式指定的参数覆盖配置文件
	bindings := map[string]string{
		"banker":       "banker",
		"shuffle_seed": "shuffle-seed",
		"discard_seed": "discard-seed",
		"initcard":     "initcard",
		"format":       "format",
		"log_level":    "log-level",
		"log_dir":      "log-dir",
	}
	for key, flag := range bindings {
		if err := vp.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}
	return vp, nil
}
