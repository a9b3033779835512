package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/jacs121/text-animator/anim"
	"github.com/jacs121/text-animator/term"
)

type lineConfig struct {
	Text       string   `yaml:"text"`
	Mode       string   `yaml:"mode"`
	IntervalMs int      `yaml:"intervalMs"`
	Color      string   `yaml:"color"`
	Gradient   []string `yaml:"gradient"`
	Bold       bool     `yaml:"bold"`
	Underline  bool     `yaml:"underline"`
}

type demoConfig struct {
	Coordination string       `yaml:"coordination"`
	StaggerMs    int          `yaml:"staggerMs"`
	Spacing      int          `yaml:"spacing"`
	Lines        []lineConfig `yaml:"lines"`
}

func readConfig(configPath string) demoConfig {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var cfg demoConfig
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func defaultConfig() demoConfig {
	return demoConfig{
		Coordination: "staggered",
		StaggerMs:    400,
		Lines: []lineConfig{
			{Text: "Booting animation engine", Mode: "typewriter", Gradient: []string{"#00c0ff", "#ff00c0"}},
			{Text: "Resolving colors", Mode: "scramble", Color: "#80ff80"},
			{Text: "All systems go", Mode: "bounce", Bold: true},
		},
	}
}

func modeFor(name string) anim.Mode {
	switch name {
	case "typewriter", "":
		return anim.Typewriter{}
	case "marquee":
		return anim.Marquee{}
	case "bounce":
		return anim.Bounce{}
	case "scramble":
		return anim.Scramble{}
	case "slide":
		return anim.Slide{}
	case "static":
		return anim.Static{}
	default:
		return anim.Custom(name)
	}
}

func paintFor(lc lineConfig) anim.Paint {
	if len(lc.Gradient) == 2 {
		start, err1 := colorful.Hex(lc.Gradient[0])
		end, err2 := colorful.Hex(lc.Gradient[1])
		if err1 == nil && err2 == nil {
			return anim.Gradient{Start: start, End: end}
		}
	}
	if lc.Color != "" {
		if c, err := colorful.Hex(lc.Color); err == nil {
			return anim.Solid{Color: c}
		}
	}
	return nil
}

func animConfigs(cfg demoConfig) []anim.Config {
	configs := make([]anim.Config, len(cfg.Lines))
	for i, lc := range cfg.Lines {
		interval := anim.DefaultInterval
		if lc.IntervalMs > 0 {
			interval = time.Duration(lc.IntervalMs) * time.Millisecond
		}

		var style anim.Style
		if lc.Bold {
			style |= anim.Bold
		}
		if lc.Underline {
			style |= anim.Underline
		}

		configs[i] = anim.Config{
			Text:     lc.Text,
			Mode:     modeFor(lc.Mode),
			Interval: interval,
			Paint:    paintFor(lc),
			Style:    style,
			Flags:    anim.HideCursor | anim.KeepAnimation | anim.AutoNewline,
		}
	}
	return configs
}

func policyFor(name string) anim.Coordination {
	switch name {
	case "staggered":
		return anim.Staggered
	case "sequential":
		return anim.Sequential
	default:
		return anim.Simultaneous
	}
}

func main() {
	configPath := flag.String("config", "", "YAML config file.")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		cfg = readConfig(*configPath)
	}

	stagger := 400 * time.Millisecond
	if cfg.StaggerMs > 0 {
		stagger = time.Duration(cfg.StaggerMs) * time.Millisecond
	}

	renderer := term.NewMultiRenderer(os.Stdout, len(cfg.Lines), cfg.Spacing)
	multi := anim.NewMulti(animConfigs(cfg),
		anim.WithPolicy(policyFor(cfg.Coordination)),
		anim.WithStagger(stagger),
		anim.WithMultiRenderer(renderer))

	go func() {
		for err := range multi.Bus().Errors() {
			log.Printf("animation error: %v", err)
		}
	}()

	if err := multi.Start(context.Background()); err != nil {
		log.Printf("run finished with errors: %v", err)
	}
	log.Printf("%d lines complete", multi.Lines())
}
