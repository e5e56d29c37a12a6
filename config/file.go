package config

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// AppTag identifies configuration files of this module at the standard
// locations (see schuko.LocateConfig).
const AppTag = "trackcurve"

// Open creates a configuration from a NestedText file. If path is empty, the
// configuration is initialized from the standard locations for AppTag, if
// any. Keys of nested dicts are joined with '.'.
func Open(path string) (*koanfadapter.KConf, error) {
	k := koanf.New(".")
	if path == "" {
		conf := koanfadapter.New(k, AppTag, []string{".nt"})
		conf.InitDefaults()
		return conf, nil
	}
	conf := koanfadapter.New(k, "", nil)
	conf.InitDefaults()
	if err := k.Load(file.Provider(path), koanfadapter.Parser()); err != nil {
		return nil, fmt.Errorf("loading configuration %q: %w", path, err)
	}
	tracer().Infof("configuration loaded from %s", path)
	return conf, nil
}

// LoadFile reads settings from a NestedText file.
func LoadFile(path string) (Settings, error) {
	conf, err := Open(path)
	if err != nil {
		return Defaults(), err
	}
	return Load(conf)
}

// SetupTracing installs the tracing adapter named by key "tracing.adapter"
// as global trace selector and sets the level from key "tracing.level".
// Adapter "go" (the Go standard logger) is always known.
func SetupTracing(conf schuko.Configuration) tracing.Trace {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	adapter := tracing.GetAdapterFromConfiguration(conf, "")
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
	t := tracing.Select(AppTag)
	if conf.IsSet("tracing.level") {
		t.SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("tracing.level")))
	}
	return t
}
