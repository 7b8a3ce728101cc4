package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/scaffold/command/scaffold/common/config"
	"go.scnd.dev/open/scaffold/command/scaffold/index"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/schema"
	"go.scnd.dev/open/scaffold/package/span"
)

const (
	ConfigFileName         = "scaffold.yml"
	DefaultLayoutExtension = "xml"
	DefaultSourceExtension = "kt"
)

var _ index.App = (*App)(nil)

type App struct {
	verbose   *bool
	directory *string
	config    *index.Config
}

type Option struct {
	Verbose    bool
	Directory  string
	ConfigPath string
	Override   *index.Config
}

func (r *App) Verbose() *bool {
	return r.verbose
}

func (r *App) Directory() *string {
	return r.directory
}

func (r *App) Config() *index.Config {
	return r.config
}

func (r *App) Schema() (*schema.Schema, error) {
	path := ""
	if r.config.Schema != nil {
		path = *r.config.Schema
	}
	return schema.Load(path)
}

func New(option *Option) (*App, error) {
	// * resolve working directory
	directory := option.Directory
	if directory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, span.NewError(nil, "unable to resolve working directory", err)
		}
		directory = wd
	}

	// * construct defaults
	cfg := &index.Config{
		Schema:          nil,
		Output:          nil,
		LayoutExtension: gut.Ptr(DefaultLayoutExtension),
		SourceExtension: gut.Ptr(DefaultSourceExtension),
		Strict:          gut.Ptr(false),
	}

	// * merge configuration file, the default location is optional
	configPath := option.ConfigPath
	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(directory, ConfigFileName)
	}
	loaded, err := config.New[index.Config](configPath)
	if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		return nil, span.NewError(nil, "unable to load configuration", err)
	}
	cfg.Merge(loaded)
	cfg.Merge(option.Override)

	// * resolve paths against the working directory
	if cfg.Schema != nil && *cfg.Schema != "" && !filepath.IsAbs(*cfg.Schema) {
		cfg.Schema = gut.Ptr(filepath.Join(directory, *cfg.Schema))
	}
	if cfg.Output == nil || *cfg.Output == "" {
		output, err := InstallDirectory()
		if err != nil {
			return nil, span.NewError(nil, "unable to resolve output directory", err)
		}
		cfg.Output = &output
	} else if !filepath.IsAbs(*cfg.Output) {
		cfg.Output = gut.Ptr(filepath.Join(directory, *cfg.Output))
	}

	// * validate config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &App{
		verbose:   &option.Verbose,
		directory: &directory,
		config:    cfg,
	}, nil
}

// InstallDirectory is the directory holding the running executable.
func InstallDirectory() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", err
	}
	executable, err = filepath.EvalSymlinks(executable)
	if err != nil {
		return "", err
	}
	return filepath.Dir(executable), nil
}
