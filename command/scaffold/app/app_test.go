package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bsthun/gut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/scaffold/command/scaffold/index"
	"go.scnd.dev/open/scaffold/command/scaffold/procedure/generator"
	"go.uber.org/fx"
)

func TestNewDefaults(t *testing.T) {
	directory := t.TempDir()

	app, err := New(&Option{Directory: directory})
	require.NoError(t, err)

	assert.Equal(t, directory, *app.Directory())
	assert.False(t, *app.Verbose())
	assert.Equal(t, DefaultLayoutExtension, *app.Config().LayoutExtension)
	assert.Equal(t, DefaultSourceExtension, *app.Config().SourceExtension)
	assert.False(t, *app.Config().Strict)

	install, err := InstallDirectory()
	require.NoError(t, err)
	assert.Equal(t, install, *app.Config().Output)
}

func TestNewConfigFileAndOverride(t *testing.T) {
	directory := t.TempDir()
	content := "output: build\nsource_extension: java\nstrict: true\nschema: views.yml\n"
	require.NoError(t, os.WriteFile(filepath.Join(directory, ConfigFileName), []byte(content), 0644))

	app, err := New(&Option{
		Directory: directory,
		Override: &index.Config{
			SourceExtension: gut.Ptr("kt"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(directory, "build"), *app.Config().Output)
	assert.Equal(t, filepath.Join(directory, "views.yml"), *app.Config().Schema)
	assert.Equal(t, "kt", *app.Config().SourceExtension)
	assert.True(t, *app.Config().Strict)
}

func TestNewMissingExplicitConfig(t *testing.T) {
	_, err := New(&Option{
		Directory:  t.TempDir(),
		ConfigPath: filepath.Join(t.TempDir(), "absent.yml"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(&Option{
		Directory: t.TempDir(),
		Override: &index.Config{
			LayoutExtension: gut.Ptr("../xml"),
		},
	})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestModuleGenerates(t *testing.T) {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "views.json"), []byte(`{"packageName": "com.example", "views": {"dashboard": ["Dashboard", "Settings"]}}`), 0644))

	app, err := New(&Option{
		Directory: directory,
		Override: &index.Config{
			Schema: gut.Ptr("views.json"),
			Output: gut.Ptr("out"),
		},
	})
	require.NoError(t, err)

	var g *generator.Generator
	application := fx.New(app.Module(), fx.Populate(&g))
	require.NoError(t, application.Err())

	ctx := context.Background()
	require.NoError(t, application.Start(ctx))
	report, err := g.Generate(ctx)
	require.NoError(t, err)
	require.NoError(t, application.Stop(ctx))

	assert.Equal(t, 2, report.Views)
	for _, file := range []string{
		"generated/layout/view_dashboard.xml",
		"generated/layout/view_settings.xml",
		"generated/views/dashboard/DashboardView.kt",
		"generated/views/dashboard/SettingsView.kt",
	} {
		_, err := os.Stat(filepath.Join(directory, "out", file))
		assert.NoError(t, err, file)
	}
}

func TestModuleMalformedSchemaCreatesNothing(t *testing.T) {
	payloads := map[string]string{
		"truncated":        `{"packageName": "p", "views": [`,
		"extra brace":      `{"packageName": "p", "views": "X"}}`,
		"trailing garbage": `{"packageName": "p", "views": "X"} garbage`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			directory := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(directory, "views.json"), []byte(payload), 0644))

			app, err := New(&Option{
				Directory: directory,
				Override: &index.Config{
					Schema: gut.Ptr("views.json"),
					Output: gut.Ptr("out"),
				},
			})
			require.NoError(t, err)

			var g *generator.Generator
			application := fx.New(app.Module(), fx.Populate(&g))
			assert.ErrorContains(t, application.Err(), "malformed schema")

			_, err = os.Stat(filepath.Join(directory, "out"))
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}
