package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-tui-behaviors/widgets"
)

type recorded struct {
	cfg  Config
	demo demo
}

func execute(t *testing.T, args ...string) (recorded, string, error) {
	t.Helper()
	var got recorded
	run := func(cfg Config, d demo) error {
		got = recorded{cfg: cfg, demo: d}
		return nil
	}
	var out bytes.Buffer
	root := newCLI(run).rootCommand(&out)
	root.SetArgs(args)
	err := root.Execute()
	return got, out.String(), err
}

func TestRoot_Tabs(t *testing.T) {
	type tc struct {
		args         []string
		wantPosition widgets.TabPosition
		wantWrap     bool
		wantPages    int
	}

	tests := map[string]tc{
		"defaults": {
			args:         []string{"tabs"},
			wantPosition: widgets.TabsTop,
			wantPages:    3,
		},
		"flags": {
			args:         []string{"tabs", "--position", "right", "--wrap", "--pages", "one,two"},
			wantPosition: widgets.TabsRight,
			wantWrap:     true,
			wantPages:    2,
		},
		"tcell backend": {
			args:         []string{"--backend", "tcell", "tabs", "--position", "bottom"},
			wantPosition: widgets.TabsBottom,
			wantPages:    3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, _, err := execute(t, tt.args...)
			require.NoError(t, err)

			ts, ok := got.demo.(*widgets.TabStrip)
			require.True(t, ok, "tabs should run a TabStrip")
			assert.Equal(t, tt.wantPosition, ts.Position())
			assert.Equal(t, tt.wantWrap, ts.Host().SelectionWraps())
			assert.Len(t, ts.Pages(), tt.wantPages)
			assert.Equal(t, 0, ts.Host().SelectedIndex())
		})
	}
}

func TestRoot_Modes(t *testing.T) {
	got, _, err := execute(t, "modes", "--names", "edit,preview")
	require.NoError(t, err)

	d, ok := got.demo.(*modesDemo)
	require.True(t, ok)
	assert.Equal(t, []string{"edit", "preview"}, got.cfg.Modes.Names)
	assert.Equal(t, "edit", d.modes.Visible().ID())
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "behaviors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tabs:\n  position: left\n"), 0o644))

	got, _, err := execute(t, "--config", path, "tabs")
	require.NoError(t, err)
	assert.Equal(t, "left", got.cfg.Tabs.Position)

	// Flags override the file.
	got, _, err = execute(t, "--config", path, "tabs", "--position", "bottom")
	require.NoError(t, err)
	assert.Equal(t, "bottom", got.cfg.Tabs.Position)
}

func TestRoot_Errors(t *testing.T) {
	type tc struct {
		args    []string
		wantErr string
	}

	tests := map[string]tc{
		"bad backend":  {args: []string{"--backend", "curses", "tabs"}, wantErr: "unknown backend"},
		"bad position": {args: []string{"tabs", "--position", "middle"}, wantErr: "unknown tab position"},
		"extra args":   {args: []string{"modes", "extra"}, wantErr: "unknown command"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, got.demo)
		})
	}
}

func TestRoot_Version(t *testing.T) {
	_, out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "behaviors "+version+"\n", out)
}
