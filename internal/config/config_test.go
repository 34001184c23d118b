package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peterldowns/testy/check"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	check.Nil(t, err)

	check.Equal(t, 3, cfg.Winners)
	check.Equal(t, "text", cfg.Format)
	check.Equal(t, "", cfg.RecordDir)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("OPENDRAW_WINNERS", "5")
	t.Setenv("OPENDRAW_FORMAT", "json")

	cfg, err := Load()
	check.Nil(t, err)

	check.Equal(t, 5, cfg.Winners)
	check.Equal(t, "json", cfg.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	dir, err := os.Getwd()
	check.Nil(t, err)
	err = os.WriteFile(filepath.Join(dir, "opendraw.yaml"),
		[]byte("winners: 7\nrecord_dir: records\n"), 0o644)
	check.Nil(t, err)

	cfg, err := Load()
	check.Nil(t, err)

	check.Equal(t, 7, cfg.Winners)
	check.Equal(t, "text", cfg.Format)
	check.Equal(t, "records", cfg.RecordDir)
}

func TestLoad_InvalidWinners(t *testing.T) {
	isolate(t)
	t.Setenv("OPENDRAW_WINNERS", "0")

	_, err := Load()
	check.NotNil(t, err)
}

func TestLoad_InvalidFormat(t *testing.T) {
	isolate(t)
	t.Setenv("OPENDRAW_FORMAT", "xml")

	_, err := Load()
	check.NotNil(t, err)
}
