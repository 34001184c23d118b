package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peterldowns/testy/check"

	"github.com/opendraw/opendraw/core"
	"github.com/opendraw/opendraw/drawapi"
)

func TestSlotOdds(t *testing.T) {
	check.Equal(t, "0.1000", slotOdds(10))
	check.Equal(t, "0.3333", slotOdds(3))
	check.Equal(t, "1.0000", slotOdds(1))
}

func TestLoadParticipants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.txt")
	err := os.WriteFile(path, []byte("  Alice \n\nBob\nCharlie\n"), 0o644)
	check.Nil(t, err)

	names, err := loadParticipants(path)
	check.Nil(t, err)
	check.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
}

func TestLoadParticipants_MissingFile(t *testing.T) {
	_, err := loadParticipants(filepath.Join(t.TempDir(), "nope.txt"))
	check.NotNil(t, err)
}

func TestRecordWriteReadRoundTrip(t *testing.T) {
	result, err := core.RunDraw([]string{"Alice", "Bob", "Charlie"}, "43", 2)
	check.Nil(t, err)
	rec := drawapi.NewDrawRecord(result, "43", 2)

	for _, name := range []string{"rec.json", "rec.cbor"} {
		path := filepath.Join(t.TempDir(), name)
		check.Nil(t, writeRecord(rec, path))

		got, err := readRecord(path)
		check.Nil(t, err)
		check.Equal(t, rec.ID, got.ID)
		check.Equal(t, rec.Digest, got.Digest)
		check.Equal(t, rec.Winners, got.Winners)
	}
}
