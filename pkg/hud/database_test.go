package hud

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDatabase = `<?xml version="1.0" encoding="UTF-8"?>
<Game>
  <HUD>
    <Name>Flame HUD</Name>
    <InstallDir>flamehud</InstallDir>
    <UpURI>https://github.com/Flame/flamehud/archive/master.zip</UpURI>
    <RepoPath>https://github.com/Flame/flamehud</RepoPath>
    <LastUpdate>2020-01-01T00:00:00Z</LastUpdate>
    <URI>https://mirror.example.com/huds/flamehud_0a1b2c3d.zip</URI>
  </HUD>
  <HUD>
    <InstallDir>yahud</InstallDir>
    <UpURI>https://files.example.com/yahud.zip</UpURI>
    <RepoPath>None</RepoPath>
    <LastUpdate>1500000000</LastUpdate>
    <URI>https://mirror.example.com/huds/yahud_deadbeef.zip</URI>
    <Checksum>sha256:00ff</Checksum>
  </HUD>
</Game>
`

func TestReadDatabasePreservesOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "huds.xml")
	if err := os.WriteFile(dbPath, []byte(sampleDatabase), 0644); err != nil {
		t.Fatalf("write db: %v", err)
	}

	entries, err := ReadDatabase(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got=%d", len(entries))
	}

	first := entries[0]
	if first.Name != "flamehud" {
		t.Fatalf("name mismatch: got=%q", first.Name)
	}
	if first.LastUpdate != 1577836800 {
		t.Fatalf("last update mismatch: got=%d", first.LastUpdate)
	}
	if first.Kind() != GitHubSource {
		t.Fatalf("expected github source, got=%s", first.Kind())
	}
	if first.Filename() != "flamehud_0a1b2c3d.zip" {
		t.Fatalf("filename mismatch: got=%q", first.Filename())
	}

	second := entries[1]
	if second.Name != "yahud" || second.LastUpdate != 1500000000 {
		t.Fatalf("unexpected second entry: %+v", second)
	}
	if second.Kind() != GenericSource {
		t.Fatalf("expected generic source, got=%s", second.Kind())
	}
	if second.Checksum != "sha256:00ff" {
		t.Fatalf("checksum mismatch: got=%q", second.Checksum)
	}
}

func TestReadDatabaseNotFound(t *testing.T) {
	t.Parallel()

	_, err := ReadDatabase(filepath.Join(t.TempDir(), "missing.xml"))
	if !errors.Is(err, ErrDatabaseNotFound) {
		t.Fatalf("expected ErrDatabaseNotFound, got=%v", err)
	}
}

func TestParseDatabaseMissingElement(t *testing.T) {
	t.Parallel()

	doc := `<Game><HUD>
  <InstallDir>broken</InstallDir>
  <UpURI>https://example.com/a.zip</UpURI>
  <RepoPath>None</RepoPath>
  <URI>https://example.com/a_1.zip</URI>
</HUD></Game>`

	_, err := ParseDatabase(strings.NewReader(doc))
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("expected ErrMissingElement, got=%v", err)
	}
	if !strings.Contains(err.Error(), "LastUpdate") {
		t.Fatalf("error should name the element: %v", err)
	}
}

func TestParseDatabaseEmptyElement(t *testing.T) {
	t.Parallel()

	doc := `<Game><HUD>
  <InstallDir>broken</InstallDir>
  <UpURI></UpURI>
  <RepoPath>None</RepoPath>
  <LastUpdate>0</LastUpdate>
  <URI>https://example.com/a_1.zip</URI>
</HUD></Game>`

	_, err := ParseDatabase(strings.NewReader(doc))
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("expected ErrMissingElement, got=%v", err)
	}
}

func TestParseDatabaseRejectsUnsafeAndDuplicateNames(t *testing.T) {
	t.Parallel()

	hud := func(name string) string {
		return `<HUD><InstallDir>` + name + `</InstallDir><UpURI>u</UpURI><RepoPath>r</RepoPath><LastUpdate>0</LastUpdate><URI>x</URI></HUD>`
	}

	for _, doc := range []string{
		"<Game>" + hud("../escape") + "</Game>",
		"<Game>" + hud("..") + "</Game>",
		"<Game>" + hud("same") + hud("same") + "</Game>",
	} {
		if _, err := ParseDatabase(strings.NewReader(doc)); err == nil {
			t.Fatalf("expected error for %s", doc)
		}
	}
}

func TestParseLastUpdate(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"0":                    0,
		"1577836800":           1577836800,
		"1970-01-01T00:00:00Z": 0,
		"2020-01-01T00:00:00Z": 1577836800,
	}
	for in, want := range cases {
		got, err := ParseLastUpdate(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got=%d want=%d", in, got, want)
		}
	}
	if _, err := ParseLastUpdate("yesterday"); err == nil {
		t.Fatal("expected error for invalid value")
	}
}
