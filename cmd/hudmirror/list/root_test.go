package list

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListPrintsEntries(t *testing.T) {
	t.Setenv("HUDMIRROR_CONFIG", filepath.Join(t.TempDir(), "none.toml"))

	dbPath := filepath.Join(t.TempDir(), "huds.xml")
	content := `<Game>
<HUD><InstallDir>flamehud</InstallDir><UpURI>u</UpURI><RepoPath>https://github.com/Flame/flamehud</RepoPath><LastUpdate>1577836800</LastUpdate><URI>https://m.example.com/flamehud_01234567.zip</URI></HUD>
<HUD><InstallDir>yahud</InstallDir><UpURI>u</UpURI><RepoPath>None</RepoPath><LastUpdate>0</LastUpdate><URI>yahud_89abcdef.zip</URI></HUD>
</Game>`
	if err := os.WriteFile(dbPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--db", dbPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got:\n%s", out.String())
	}
	if !strings.Contains(lines[1], "flamehud") || !strings.Contains(lines[1], "github") || !strings.Contains(lines[1], "2020-01-01T00:00:00Z") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "yahud") || !strings.Contains(lines[2], "generic") || !strings.Contains(lines[2], "yahud_89abcdef.zip") {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestListMissingDatabase(t *testing.T) {
	t.Setenv("HUDMIRROR_CONFIG", filepath.Join(t.TempDir(), "none.toml"))

	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", filepath.Join(t.TempDir(), "missing.xml")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error")
	}
}

func TestListHasNoOutDirFlag(t *testing.T) {
	cmd := NewCommand()
	if cmd.Flags().Lookup("outdir") != nil {
		t.Fatal("list must not accept --outdir")
	}
	if cmd.Flags().Lookup("db") == nil {
		t.Fatal("list must accept --db")
	}
}
