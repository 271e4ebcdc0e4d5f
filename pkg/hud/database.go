package hud

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrDatabaseNotFound = errors.New("hud database not found")
	ErrMissingElement   = errors.New("missing required element")
)

// TimeLayout is the layout of LastUpdate values given as dates.
const TimeLayout = "2006-01-02T15:04:05Z"

type xmlDatabase struct {
	HUDs []xmlHUD `xml:"HUD"`
}

type xmlHUD struct {
	InstallDir *string `xml:"InstallDir"`
	UpURI      *string `xml:"UpURI"`
	RepoPath   *string `xml:"RepoPath"`
	LastUpdate *string `xml:"LastUpdate"`
	URI        *string `xml:"URI"`
	Checksum   *string `xml:"Checksum"`
}

// ReadDatabase loads the HUD database at path, preserving document order.
func ReadDatabase(path string) ([]Entry, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
		}
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrDatabaseNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := ParseDatabase(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entries, nil
}

// ParseDatabase decodes a HUD database document.
func ParseDatabase(r io.Reader) ([]Entry, error) {
	var db xmlDatabase
	if err := decodeHUDs(r, &db); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(db.HUDs))
	seen := map[string]int{}
	for i, h := range db.HUDs {
		e, err := h.entry()
		if err != nil {
			return nil, fmt.Errorf("HUD #%d: %w", i+1, err)
		}
		if prev, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("HUD #%d: duplicate InstallDir %q (first seen at #%d)", i+1, e.Name, prev)
		}
		seen[e.Name] = i + 1
		entries = append(entries, e)
	}
	return entries, nil
}

// decodeHUDs collects every <HUD> element regardless of nesting depth.
func decodeHUDs(r io.Reader, db *xmlDatabase) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "HUD" {
			continue
		}
		var h xmlHUD
		if err := dec.DecodeElement(&h, &start); err != nil {
			return err
		}
		db.HUDs = append(db.HUDs, h)
	}
}

func (h xmlHUD) entry() (Entry, error) {
	name, err := required("InstallDir", h.InstallDir)
	if err != nil {
		return Entry{}, err
	}
	if err := validateName(name); err != nil {
		return Entry{}, err
	}
	upURI, err := required("UpURI", h.UpURI)
	if err != nil {
		return Entry{}, err
	}
	repoPath, err := required("RepoPath", h.RepoPath)
	if err != nil {
		return Entry{}, err
	}
	lastUpdateRaw, err := required("LastUpdate", h.LastUpdate)
	if err != nil {
		return Entry{}, err
	}
	lastUpdate, err := ParseLastUpdate(lastUpdateRaw)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", name, err)
	}
	uri, err := required("URI", h.URI)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		Name:        name,
		UpstreamURI: upURI,
		RepoPath:    repoPath,
		LastUpdate:  lastUpdate,
		SourceURI:   uri,
	}
	if h.Checksum != nil {
		e.Checksum = strings.TrimSpace(*h.Checksum)
	}
	return e, nil
}

func required(element string, value *string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingElement, element)
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrMissingElement, element)
	}
	return v, nil
}

// ParseLastUpdate accepts either Unix seconds or a UTC date in TimeLayout.
func ParseLastUpdate(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid LastUpdate %q", s)
	}
	return t.Unix(), nil
}

func validateName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`+"\x00") {
		return fmt.Errorf("invalid InstallDir %q", name)
	}
	return nil
}
