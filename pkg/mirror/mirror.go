package mirror

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"hudmirror/pkg/download"
	"hudmirror/pkg/github"
	"hudmirror/pkg/hud"
	"hudmirror/pkg/logging"
)

// CommitSource looks up the newest commit of a GitHub repository.
type CommitSource interface {
	LatestCommit(ctx context.Context, repoURL string) (github.Commit, error)
}

type Options struct {
	Database   string
	OutDir     string
	Commits    CommitSource
	Downloader download.Downloader
	Sink       logging.Sink
	// Only restricts the run to the named entries when non-empty.
	Only []string
}

// Outcome is the result of processing one entry.
type Outcome int

const (
	OutcomeUpToDate Outcome = iota
	OutcomeUpdated
	OutcomeFailed
)

// Report counts outcomes of a run.
type Report struct {
	Updated  []string
	UpToDate []string
	Failed   []string
}

func (r Report) Total() int {
	return len(r.Updated) + len(r.UpToDate) + len(r.Failed)
}

type Mirror struct {
	entries    []hud.Entry
	outDir     string
	commits    CommitSource
	downloader download.Downloader
	sink       logging.Sink
	only       []string
}

// New reads the database right away, so a missing or malformed database
// fails before any network or filesystem activity.
func New(opts Options) (*Mirror, error) {
	if opts.Commits == nil || opts.Downloader == nil || opts.Sink == nil {
		return nil, fmt.Errorf("mirror requires a commit source, a downloader and a sink")
	}
	entries, err := hud.ReadDatabase(opts.Database)
	if err != nil {
		if errors.Is(err, hud.ErrDatabaseNotFound) {
			opts.Sink.Emit(DatabaseNotFoundMessage(opts.Database))
		}
		return nil, err
	}
	return &Mirror{
		entries:    entries,
		outDir:     opts.OutDir,
		commits:    opts.Commits,
		downloader: opts.Downloader,
		sink:       opts.Sink,
		only:       opts.Only,
	}, nil
}

// Entries returns a copy of the loaded database entries.
func (m *Mirror) Entries() []hud.Entry {
	return slices.Clone(m.entries)
}

// Run processes every entry in order. Failures of one entry are reported and
// do not stop the others; only context cancellation aborts the run.
func (m *Mirror) Run(ctx context.Context) (Report, error) {
	logger := logging.GetLogger(ctx)
	var report Report
	for _, entry := range m.entries {
		if len(m.only) > 0 && !slices.Contains(m.only, entry.Name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		logger.Debug("processing hud", "hud", entry.Name, "source", entry.Kind())
		outcome, err := m.handle(ctx, entry)
		if err != nil {
			m.sink.Emit(ErrorMessage(entry.Name, err))
			logger.Debug("hud failed", "hud", entry.Name, "error", err)
			outcome = OutcomeFailed
		}
		switch outcome {
		case OutcomeUpdated:
			report.Updated = append(report.Updated, entry.Name)
		case OutcomeUpToDate:
			report.UpToDate = append(report.UpToDate, entry.Name)
		default:
			report.Failed = append(report.Failed, entry.Name)
		}
	}
	logger.Info("mirror run finished",
		"updated", len(report.Updated),
		"up_to_date", len(report.UpToDate),
		"failed", len(report.Failed),
	)
	return report, nil
}

func (m *Mirror) handle(ctx context.Context, entry hud.Entry) (Outcome, error) {
	switch entry.Kind() {
	case hud.GitHubSource:
		return m.useGitHub(ctx, entry)
	default:
		return m.useGeneric(ctx, entry)
	}
}

func (m *Mirror) downloadRequest(entry hud.Entry) download.Request {
	return download.Request{
		URL:      entry.UpstreamURI,
		Name:     entry.Name,
		OutDir:   m.outDir,
		Checksum: entry.Checksum,
	}
}
