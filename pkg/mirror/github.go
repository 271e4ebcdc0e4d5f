package mirror

import (
	"context"
	"path/filepath"

	"hudmirror/pkg/fileutil"
	"hudmirror/pkg/hud"
	"hudmirror/pkg/logging"
)

// useGitHub downloads the archive only when the latest commit is newer than
// the recorded LastUpdate. The new timestamp is reported, never stored.
func (m *Mirror) useGitHub(ctx context.Context, entry hud.Entry) (Outcome, error) {
	commit, err := m.commits.LatestCommit(ctx, entry.RepoPath)
	if err != nil {
		return OutcomeFailed, err
	}
	if commit.Time <= entry.LastUpdate {
		m.sink.Emit(UpToDateMessage(entry.Name))
		return OutcomeUpToDate, nil
	}

	logging.GetLogger(ctx).Info("new commit found", "hud", entry.Name, "sha", commit.SHA, "timestamp", commit.Time)
	path, err := m.downloader.Download(ctx, m.downloadRequest(entry))
	if err != nil {
		return OutcomeFailed, err
	}
	renamed, err := fileutil.RenameByHash(path, commit.SHA)
	if err != nil {
		return OutcomeFailed, err
	}
	md5sum, err := fileutil.MD5(renamed)
	if err != nil {
		return OutcomeFailed, err
	}
	m.sink.Emit(UpdatedGitHubMessage(entry.Name, md5sum, commit.Time, filepath.Base(renamed)))
	return OutcomeUpdated, nil
}
