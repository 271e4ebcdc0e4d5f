package mirror

import (
	"context"
	"path/filepath"

	"hudmirror/pkg/fileutil"
	"hudmirror/pkg/hud"
)

// useGeneric always downloads: without commit metadata the only way to
// detect a change is to hash the content and compare the resulting file
// name with the recorded one. Unchanged downloads are removed again.
func (m *Mirror) useGeneric(ctx context.Context, entry hud.Entry) (Outcome, error) {
	path, err := m.downloader.Download(ctx, m.downloadRequest(entry))
	if err != nil {
		return OutcomeFailed, err
	}
	sha1sum, err := fileutil.SHA1(path)
	if err != nil {
		return OutcomeFailed, err
	}
	renamed, err := fileutil.RenameByHash(path, sha1sum)
	if err != nil {
		return OutcomeFailed, err
	}

	short := filepath.Base(renamed)
	if short != entry.Filename() {
		md5sum, err := fileutil.MD5(renamed)
		if err != nil {
			return OutcomeFailed, err
		}
		m.sink.Emit(UpdatedGenericMessage(entry.Name, md5sum, short))
		return OutcomeUpdated, nil
	}

	if err := fileutil.RemoveDir(filepath.Dir(renamed)); err != nil {
		return OutcomeFailed, err
	}
	m.sink.Emit(UpToDateMessage(entry.Name))
	return OutcomeUpToDate, nil
}
