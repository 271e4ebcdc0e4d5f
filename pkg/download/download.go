package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"hudmirror/pkg/driver/httpclient"
	"hudmirror/pkg/fileutil"
	"hudmirror/pkg/logging"
)

// Request describes one archive download.
type Request struct {
	URL    string
	Name   string
	OutDir string
	// Checksum optionally pins the content as "<algo>:<hex>".
	Checksum string
}

// Downloader fetches an archive into OutDir/Name/Name.zip and returns the path.
type Downloader interface {
	Download(ctx context.Context, req Request) (string, error)
}

// HTTPDownloader streams archives over HTTP.
type HTTPDownloader struct {
	HTTP httpclient.Driver
	// Progress receives a byte progress bar; nil disables it.
	Progress io.Writer
}

// TargetPath is where an archive for name lands before it is renamed.
func TargetPath(outDir, name string) string {
	return filepath.Join(outDir, name, name+".zip")
}

func (d *HTTPDownloader) Download(ctx context.Context, req Request) (string, error) {
	dir := filepath.Join(req.OutDir, req.Name)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	target := TargetPath(req.OutDir, req.Name)

	out, err := os.Create(target)
	if err != nil {
		return "", err
	}

	err = d.fetchDirect(ctx, req, out)
	closeErr := out.Close()
	if err != nil {
		_ = os.Remove(target)
		return "", err
	}
	if closeErr != nil {
		_ = os.Remove(target)
		return "", closeErr
	}
	if req.Checksum != "" {
		checkPin(ctx, req, target)
	}
	return target, nil
}

// checkPin compares the download with the pinned checksum. The pin records
// the content known so far, so a mismatch means upstream changed: it is
// reported and never fails the download.
func checkPin(ctx context.Context, req Request, path string) {
	logger := logging.GetLogger(ctx)
	algo, want, err := ParseChecksum(req.Checksum)
	if err != nil {
		logger.Warn("ignoring checksum pin", "hud", req.Name, "error", err)
		return
	}
	got, err := fileutil.Sum(path, algo)
	if err != nil {
		logger.Warn("ignoring checksum pin", "hud", req.Name, "error", err)
		return
	}
	if got != want {
		logger.Warn("upstream content differs from checksum pin", "hud", req.Name, "algo", algo, "pinned", want, "got", got)
		return
	}
	logger.Debug("upstream content matches checksum pin", "hud", req.Name, "algo", algo)
}

func (d *HTTPDownloader) fetchDirect(ctx context.Context, req Request, out io.Writer) error {
	logging.GetLogger(ctx).Debug("downloading directly", "hud", req.Name, "url", req.URL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return err
	}
	resp, err := d.HTTP.Client().Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to download %s: unexpected status: %s", req.URL, resp.Status)
	}

	dst := out
	if d.Progress != nil {
		bar := progressbar.NewOptions64(
			resp.ContentLength,
			progressbar.OptionSetWriter(d.Progress),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetDescription(req.Name),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(d.Progress)
			}),
		)
		defer bar.Finish()
		dst = io.MultiWriter(out, bar)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("failed to download %s: %w", req.URL, err)
	}
	return nil
}
