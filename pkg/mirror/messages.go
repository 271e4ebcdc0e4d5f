package mirror

import "fmt"

const (
	msgUpdatedGitHub  = "HUD %s updated. MD5: %s, timestamp: %d, file: %s."
	msgUpdatedGeneric = "HUD %s updated. MD5: %s, file: %s."
	msgUpToDate       = "HUD %s is up to date."
	msgError          = "Error while processing HUD %s: %v"
	msgDBNotFound     = "HUD database %s not found."
)

// UpdatedGitHubMessage reports a GitHub HUD downloaded at a newer commit.
func UpdatedGitHubMessage(name, md5sum string, timestamp int64, file string) string {
	return fmt.Sprintf(msgUpdatedGitHub, name, md5sum, timestamp, file)
}

// UpdatedGenericMessage reports a generic HUD whose content changed.
func UpdatedGenericMessage(name, md5sum, file string) string {
	return fmt.Sprintf(msgUpdatedGeneric, name, md5sum, file)
}

// UpToDateMessage reports a HUD that needs no new download.
func UpToDateMessage(name string) string {
	return fmt.Sprintf(msgUpToDate, name)
}

// ErrorMessage reports a HUD that failed; the run continues with the next one.
func ErrorMessage(name string, err error) string {
	return fmt.Sprintf(msgError, name, err)
}

// DatabaseNotFoundMessage reports a missing database, which aborts the run.
func DatabaseNotFoundMessage(path string) string {
	return fmt.Sprintf(msgDBNotFound, path)
}
