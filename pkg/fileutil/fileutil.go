package fileutil

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ShortHashLen is how many hex characters of a hash end up in file names.
const ShortHashLen = 8

// RenameByHash renames dir/X.ext to dir/X_<hash[:8]>.ext and returns the new path.
func RenameByHash(path, hash string) (string, error) {
	if len(hash) < ShortHashLen {
		return "", fmt.Errorf("hash %q is shorter than %d characters", hash, ShortHashLen)
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	target := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s_%s%s", stem, hash[:ShortHashLen], ext))
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", path, err)
	}
	return target, nil
}

// MD5 returns the lowercase hex MD5 digest of the file at path.
func MD5(path string) (string, error) {
	return sum(path, md5.New())
}

// SHA1 returns the lowercase hex SHA1 digest of the file at path.
func SHA1(path string) (string, error) {
	return sum(path, sha1.New())
}

// Sum returns the lowercase hex digest of the file at path using algo
// (md5, sha1, sha256 or sha512).
func Sum(path, algo string) (string, error) {
	var h hash.Hash
	switch strings.ToLower(algo) {
	case "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", algo)
	}
	return sum(path, h)
}

func sum(path string, h hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// RemoveDir deletes dir and everything below it.
func RemoveDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return nil
}
