// Package backup snapshots the file store's data directory once a day and
// prunes snapshots older than the retention window.
package backup

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const stampLayout = "2006-01-02_15-04-05"

// RunDaily backs up srcDir into a timestamped folder under backupDir every
// day at hour:min local time until ctx is cancelled.
func RunDaily(ctx context.Context, srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		next := NextRun(time.Now(), hour, min)
		log.Printf("⏳ Next data backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if dest, err := Snapshot(srcDir, backupDir, time.Now()); err != nil {
			log.Printf("❌ Failed to back up data: %v", err)
		} else {
			log.Printf("✅ Data backed up to %s", dest)
		}

		Cleanup(backupDir, retention, time.Now())
	}
}

// NextRun returns the first hour:min strictly after now.
func NextRun(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Snapshot copies srcDir into backupDir/<timestamp> and returns that path.
// The tree is staged under a ".partial" name and renamed into place, so a
// folder with a timestamp name is always a finished snapshot. Dot-files in
// srcDir are in-flight writes of the file store and are skipped.
func Snapshot(srcDir, backupDir string, at time.Time) (string, error) {
	dest := filepath.Join(backupDir, at.Format(stampLayout))
	staging := dest + ".partial"
	if err := os.RemoveAll(staging); err != nil {
		return "", err
	}

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(staging, rel)
		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0o755)
		case d.Type().IsRegular():
			return copyFile(path, target)
		default:
			return nil
		}
	})
	if err != nil {
		_ = os.RemoveAll(staging)
		return "", fmt.Errorf("snapshot %s: %w", srcDir, err)
	}

	if err := os.Rename(staging, dest); err != nil {
		_ = os.RemoveAll(staging)
		return "", fmt.Errorf("snapshot %s: %w", srcDir, err)
	}
	return dest, nil
}

// Cleanup removes snapshots whose timestamp name is older than
// now-retention and returns the removed paths. Folders that are not named
// by Snapshot are left alone.
func Cleanup(backupDir string, retention time.Duration, now time.Time) []string {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return nil
	}

	cutoff := now.Add(-retention)
	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		taken, err := time.ParseInLocation(stampLayout, entry.Name(), now.Location())
		if err != nil || !taken.Before(cutoff) {
			continue
		}

		path := filepath.Join(backupDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			continue
		}
		log.Printf("🗑️ Removed old backup: %s", path)
		removed = append(removed, path)
	}
	return removed
}

func copyFile(src, dest string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
