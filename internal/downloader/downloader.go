// Package downloader acquires source videos through yt-dlp, or copies
// local files into the work directory under the same naming convention.
package downloader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
	"github.com/nguyentantai21042004/video-digest/internal/timestamp"
)

const downloadFormat = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// probeInfo is the subset of yt-dlp's -j output we keep as metadata.
type probeInfo struct {
	Title          string  `json:"title"`
	Channel        string  `json:"channel"`
	Uploader       string  `json:"uploader"`
	WebpageURL     string  `json:"webpage_url"`
	Duration       float64 `json:"duration"`
	DurationString string  `json:"duration_string"`
}

// IsURL reports whether the source is a remote video rather than a local
// file.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func (d *implDownloader) Acquire(ctx context.Context, source, dir string) (string, *artifact.VideoMetadata, error) {
	if IsURL(source) {
		return d.download(ctx, source, dir)
	}
	return d.copyLocal(ctx, source, dir)
}

// download probes the video's metadata, then downloads it into dir as
// video.<ext>. A failed probe only costs the metadata block; the download
// itself is fatal.
func (d *implDownloader) download(ctx context.Context, url, dir string) (string, *artifact.VideoMetadata, error) {
	meta := d.probeMetadata(ctx, url)

	d.logger.Info(ctx, "Downloading video: %s", url)

	// yt-dlp runs inside the output dir so the template stays relative
	args := []string{
		"-f", downloadFormat,
		"-o", "video.%(ext)s",
		"--no-playlist",
		url,
	}
	if _, err := d.executor.ExecuteInDir(ctx, dir, "yt-dlp", args...); err != nil {
		return "", nil, fmt.Errorf("yt-dlp download: %w", err)
	}

	videoPath, err := findDownloaded(dir)
	if err != nil {
		return "", nil, err
	}

	d.logger.Info(ctx, "Video downloaded: %s", videoPath)
	return videoPath, meta, nil
}

// probeMetadata asks yt-dlp for the video's metadata without downloading.
func (d *implDownloader) probeMetadata(ctx context.Context, url string) *artifact.VideoMetadata {
	out, err := d.executor.Execute(ctx, "yt-dlp", "-j", "--no-download", "--no-playlist", url)
	if err != nil {
		d.logger.Warn(ctx, "Metadata probe failed, continuing without metadata: %v", err)
		return nil
	}

	var info probeInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		d.logger.Warn(ctx, "Unparseable metadata, continuing without it: %v", err)
		return nil
	}

	canal := info.Channel
	if canal == "" {
		canal = info.Uploader
	}
	duracao := info.DurationString
	if duracao == "" && info.Duration > 0 {
		duracao = timestamp.Clock(info.Duration)
	}
	sourceURL := info.WebpageURL
	if sourceURL == "" {
		sourceURL = url
	}

	return &artifact.VideoMetadata{
		Titulo:            info.Title,
		Canal:             canal,
		URL:               sourceURL,
		Duracao:           duracao,
		DataProcessamento: time.Now().Format("2006-01-02 15:04"),
	}
}

// copyLocal brings a local video file into the work dir as video.<ext>.
// The copy is streamed; source videos can be many gigabytes.
func (d *implDownloader) copyLocal(ctx context.Context, source, dir string) (string, *artifact.VideoMetadata, error) {
	src, err := os.Open(source)
	if err != nil {
		return "", nil, fmt.Errorf("open local video %s: %w", source, err)
	}
	defer src.Close()

	dest := filepath.Join(dir, artifact.VideoBase+strings.ToLower(filepath.Ext(source)))
	dst, err := os.Create(dest)
	if err != nil {
		return "", nil, fmt.Errorf("create %s: %w", dest, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", nil, fmt.Errorf("copy video to %s: %w", dest, err)
	}

	d.logger.Info(ctx, "Local video copied: %s -> %s", source, dest)

	meta := &artifact.VideoMetadata{
		Titulo:            strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)),
		DataProcessamento: time.Now().Format("2006-01-02 15:04"),
	}
	return dest, meta, nil
}

// findDownloaded locates the file yt-dlp wrote; the merged extension is not
// known in advance.
func findDownloaded(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, artifact.VideoBase+".") && isVideoExt(filepath.Ext(name)) {
			return filepath.Join(dir, name), nil
		}
	}

	return "", fmt.Errorf("no video file downloaded into %s", dir)
}

func isVideoExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".mp4", ".webm", ".mkv", ".mov", ".avi", ".m4v", ".flv":
		return true
	}
	return false
}
