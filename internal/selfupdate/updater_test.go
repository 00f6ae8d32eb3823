package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		archive string
		binary  string
		wantErr bool
	}{
		{"darwin arm64", "darwin", "arm64", "socratic_darwin_arm64.tar.gz", "socratic", false},
		{"darwin amd64", "darwin", "amd64", "socratic_darwin_amd64.tar.gz", "socratic", false},
		{"linux amd64", "linux", "amd64", "socratic_linux_amd64.tar.gz", "socratic", false},
		{"linux arm64", "linux", "arm64", "socratic_linux_arm64.tar.gz", "socratic", false},
		{"windows amd64", "windows", "amd64", "socratic_windows_amd64.zip", "socratic.exe", false},
		{"windows arm64", "windows", "arm64", "socratic_windows_arm64.zip", "socratic.exe", false},
		{"unsupported os", "freebsd", "amd64", "", "", true},
		{"unsupported arch", "linux", "mips", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.archive, got.archive)
			assert.Equal(t, tt.binary, got.binary)
		})
	}
}

func TestVerifyArchive(t *testing.T) {
	archive := []byte("archive bytes")
	sum := sha256.Sum256(archive)
	good := hex.EncodeToString(sum[:])

	t.Run("match", func(t *testing.T) {
		sums := fmt.Sprintf("%s  socratic_linux_amd64.tar.gz\n", good)
		assert.NoError(t, verifyArchive(archive, []byte(sums), "socratic_linux_amd64.tar.gz"))
	})

	t.Run("mismatch", func(t *testing.T) {
		sums := "0000000000000000000000000000000000000000000000000000000000000000  socratic_linux_amd64.tar.gz\n"
		err := verifyArchive(archive, []byte(sums), "socratic_linux_amd64.tar.gz")
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing entry", func(t *testing.T) {
		sums := fmt.Sprintf("%s  socratic_darwin_arm64.tar.gz\n", good)
		err := verifyArchive(archive, []byte(sums), "socratic_linux_amd64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		sums := fmt.Sprintf("badline\n  \nfoo bar baz\n%s  socratic_linux_amd64.tar.gz\n", good)
		assert.NoError(t, verifyArchive(archive, []byte(sums), "socratic_linux_amd64.tar.gz"))
	})
}

func TestExtract(t *testing.T) {
	content := []byte("#!/bin/sh\necho socratic")

	t.Run("tar.gz", func(t *testing.T) {
		asset := releaseAsset{archive: "socratic_linux_amd64.tar.gz", binary: "socratic"}
		got, err := asset.extract(buildTarGz(t, "socratic", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		asset := releaseAsset{archive: "socratic_windows_amd64.zip", binary: "socratic.exe"}
		got, err := asset.extract(buildZip(t, "socratic.exe", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		asset := releaseAsset{archive: "socratic_linux_amd64.tar.gz", binary: "socratic"}
		_, err := asset.extract(buildTarGz(t, "other-file", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "socratic")

	// Original binary carries 0755 permissions.
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, swapBinary(newData, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	binaryContent := []byte("new-socratic-binary")
	var archive []byte
	if filepath.Ext(asset.archive) == ".zip" {
		archive = buildZip(t, asset.binary, binaryContent)
	} else {
		archive = buildTarGz(t, asset.binary, binaryContent)
	}
	archiveSum := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset.archive)

	releasePath := "/repos/raneesh-edsmartly/socratic/releases/latest"
	downloadBase := "/raneesh-edsmartly/socratic/releases/download/v2.0.0"

	serve := func(sums string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case releasePath:
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0"}`))
			case downloadBase + "/" + asset.archive:
				_, _ = w.Write(archive)
			case downloadBase + "/checksums.txt":
				_, _ = w.Write([]byte(sums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
	}

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, asset.binary)
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := serve(checksums)
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := fmt.Sprintf("%s  %s\n",
			"0000000000000000000000000000000000000000000000000000000000000000", asset.archive)
		server := serve(bad)
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == releasePath {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func TestCheck(t *testing.T) {
	t.Run("update available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.4.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.4.0", result.LatestVersion)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"1.4.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("dev build reports no update", func(t *testing.T) {
		checker := NewChecker()
		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// buildZip creates a zip archive containing a single file.
func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
