package schemas_test

import (
	"os"
	"path/filepath"
	"testing"

	schemas "github.com/ParapluOU/schemas-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToDirectory_RoundTrip(t *testing.T) {
	t.Parallel()

	b := testBundle(t)
	base := t.TempDir()

	written, err := b.WriteToDirectory(base)
	require.NoError(t, err)
	assert.Equal(t, b.FileCount(), written)

	for p := range b.Paths() {
		data, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(p)))
		require.NoError(t, err, "every extracted file should be readable")

		f, ok := b.GetFile(p)
		require.True(t, ok)
		assert.Equal(t, f.Content(), data, "on-disk bytes should match embedded content")
	}
}

func TestWriteToDirectory_OverwriteIdempotent(t *testing.T) {
	t.Parallel()

	b := testBundle(t)
	base := t.TempDir()

	first, err := b.WriteToDirectory(base)
	require.NoError(t, err)

	second, err := b.WriteToDirectory(base)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NoError(t, b.VerifyDirectory(base), "a repeated extraction should verify cleanly")
}

func TestWriteToDirectory_CreateDirError(t *testing.T) {
	t.Parallel()

	b := testBundle(t)

	base := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(base, []byte("not a directory"), 0o644))

	written, err := b.WriteToDirectory(base)
	require.Error(t, err)
	assert.Zero(t, written)

	var dirErr *schemas.CreateDirError
	require.ErrorAs(t, err, &dirErr)
	assert.NotEmpty(t, dirErr.Path)
	assert.Error(t, dirErr.Err)
}

func TestWriteToDirectoryProgress_Callback(t *testing.T) {
	t.Parallel()

	b := testBundle(t)
	base := t.TempDir()

	var reports []schemas.WriteProgress
	written, err := b.WriteToDirectoryProgress(base, func(p schemas.WriteProgress) {
		reports = append(reports, p)
	})
	require.NoError(t, err)

	require.Len(t, reports, written)

	var totalBytes int64
	for i, report := range reports {
		assert.Equal(t, i+1, report.Written)
		assert.Equal(t, written, report.Total)
		totalBytes += report.Bytes
	}

	assert.Equal(t, b.TotalSize(), totalBytes)
	assert.Equal(t, written, reports[len(reports)-1].Written)
}

func TestVerifyDirectory_DetectsCorruption(t *testing.T) {
	t.Parallel()

	b := testBundle(t)
	base := t.TempDir()

	_, err := b.WriteToDirectory(base)
	require.NoError(t, err)
	require.NoError(t, b.VerifyDirectory(base))

	require.NoError(t, os.WriteFile(filepath.Join(base, "a.xsd"), []byte("corrupted"), 0o644))

	err = b.VerifyDirectory(base)
	require.Error(t, err)
	require.ErrorIs(t, err, schemas.ErrChecksumMismatch)

	var verifyErr *schemas.VerifyError
	require.ErrorAs(t, err, &verifyErr)
	assert.Equal(t, "a.xsd", verifyErr.Path)
	assert.NotEqual(t, verifyErr.Want, verifyErr.Got)
}

func TestVerifyDirectory_MissingFile(t *testing.T) {
	t.Parallel()

	b := testBundle(t)
	base := t.TempDir()

	_, err := b.WriteToDirectory(base)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(base, "sub", "c.dtd")))

	err = b.VerifyDirectory(base)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
