package ingest

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirestack/resume-intake/gen/ent"
)

// stubFilesRepo records upserts in memory, keyed by content hash.
type stubFilesRepo struct {
	rows map[string]*ent.ResumeFile
}

func newStubFilesRepo() *stubFilesRepo {
	return &stubFilesRepo{rows: map[string]*ent.ResumeFile{}}
}

func (s *stubFilesRepo) GetByID(context.Context, uuid.UUID) (*ent.ResumeFile, error) {
	panic("not used")
}

func (s *stubFilesRepo) GetByHash(_ context.Context, hash []byte) (*ent.ResumeFile, error) {
	if row, ok := s.rows[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, &ent.NotFoundError{}
}

func (s *stubFilesRepo) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ResumeFile, error) {
	row := &ent.ResumeFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	s.rows[hex.EncodeToString(hash)] = row
	return row, nil
}

func (s *stubFilesRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ResumeFile, bool, error) {
	if row, err := s.GetByHash(ctx, hash); err == nil {
		return row, true, nil
	}
	row, err := s.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

func (s *stubFilesRepo) List(context.Context, int, int) ([]*ent.ResumeFile, error) {
	panic("not used")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	repo := newStubFilesRepo()
	ing := NewFSIngestor(repo, nil)

	a := writeFile(t, dir, "a.pdf", "same bytes")
	b := writeFile(t, dir, "b.pdf", "same bytes")

	r1, err := ing.IngestPath(context.Background(), a)
	require.NoError(t, err)
	assert.False(t, r1.Deduplicated)

	r2, err := ing.IngestPath(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, r2.Deduplicated, "identical content must deduplicate")
	assert.Equal(t, r1.FileID, r2.FileID)
	assert.Equal(t, r1.HashHex, r2.HashHex)
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	ing := NewFSIngestor(newStubFilesRepo(), nil)

	path := writeFile(t, dir, "notes.txt", "hello")
	_, err := ing.IngestPath(context.Background(), path)
	assert.Error(t, err)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	repo := newStubFilesRepo()
	ing := NewFSIngestor(repo, nil)

	writeFile(t, dir, "one.pdf", "resume one")
	writeFile(t, dir, "two.docx", "resume two")
	writeFile(t, dir, "dup.pdf", "resume one") // same bytes as one.pdf
	writeFile(t, dir, "skip.txt", "not a resume")
	writeFile(t, dir, ".hidden.pdf", "hidden resume")

	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched, "txt and hidden files are not matched")
	assert.Equal(t, uint32(3), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Deduplicated)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 3)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(newStubFilesRepo(), nil)
	_, _, err := ing.IngestDirectory(context.Background(), "  ", true)
	assert.Error(t, err)
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".DOCX"))
	assert.False(t, AllowedExt("txt"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/in/.hidden.pdf"))
	assert.False(t, IsHidden("/in/visible.pdf"))
}
