package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"educonsult-be/internal/pkg/apperror"
	"educonsult-be/internal/repository/specification"
	"educonsult-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func newUploadFixture(t *testing.T) (IUploadService, unitofwork.RepositoryFactory, string) {
	t.Helper()

	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	baseDir := t.TempDir()
	svc := NewUploadService(uowFactory, baseDir, "http://localhost:3000", nopLogger{})
	return svc, uowFactory, baseDir
}

func TestSaveUploadStoresFileAndRecord(t *testing.T) {
	svc, uowFactory, baseDir := newUploadFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-upload")
	header := makeFileHeader(t, "transcript.pdf", []byte("%PDF-1.4 fake"))

	res, err := svc.SaveUpload(ctx, "comp_a", session.SessionToken, "my transcript", header)

	require.NoError(t, err)
	assert.Equal(t, "transcript.pdf", res.OriginalFilename)
	assert.Equal(t, "document", res.FileType)
	assert.EqualValues(t, len("%PDF-1.4 fake"), res.FileSize)
	assert.Equal(t, "my transcript", res.UploadContext)

	uow := uowFactory.NewUnitOfWork(ctx)
	record, err := uow.UploadedFileRepository().FindOne(ctx, specification.ByID{ID: res.Id})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, session.Id, record.ChatSessionId)
	assert.Equal(t, "comp_a", record.CompanyId)

	// the file lands under {company}/{yyyy}/{mm}/
	stored := filepath.Join(baseDir, record.Filepath)
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
	assert.Contains(t, record.Filepath, "comp_a"+string(filepath.Separator))

	// the response points at the static /uploads mount
	assert.Equal(t, "http://localhost:3000/uploads/"+filepath.ToSlash(record.Filepath), res.Url)
}

func TestSaveUploadRejectsDisallowedExtension(t *testing.T) {
	svc, uowFactory, _ := newUploadFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-upload")
	header := makeFileHeader(t, "malware.exe", []byte("MZ"))

	_, err := svc.SaveUpload(ctx, "comp_a", session.SessionToken, "", header)

	require.Error(t, err)
	kind, _ := apperror.KindOf(err)
	assert.Equal(t, apperror.KindValidation, kind)
}

func TestSaveUploadUnknownSession(t *testing.T) {
	svc, _, _ := newUploadFixture(t)

	header := makeFileHeader(t, "photo.png", []byte("png"))

	_, err := svc.SaveUpload(context.Background(), "comp_a", "no-such-session", "", header)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSaveUploadScopedByCompany(t *testing.T) {
	svc, uowFactory, _ := newUploadFixture(t)
	ctx := context.Background()

	session := seedSession(t, uowFactory, "comp_a", "sess-upload")
	header := makeFileHeader(t, "photo.png", []byte("png"))

	_, err := svc.SaveUpload(ctx, "comp_b", session.SessionToken, "", header)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
