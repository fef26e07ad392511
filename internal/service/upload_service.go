package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"educonsult-be/internal/dto"
	"educonsult-be/internal/entity"
	"educonsult-be/internal/pkg/apperror"
	"educonsult-be/internal/pkg/logger"
	"educonsult-be/internal/repository/specification"
	"educonsult-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedExtensions = map[string]string{
	".jpg": "image", ".jpeg": "image", ".png": "image", ".gif": "image", ".webp": "image",
	".pdf": "document", ".doc": "document", ".docx": "document", ".txt": "document", ".rtf": "document",
	".xls": "document", ".xlsx": "document", ".csv": "document",
}

type IUploadService interface {
	SaveUpload(ctx context.Context, companyId, sessionToken, messageContext string, fileHeader *multipart.FileHeader) (*dto.UploadedFileDTO, error)
}

type uploadService struct {
	uowFactory unitofwork.RepositoryFactory
	baseDir    string
	baseURL    string
	logger     logger.ILogger
}

func NewUploadService(uowFactory unitofwork.RepositoryFactory, baseDir, baseURL string, log logger.ILogger) IUploadService {
	return &uploadService{
		uowFactory: uowFactory,
		baseDir:    baseDir,
		baseURL:    baseURL,
		logger:     log,
	}
}

// SaveUpload stores the file under uploads/{company}/{yyyy}/{mm}/ and
// records it against the session. The session must exist in the
// caller's tenant scope.
func (s *uploadService) SaveUpload(ctx context.Context, companyId, sessionToken, messageContext string, fileHeader *multipart.FileHeader) (*dto.UploadedFileDTO, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, apperror.NewValidation("file exceeds the 10MB size limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	fileType, ok := allowedExtensions[ext]
	if !ok {
		return nil, apperror.NewValidation(fmt.Sprintf("file type %s is not allowed", ext))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{SessionToken: sessionToken},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("chat session not found")
	}

	now := time.Now()
	relDir := filepath.Join(companyId, now.Format("2006"), now.Format("01"))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, err
	}

	storedName := fmt.Sprintf("%s_%s", strings.Split(uuid.NewString(), "-")[0], sanitizeFilename(fileHeader.Filename))
	relPath := filepath.Join(relDir, storedName)
	absPath := filepath.Join(s.baseDir, relPath)

	if err := copyUpload(fileHeader, absPath); err != nil {
		return nil, err
	}

	var contextNote *string
	if messageContext != "" {
		contextNote = &messageContext
	}

	record := &entity.UploadedFile{
		Id:             uuid.New(),
		CompanyId:      companyId,
		ChatSessionId:  session.Id,
		UserProfileId:  session.UserProfileId,
		OriginalName:   fileHeader.Filename,
		Filename:       storedName,
		Filepath:       relPath,
		FileSize:       fileHeader.Size,
		FileType:       fileType,
		MessageContext: contextNote,
		UploadedAt:     now,
	}
	if err := uow.UploadedFileRepository().Create(ctx, record); err != nil {
		// best effort cleanup of the orphaned file
		os.Remove(absPath)
		return nil, err
	}

	s.logger.Info("UploadService", "File uploaded", map[string]interface{}{
		"session_token": sessionToken,
		"filename":      storedName,
		"file_type":     fileType,
		"size":          fileHeader.Size,
	})

	result := toUploadedFileDTO(record, s.baseURL)
	return &result, nil
}

// uploadedFileURL resolves a stored relative path to the public URL
// served by the static /uploads mount.
func uploadedFileURL(baseURL, relPath string) string {
	return strings.TrimRight(baseURL, "/") + "/uploads/" + filepath.ToSlash(relPath)
}

func copyUpload(fileHeader *multipart.FileHeader, destPath string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
