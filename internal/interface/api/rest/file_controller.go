package rest

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"blindstore-api/internal/application/ports"
	domain "blindstore-api/internal/domain/file"
	"blindstore-api/internal/domain/user"
	jwtSvc "blindstore-api/internal/infrastructure/jwt"
	"blindstore-api/internal/interface/api/rest/dto/file"
	"blindstore-api/internal/interface/api/rest/middleware"
	"blindstore-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService    ports.FileService
	logger         *zap.Logger
	maxUploadBytes int64
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwtSvc.Service,
	maxUploadBytes int64,
) *FileController {
	fc := &FileController{
		fileService:    fileService,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteFiles, auth, fc.GetFilesHandler)
	r.POST(RouteFileUpload, auth, fc.UploadFileHandler)
	r.GET(RouteFileDownload, auth, fc.DownloadFileHandler)
	r.DELETE(RouteFile, auth, fc.DeleteFileHandler)

	return fc
}

// principal pulls the authenticated user id set by the auth middleware. A
// token whose subject is not a UUID never maps to any resource, so it is
// rejected as unauthorized.
func principal(c *gin.Context) (user.UUID, bool) {
	ok, id := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token"},
		)
		return id, false
	}
	return id, true
}

func (fc *FileController) writeFileError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "file already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		fc.logger.Error(op+" error", zap.Error(err))
	}
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	q, err := validator.ValidateListQuery(
		c.Query("q"),
		c.Query("sort"),
		c.Query("direction"),
		c.Query("page"),
		c.Query("page_size"),
	)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	files, total, err := fc.fileService.List(c.Request.Context(), p, q)
	if err != nil {
		fc.writeFileError(c, "List()", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseData(files, total, q))
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	metaStr := c.PostForm("metadata")
	if metaStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "metadata is required"})
		return
	}
	var meta file.UploadMetadata
	if err := json.Unmarshal([]byte(metaStr), &meta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "metadata must be valid json"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > fc.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	f, err := fc.fileService.Upload(c.Request.Context(), p, file.ToUploadMeta(meta), data)
	if err != nil {
		fc.writeFileError(c, "Upload()", err)
		return
	}

	c.JSON(http.StatusCreated, file.ToResponseFile(*f))
}

func (fc *FileController) DownloadFileHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ok, id := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	f, data, err := fc.fileService.Download(c.Request.Context(), p, id)
	if err != nil {
		fc.writeFileError(c, "Download()", err)
		return
	}

	// The stored bytes are an opaque encrypted container, so the declared
	// mime type is only echoed in the disposition name, never the content
	// type.
	c.Header("Content-Disposition", contentDisposition(f.Name))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ok, id := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	if err := fc.fileService.Delete(c.Request.Context(), p, id); err != nil {
		fc.writeFileError(c, "Delete()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// stripUnsafe drops control and format runes from a client-declared name
// before it is placed in a response header.
var stripUnsafe = runes.Remove(runes.In(unicode.C))

const maxDispositionName = 255

func contentDisposition(name string) string {
	sanitized, _, err := transform.String(stripUnsafe, name)
	if err != nil || sanitized == "" {
		sanitized = "download.bin"
	}
	if r := []rune(sanitized); len(r) > maxDispositionName {
		sanitized = string(r[:maxDispositionName])
	}

	return mime.FormatMediaType("attachment", map[string]string{"filename": sanitized})
}
