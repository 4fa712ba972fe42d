package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"inventhub-api/config"
	"inventhub-api/utils"
)

// maxModelSize is the upload ceiling for 3D model files (10 GiB).
const maxModelSize = 10 << 30

// uploadChunkSize is the streaming buffer size.
const uploadChunkSize = 8192

var errFileTooLarge = errors.New("file exceeds maximum size")

// UploadInventionModel handles POST /api/inventions/:id/upload-model.
// The multipart body is consumed as a stream: the file part is copied in
// bounded chunks to a temporary path, counting bytes against the ceiling,
// and only an atomic rename publishes it under
// {upload_dir}/{invention_id}_{filename}. Any failure mid-stream removes
// the temp file.
func UploadInventionModel(c *gin.Context) {
	ctx := c.Request.Context()
	inventionID := c.Param("id")
	if !inventionExists(c, ctx, inventionID) {
		return
	}

	part, err := fileUploadPart(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer part.Close()

	filename := utils.SanitizeFilename(part.FileName())
	if !utils.IsAllowedModelExtension(filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File type %s not supported. Allowed types: %s",
				filepath.Ext(filename), strings.Join(utils.AllowedModelExtensions(), ", ")),
		})
		return
	}

	uploadDir := uploadPath()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	tempPath := filepath.Join(uploadDir, fmt.Sprintf("temp_%s%s", uuid.NewString(), ext))

	if _, err := streamToFile(part, tempPath, maxModelSize); err != nil {
		os.Remove(tempPath)
		if errors.Is(err, errFileTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large. Maximum size is 10GB"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	finalPath := filepath.Join(uploadDir, fmt.Sprintf("%s_%s", inventionID, filename))
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	_, err = config.Coll(config.InventionsCollection).UpdateOne(ctx, bson.M{"id": inventionID}, bson.M{"$set": bson.M{
		"model_file_path": finalPath,
		"model_file_name": filename,
		"updated_at":      time.Now().UTC(),
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Model uploaded successfully",
		"file_path": finalPath,
	})
}

// fileUploadPart walks the multipart stream to the "file" field without
// buffering the body. FormFile would spool the whole upload first, which
// the 10 GiB ceiling rules out.
func fileUploadPart(r *http.Request) (*multipart.Part, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}
	for {
		part, err := reader.NextPart()
		if err != nil {
			return nil, err
		}
		if part.FormName() == "file" {
			return part, nil
		}
		part.Close()
	}
}

// streamToFile copies src to path in bounded chunks, counting bytes and
// aborting once the running total passes limit.
func streamToFile(src io.Reader, path string, limit int64) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	buf := make([]byte, uploadChunkSize)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			written += int64(n)
			if written > limit {
				return written, errFileTooLarge
			}
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return written, writeErr
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
