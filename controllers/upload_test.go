package controllers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestStreamToFileWritesAllBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.glb")
	payload := bytes.Repeat([]byte("abc123"), 4000) // spans multiple chunks

	written, err := streamToFile(bytes.NewReader(payload), path, int64(len(payload)))
	if err != nil {
		t.Fatalf("streamToFile: %v", err)
	}
	if written != int64(len(payload)) {
		t.Fatalf("written = %d, want %d", written, len(payload))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("file content differs from source")
	}
}

func TestStreamToFileEnforcesLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.glb")
	payload := make([]byte, 20000)

	_, err := streamToFile(bytes.NewReader(payload), path, 10000)
	if !errors.Is(err, errFileTooLarge) {
		t.Fatalf("err = %v, want errFileTooLarge", err)
	}
}

func TestStreamToFileLimitIsExclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exact.glb")
	payload := make([]byte, 10000)

	// A file exactly at the ceiling is allowed; only exceeding it aborts.
	if _, err := streamToFile(bytes.NewReader(payload), path, 10000); err != nil {
		t.Fatalf("exact-size upload failed: %v", err)
	}
}

func TestFileUploadPartFindsFileField(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("note", "ignored"); err != nil {
		t.Fatal(err)
	}
	fw, err := mw.CreateFormFile("file", "part.glb")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("binary-model-data"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/inventions/x/upload-model", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	part, err := fileUploadPart(req)
	if err != nil {
		t.Fatalf("fileUploadPart: %v", err)
	}
	defer part.Close()

	if part.FileName() != "part.glb" {
		t.Fatalf("filename = %q", part.FileName())
	}
	data, err := io.ReadAll(part)
	if err != nil {
		t.Fatalf("read part: %v", err)
	}
	if string(data) != "binary-model-data" {
		t.Fatalf("part content = %q", data)
	}
}

func TestFileUploadPartMissingFileField(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("note", "only text")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/inventions/x/upload-model", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if _, err := fileUploadPart(req); err == nil {
		t.Fatal("missing file field must error")
	}
}
