package http

import (
	"mime/multipart"

	"vidtube/internal/usecase"

	"github.com/gin-gonic/gin"
)

// formFile pairs an open multipart file with its declared content type.
type formFile struct {
	file        multipart.File
	contentType string
}

func openFormFile(c *gin.Context, field string) (*formFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &formFile{file: file, contentType: contentType}, nil
}

func (f *formFile) Input() usecase.FileInput {
	return usecase.FileInput{Reader: f.file, ContentType: f.contentType}
}

func (f *formFile) Close() error {
	return f.file.Close()
}
