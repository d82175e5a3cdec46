package usecase

import "io"

// FileInput is an uploaded file ready to be streamed to the blob store.
type FileInput struct {
	Reader      io.Reader
	ContentType string
}

// BlobStore is the media blob gateway: store bytes under a key, get back a
// permanent URL, delete by URL later.
type BlobStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFileByURL(fileURL string) error
}

// NotificationPublisher hands notification tasks to an external worker.
// Publishing is fire-and-forget; a nil publisher disables it.
type NotificationPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}
