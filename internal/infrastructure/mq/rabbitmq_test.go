package mq

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blindstore-api/config"
	"blindstore-api/internal/domain/file"
)

func TestNewFileEvent(t *testing.T) {
	f := &file.File{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "report.pdf",
		MimeType:  "application/pdf",
		SizeBytes: 42,
		CreatedAt: time.Now().UTC(),
	}

	e := NewFileEvent(http.MethodPost, f)

	assert.NotEqual(t, uuid.Nil, e.Id)
	assert.Equal(t, http.MethodPost, e.Method)
	assert.Equal(t, f.OwnerID.String(), e.OwnerID)
	assert.Equal(t, f.ID, e.Payload.ID)
	assert.Equal(t, f.Name, e.Payload.Name)
	assert.Equal(t, f.SizeBytes, e.Payload.SizeBytes)
}

func TestPublisherWorker_StopLeavesInputOpen(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		r.PublisherWorker(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher worker did not stop")
	}

	// A handler finishing a request after shutdown began still sends its
	// event; the buffered channel must accept it without panicking.
	require.NotPanics(t, func() {
		r.GetInputChan() <- NewFileEvent(http.MethodDelete, &file.File{
			ID:      uuid.New(),
			OwnerID: uuid.New(),
			Name:    "late.bin",
		})
	})
}
