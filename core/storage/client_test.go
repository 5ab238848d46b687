package storage_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rein-stock/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr bool
	}{
		{
			name: "Defaults",
			cfg:  storage.Config{Endpoint: "localhost:9000", AccessKey: "minioadmin", SecretKey: "minioadmin", Bucket: "rein-stock"},
		},
		{
			name: "EndpointWithHTTP",
			cfg:  storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"},
		},
		{
			name: "EndpointWithHTTPS",
			cfg:  storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"},
		},
		{
			name:    "EndpointWithPath",
			cfg:     storage.Config{Endpoint: "localhost:9000/rein-stock", AccessKey: "k", SecretKey: "s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClient_BucketExists(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/rein-stock/" || r.URL.Path == "/rein-stock" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := storage.NewClient(storage.Config{
		Endpoint:  srv.URL,
		AccessKey: "k",
		SecretKey: "s",
		Region:    "us-east-1",
	})
	require.NoError(t, err)

	exists, err := client.BucketExists(context.Background(), "rein-stock")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.BucketExists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NotEmpty(t, methods)
	assert.Regexp(t, `^HEAD /rein-stock/?$`, methods[0])
}

func TestNewClient_GetObjectIsLazy(t *testing.T) {
	client, err := storage.NewClient(storage.Config{Endpoint: "127.0.0.1:1", AccessKey: "k", SecretKey: "s", Region: "us-east-1"})
	require.NoError(t, err)

	mirror := storage.NewMirror(client, "rein-stock", "snapshots")
	obj, err := client.GetObject(context.Background(), "rein-stock", mirror.ObjectName("Cache/rein_stock_cache.json"), minio.GetObjectOptions{})
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.NoError(t, obj.Close())
}
