package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-news-platform/internal/config"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для аватаров;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    PresignAvatarUpload: выдачу presigned PUT и валидации по типу/размеру;
//    AvatarURL: сбор публичного URL;
//    RemoveAvatar: удаление объекта и идемпотентность на отсутствующем ключе.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*AvatarStorage, func(), *config.Config) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "avatars"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:      endpoint,
			RootUser:      rootUser,
			RootPassword:  rootPassword,
			Bucket:        bucket,
			PresignTTL:    10 * time.Minute,
			PublicBaseURL: "https://cdn.example.org",
		},
		Avatar: config.AvatarConfig{
			MaxSizeBytes:        1 << 20,
			AllowedContentTypes: []string{"image/jpeg", "image/png"},
		},
	}

	cleanup := func() { _ = c.Terminate(context.Background()) }

	if !createBucket {
		return nil, cleanup, cfg
	}

	st, err := New(ctx, cfg)
	require.NoError(t, err)

	return st, cleanup, cfg
}

func TestIntegration_New_BucketMissing(t *testing.T) {
	_, cleanup, cfg := startMinio(t, false)
	defer cleanup()

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestIntegration_PresignAvatarUpload_OK(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	userID := uuid.New()

	info, err := st.PresignAvatarUpload(ctx, userID, "image/png", 128)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(info.AvatarKey, "avatars/"+userID.String()+"/"))
	require.True(t, strings.HasSuffix(info.AvatarKey, ".png"))
	require.Equal(t, "image/png", info.RequiredHeader["Content-Type"])

	// Загрузка по presigned URL действительно работает.
	body := bytes.Repeat([]byte{0x42}, 128)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, info.UploadURL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "image/png")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_PresignAvatarUpload_Validation(t *testing.T) {
	st, cleanup, cfg := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	userID := uuid.New()

	_, err := st.PresignAvatarUpload(ctx, userID, "application/pdf", 128)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.PresignAvatarUpload(ctx, userID, "image/png", 0)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.PresignAvatarUpload(ctx, userID, "image/png", cfg.Avatar.MaxSizeBytes+1)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_AvatarURL_And_Remove(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	require.Equal(t, "", st.AvatarURL(""))
	require.Equal(t, "https://cdn.example.org/avatars/x/y.png", st.AvatarURL("avatars/x/y.png"))

	// Удаление отсутствующего объекта не считается ошибкой.
	require.NoError(t, st.RemoveAvatar(context.Background(), "avatars/none/none.png"))
}
