package images_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alphire-robotics/team-cms/internal/images"
)

func newTestService(t *testing.T, storage *images.MemoryObjectStorage) images.Service {
	t.Helper()

	return images.NewService(storage, images.NewMemoryImageRepository(),
		images.WithClock(func() time.Time {
			return time.UnixMilli(1735689600000)
		}),
		images.WithKeySuffix(func() string { return "abc123" }),
	)
}

func TestUploadStoresAndSigns(t *testing.T) {
	storage := images.NewMemoryObjectStorage()
	svc := newTestService(t, storage)

	result, err := svc.Upload(context.Background(), images.UploadRequest{
		FileName:    "team-photo.JPG",
		ContentType: "image/jpeg",
		Size:        128,
		Body:        strings.NewReader("fake image bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if result.FileName != "1735689600000-abc123.JPG" {
		t.Fatalf("upload key = %q", result.FileName)
	}
	if result.URL != "memory://bucket/1735689600000-abc123.JPG" {
		t.Fatalf("signed url = %q", result.URL)
	}
	if _, ok := storage.Object(result.FileName); !ok {
		t.Fatal("object body not stored")
	}
}

func TestUploadRejectsMissingAndOversizedFiles(t *testing.T) {
	storage := images.NewMemoryObjectStorage()
	svc := newTestService(t, storage)
	ctx := context.Background()

	if _, err := svc.Upload(ctx, images.UploadRequest{}); !errors.Is(err, images.ErrNoFile) {
		t.Fatalf("missing body error = %v", err)
	}

	_, err := svc.Upload(ctx, images.UploadRequest{
		Size: images.DefaultMaxUploadSize + 1,
		Body: strings.NewReader("x"),
	})
	if !errors.Is(err, images.ErrFileTooLarge) {
		t.Fatalf("oversize error = %v", err)
	}
	if storage.Len() != 0 {
		t.Fatal("rejected uploads must not reach storage")
	}
}

func TestUploadFailureLeavesNothingBehind(t *testing.T) {
	storage := images.NewMemoryObjectStorage()
	svc := newTestService(t, storage)

	storeErr := errors.New("bucket unavailable")
	storage.FailPuts(storeErr)

	_, err := svc.Upload(context.Background(), images.UploadRequest{
		FileName: "x.png",
		Size:     10,
		Body:     strings.NewReader("0123456789"),
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("upload error = %v", err)
	}
	if storage.Len() != 0 {
		t.Fatal("failed upload left an object behind")
	}
}

func TestWebsiteImagesSeedsDefaultSlots(t *testing.T) {
	svc := newTestService(t, images.NewMemoryObjectStorage())
	ctx := context.Background()

	got, err := svc.WebsiteImages(ctx)
	if err != nil {
		t.Fatalf("WebsiteImages: %v", err)
	}
	for _, slot := range []string{"heroBackground", "heroLogo", "aboutTeamPhoto"} {
		if url, ok := got[slot]; !ok || url != "" {
			t.Fatalf("slot %q = %q, ok = %v", slot, url, ok)
		}
	}

	// Replacing and re-reading must not reseed.
	if err := svc.SetWebsiteImages(ctx, map[string]string{"heroLogo": "logo.png"}); err != nil {
		t.Fatalf("SetWebsiteImages: %v", err)
	}
	got, err = svc.WebsiteImages(ctx)
	if err != nil {
		t.Fatalf("second WebsiteImages: %v", err)
	}
	if len(got) != 1 || got["heroLogo"] != "logo.png" {
		t.Fatalf("replaced map = %v", got)
	}
}
