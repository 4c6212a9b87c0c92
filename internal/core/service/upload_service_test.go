package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/ports"
)

func newUploadService(uploads *stubUploadRepo, users *stubUserRepo, blobs *stubBlobStore) *UploadService {
	return NewUploadService(uploads, users, blobs, zerolog.Nop())
}

func uploadInput(userID, filename, content string) ports.CreateUploadInput {
	return ports.CreateUploadInput{
		UserID:      userID,
		Filename:    filename,
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func TestUploadService_Create_StoresBlobAndMetadata(t *testing.T) {
	uploads := newStubUploadRepo()
	blobs := newStubBlobStore()
	svc := newUploadService(uploads, newStubUserRepo(), blobs)

	up, err := svc.Create(context.Background(), userSess("u1"), uploadInput("", "report.pdf", "payload"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if up.UserID != "u1" {
		t.Fatalf("expected owner u1, got %s", up.UserID)
	}
	if up.StorageURL == "" || !strings.HasSuffix(up.StorageURL, "report.pdf") {
		t.Fatalf("unexpected storage url: %q", up.StorageURL)
	}
	if len(blobs.objects) != 1 {
		t.Fatalf("expected 1 stored blob, got %d", len(blobs.objects))
	}
	for key := range blobs.objects {
		// UUID prefix keeps identical filenames from colliding.
		if key == "report.pdf" {
			t.Fatalf("blob key missing unique prefix: %q", key)
		}
	}
}

// A failed metadata write must not leave the blob behind.
func TestUploadService_Create_CompensatesOnMetadataFailure(t *testing.T) {
	uploads := newStubUploadRepo()
	uploads.failOnAdd = true
	blobs := newStubBlobStore()
	svc := newUploadService(uploads, newStubUserRepo(), blobs)

	if _, err := svc.Create(context.Background(), userSess("u1"), uploadInput("", "report.pdf", "payload")); err == nil {
		t.Fatalf("expected error from metadata write")
	}
	if len(blobs.objects) != 0 {
		t.Fatalf("orphaned blob left in object storage")
	}
	if len(blobs.removed) != 1 {
		t.Fatalf("expected compensating remove, got %d", len(blobs.removed))
	}
}

func TestUploadService_Create_EmptyFilename(t *testing.T) {
	blobs := newStubBlobStore()
	svc := newUploadService(newStubUploadRepo(), newStubUserRepo(), blobs)

	if _, err := svc.Create(context.Background(), userSess("u1"), uploadInput("", "", "x")); err != domain.ErrEmptyFilename {
		t.Fatalf("expected ErrEmptyFilename, got %v", err)
	}
	if len(blobs.objects) != 0 {
		t.Fatalf("blob stored despite invalid input")
	}
}

func TestUploadService_Create_UserCannotUploadForOthers(t *testing.T) {
	blobs := newStubBlobStore()
	svc := newUploadService(newStubUploadRepo(), newStubUserRepo(), blobs)

	if _, err := svc.Create(context.Background(), userSess("u1"), uploadInput("u2", "report.pdf", "x")); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// Denied before anything touches object storage.
	if len(blobs.objects) != 0 {
		t.Fatalf("blob stored despite policy denial")
	}
}

func TestUploadService_Create_AdminOnBehalf(t *testing.T) {
	users := newStubUserRepo()
	staff := users.add("Max", "max@x.de", domain.RoleUser, "h")
	svc := newUploadService(newStubUploadRepo(), users, newStubBlobStore())

	up, err := svc.Create(context.Background(), adminSess(), uploadInput(staff.ID, "cert.pdf", "x"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if up.UserID != staff.ID {
		t.Fatalf("expected owner %s, got %s", staff.ID, up.UserID)
	}

	if _, err := svc.Create(context.Background(), adminSess(), uploadInput("ghost", "cert.pdf", "x")); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUploadService_List_AdminOnly(t *testing.T) {
	users := newStubUserRepo()
	staff := users.add("Max", "max@x.de", domain.RoleUser, "h")
	uploads := newStubUploadRepo()
	svc := newUploadService(uploads, users, newStubBlobStore())

	if _, err := svc.Create(context.Background(), userSess(staff.ID), uploadInput("", "report.pdf", "x")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	views, err := svc.List(context.Background(), adminSess())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 || views[0].OwnerName != "Max" {
		t.Fatalf("unexpected listing: %+v", views)
	}

	if _, err := svc.List(context.Background(), userSess(staff.ID)); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
