package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// mockS3 keeps objects in memory keyed by bucket/key.
type mockS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	deletes []string
	failDel error
}

func newMockS3() *mockS3 { return &mockS3{objects: map[string][]byte{}} }

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(params.Body); err != nil {
		return nil, err
	}
	m.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = buf.Bytes()
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	m.deletes = append(m.deletes, key)
	if m.failDel != nil {
		return nil, m.failDel
	}
	delete(m.objects, key)
	return &s3.DeleteObjectOutput{}, nil
}

func newTestS3(m *mockS3) *S3 {
	return &S3{
		Client:        m,
		Bucket:        "shop-images",
		Prefix:        "products",
		PublicBaseURL: "https://cdn.example.com",
	}
}

func TestS3_PutThenDeleteByURL(t *testing.T) {
	m := newMockS3()
	s := newTestS3(m)

	res, err := s.Put(context.Background(), strings.NewReader("png-bytes"), PutInput{Filename: "Photo.PNG", ContentType: "image/png"})
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	if !strings.HasPrefix(res.Key, "products/") || !strings.HasSuffix(res.Key, ".png") {
		t.Fatalf("unexpected key %s", res.Key)
	}
	if res.URL != "https://cdn.example.com/"+res.Key {
		t.Fatalf("unexpected url %s", res.URL)
	}

	if err := s.Delete(context.Background(), res.URL); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if len(m.objects) != 0 {
		t.Fatalf("expected object removed, still have %d", len(m.objects))
	}
	if m.deletes[0] != "shop-images/"+res.Key {
		t.Fatalf("expected delete of %s, got %s", res.Key, m.deletes[0])
	}
}

func TestS3_DeleteByKey(t *testing.T) {
	m := newMockS3()
	s := newTestS3(m)

	if err := s.Delete(context.Background(), "products/abc.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.deletes[0] != "shop-images/products/abc.jpg" {
		t.Fatalf("unexpected delete key %s", m.deletes[0])
	}
}

func TestS3_DeleteForeignURL(t *testing.T) {
	m := newMockS3()
	s := newTestS3(m)

	err := s.Delete(context.Background(), "https://elsewhere.example.org/products/abc.jpg")
	if !errors.Is(err, ErrForeignRef) {
		t.Fatalf("expected ErrForeignRef, got %v", err)
	}
	if len(m.deletes) != 0 {
		t.Fatal("expected no DeleteObject call for foreign reference")
	}
}

func TestS3_DeleteError(t *testing.T) {
	m := newMockS3()
	m.failDel = errors.New("AccessDenied")
	s := newTestS3(m)

	if err := s.Delete(context.Background(), "products/abc.jpg"); !errors.Is(err, m.failDel) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}
