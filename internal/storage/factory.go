package storage

import (
	"context"
	"errors"
	"fmt"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Settings selects and configures the image store. It is filled by
// config.Load from STORAGE_DRIVER and the LOCAL_*/S3_* variables.
type Settings struct {
	Driver         string
	LocalDir       string
	LocalURLPrefix string
	S3             S3Config
}

func (s Settings) Validate() error {
	switch s.Driver {
	case DriverLocal:
		if s.LocalDir == "" || s.LocalURLPrefix == "" {
			return errors.New("local storage needs LOCAL_UPLOAD_DIR and LOCAL_UPLOAD_URL_PREFIX")
		}
		return nil
	case DriverS3:
		if s.S3.Region == "" || s.S3.Bucket == "" || s.S3.PublicBaseURL == "" {
			return errors.New("s3 storage needs S3_REGION, S3_BUCKET and S3_PUBLIC_BASE_URL")
		}
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", s.Driver)
	}
}

// Open builds the store named by s.Driver.
func Open(ctx context.Context, s Settings) (Storage, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Driver == DriverS3 {
		st, err := NewS3(ctx, s.S3)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
	return NewLocal(s.LocalDir, s.LocalURLPrefix), nil
}
