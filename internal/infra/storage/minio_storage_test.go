package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPathInBucket(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		bucket string
		want   string
		wantOK bool
	}{
		{
			name:   "signed url with query",
			rawURL: "https://storage.example.com/compliance-docs/1b4e28ba/business_license/1700000000000.pdf?X-Amz-Signature=abc",
			bucket: "compliance-docs",
			want:   "1b4e28ba/business_license/1700000000000.pdf",
			wantOK: true,
		},
		{
			name:   "different bucket",
			rawURL: "https://storage.example.com/other-bucket/a/b.pdf",
			bucket: "compliance-docs",
			wantOK: false,
		},
		{
			name:   "bucket prefix but empty key",
			rawURL: "https://storage.example.com/compliance-docs/",
			bucket: "compliance-docs",
			wantOK: false,
		},
		{
			name:   "not a url",
			rawURL: "://nope",
			bucket: "compliance-docs",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := objectPathInBucket(tt.rawURL, tt.bucket)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
