package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateBlogRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateBlogRequest
		wantErr bool
	}{
		{
			name:    "valid without image",
			req:     CreateBlogRequest{Title: "T", Category: "Tech", Content: "C"},
			wantErr: false,
		},
		{
			name:    "valid with image",
			req:     CreateBlogRequest{Title: "T", Category: "Tech", Content: "C", Image: "https://cdn.example.com/pic.png"},
			wantErr: false,
		},
		{
			name:    "empty image allowed",
			req:     CreateBlogRequest{Title: "T", Category: "Tech", Content: "C", Image: ""},
			wantErr: false,
		},
		{
			name:    "missing title",
			req:     CreateBlogRequest{Category: "Tech", Content: "C"},
			wantErr: true,
		},
		{
			name:    "missing category",
			req:     CreateBlogRequest{Title: "T", Content: "C"},
			wantErr: true,
		},
		{
			name:    "missing content",
			req:     CreateBlogRequest{Title: "T", Category: "Tech"},
			wantErr: true,
		},
		{
			name:    "relative image url",
			req:     CreateBlogRequest{Title: "T", Category: "Tech", Content: "C", Image: "/pic.png"},
			wantErr: true,
		},
		{
			name:    "garbage image url",
			req:     CreateBlogRequest{Title: "T", Category: "Tech", Content: "C", Image: "not a url"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBlogRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateBlogRequest
		wantErr bool
	}{
		{name: "empty partial is valid", req: UpdateBlogRequest{}, wantErr: false},
		{name: "title only", req: UpdateBlogRequest{Title: strPtr("X")}, wantErr: false},
		{name: "present title must be non-empty", req: UpdateBlogRequest{Title: strPtr("")}, wantErr: true},
		{name: "present category must be non-empty", req: UpdateBlogRequest{Category: strPtr("")}, wantErr: true},
		{name: "present content must be non-empty", req: UpdateBlogRequest{Content: strPtr("")}, wantErr: true},
		{name: "image cleared to empty is valid", req: UpdateBlogRequest{Image: strPtr("")}, wantErr: false},
		{name: "image absolute url is valid", req: UpdateBlogRequest{Image: strPtr("https://x.com/a.png")}, wantErr: false},
		{name: "image relative url is invalid", req: UpdateBlogRequest{Image: strPtr("a.png")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBlogRequest_Empty(t *testing.T) {
	assert.True(t, UpdateBlogRequest{}.Empty())
	assert.False(t, UpdateBlogRequest{Title: strPtr("X")}.Empty())
	assert.False(t, UpdateBlogRequest{Image: strPtr("")}.Empty())
}
