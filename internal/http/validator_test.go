package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_BookReq(t *testing.T) {
	tests := []struct {
		name    string
		req     bookReq
		wantErr bool
	}{
		{
			name:    "valid - both fields set",
			req:     bookReq{Title: "1984", Author: "George Orwell"},
			wantErr: false,
		},
		{
			name:    "valid - optional fields absent",
			req:     bookReq{Title: "Untitled Draft", Author: "Anonymous"},
			wantErr: false,
		},
		{
			name:    "missing title",
			req:     bookReq{Author: "George Orwell"},
			wantErr: true,
		},
		{
			name:    "missing author",
			req:     bookReq{Title: "1984"},
			wantErr: true,
		},
		{
			name:    "both missing",
			req:     bookReq{},
			wantErr: true,
		},
		{
			name:    "whitespace-only title",
			req:     bookReq{Title: "   ", Author: "George Orwell"},
			wantErr: true,
		},
		{
			name:    "whitespace-only author",
			req:     bookReq{Title: "1984", Author: "\t\n"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.req)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateStruct_ReportsFieldNames(t *testing.T) {
	errs := ValidateStruct(bookReq{})
	assert.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "author")
}
