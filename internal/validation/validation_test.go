package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "Stay hungry, stay foolish", want: "Stay hungry, stay foolish"},
		{name: "script tag stripped", in: `Hello <script>alert("x")</script>world`, want: "Hello world"},
		{name: "script tag case insensitive", in: `<SCRIPT src="evil.js">a</SCRIPT>ok`, want: "ok"},
		{name: "script with surrounding words", in: "hello <script>alert(1)</script> world", want: "hello  world"},
		{name: "script spanning lines", in: "a <script>\nalert(1);\n</script> b", want: "a  b"},
		{name: "markup inside script body", in: "<script>if (a<b) { f() }</script>done", want: "done"},
		{name: "javascript scheme stripped", in: "click javascript:alert(1) now", want: "click alert(1) now"},
		{name: "event handler stripped", in: `nice onclick="steal()" try`, want: "nice  try"},
		{name: "surrounding whitespace trimmed", in: "  trimmed  ", want: "trimmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.in, MaxTextLength)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_Empty(t *testing.T) {
	_, err := Text("", MaxTextLength)
	assert.ErrorIs(t, err, errs.ErrEmptyText)
}

func TestText_TooLong(t *testing.T) {
	_, err := Text(strings.Repeat("a", MaxTextLength+1), MaxTextLength)

	var tooLong *errs.TextTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, MaxTextLength, tooLong.MaxLength)
}

func TestText_ExactLimitAllowed(t *testing.T) {
	text := strings.Repeat("a", MaxTextLength)

	got, err := Text(text, MaxTextLength)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestImage(t *testing.T) {
	tests := []struct {
		name        string
		size        int64
		contentType string
		filename    string
		wantErr     bool
	}{
		{name: "valid jpeg", size: 1024, contentType: "image/jpeg", filename: "photo.jpg"},
		{name: "valid webp", size: 1024, contentType: "image/webp", filename: "photo.webp"},
		{name: "content type case insensitive", size: 1024, contentType: "IMAGE/PNG", filename: "photo.png"},
		{name: "no extension allowed", size: 1024, contentType: "image/png", filename: "photo"},
		{name: "empty file", size: 0, contentType: "image/jpeg", filename: "photo.jpg", wantErr: true},
		{name: "too large", size: MaxFileSize + 1, contentType: "image/jpeg", filename: "photo.jpg", wantErr: true},
		{name: "unsupported type", size: 1024, contentType: "application/pdf", filename: "doc.pdf", wantErr: true},
		{name: "unsupported extension", size: 1024, contentType: "image/jpeg", filename: "photo.bmp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Image(tt.size, tt.contentType, tt.filename, MaxFileSize)
			if tt.wantErr {
				var ve *errs.ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "my_photo_1_.jpg", Filename("my photo (1).jpg"))
	assert.Equal(t, "safe-name.png", Filename("safe-name.png"))
	assert.LessOrEqual(t, len(Filename(strings.Repeat("x", 300))), MaxFilenameLength)
}
