package httpclient

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func readParts(t *testing.T, r io.Reader, contentType string) []*multipart.Part {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}
	mr := multipart.NewReader(r, params["boundary"])
	var parts []*multipart.Part
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return parts
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		data, _ := io.ReadAll(part)
		part.Header.Set("X-Test-Body", string(data))
		parts = append(parts, part)
	}
}

func TestMultipartBody_Encode_FieldsInKeyOrder(t *testing.T) {
	mp := &MultipartBody{Fields: map[string]string{"zeta": "2", "alpha": "1"}}

	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	parts := readParts(t, reader, contentType)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].FormName() != "alpha" || parts[1].FormName() != "zeta" {
		t.Errorf("expected alpha before zeta, got %s, %s", parts[0].FormName(), parts[1].FormName())
	}
	if parts[0].Header.Get("X-Test-Body") != "1" {
		t.Errorf("alpha = %q, want 1", parts[0].Header.Get("X-Test-Body"))
	}
}

func TestMultipartBody_Encode_Files(t *testing.T) {
	tests := []struct {
		name     string
		file     FileField
		wantType string
	}{
		{"data with type", FileField{FieldName: "file", FileName: "posts.csv", ContentType: "text/csv", Data: []byte("a,b")}, "text/csv"},
		{"data default type", FileField{FieldName: "file", FileName: "blob.bin", Data: []byte("a,b")}, "application/octet-stream"},
		{"reader", FileField{FieldName: "file", FileName: "posts.csv", ContentType: "text/csv", Reader: strings.NewReader("a,b")}, "text/csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp := &MultipartBody{Files: []FileField{tt.file}}
			reader, contentType, err := mp.encode()
			if err != nil {
				t.Fatalf("encode() error: %v", err)
			}
			parts := readParts(t, reader, contentType)
			if len(parts) != 1 {
				t.Fatalf("expected 1 part, got %d", len(parts))
			}
			p := parts[0]
			if p.FileName() != tt.file.FileName {
				t.Errorf("filename = %q, want %q", p.FileName(), tt.file.FileName)
			}
			if ct := p.Header.Get("Content-Type"); ct != tt.wantType {
				t.Errorf("content type = %q, want %q", ct, tt.wantType)
			}
			if body := p.Header.Get("X-Test-Body"); body != "a,b" {
				t.Errorf("body = %q, want a,b", body)
			}
		})
	}
}

func TestMultipartBody_Encode_MissingFieldName(t *testing.T) {
	mp := &MultipartBody{Files: []FileField{{FileName: "x.csv"}}}
	if _, _, err := mp.encode(); err == nil {
		t.Fatal("expected error for a file without field name")
	}
}

func TestEscapeQuotes(t *testing.T) {
	if got := escapeQuotes(`my "posts"\final.csv`); got != `my \"posts\"\\final.csv` {
		t.Errorf("escapeQuotes = %q", got)
	}
}

func TestClient_Do_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm error: %v", err)
			return
		}
		if got := r.FormValue("dryRun"); got != "true" {
			t.Errorf("dryRun field = %q, want true", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile error: %v", err)
			return
		}
		defer file.Close()
		if header.Filename != "posts.csv" {
			t.Errorf("filename = %q, want posts.csv", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "content,platforms\nhello,twitter\n" {
			t.Errorf("file data = %q", data)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := c.Do(t.Context(), Request{
		Method: http.MethodPost,
		Path:   "/v1/posts/bulk-upload",
		Body: &MultipartBody{
			Fields: map[string]string{"dryRun": "true"},
			Files: []FileField{{
				FieldName:   "file",
				FileName:    "posts.csv",
				ContentType: "text/csv",
				Data:        []byte("content,platforms\nhello,twitter\n"),
			}},
		},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
