package filemgr

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

// buildForm assembles an in-memory multipart form with one file per entry.
func buildForm(t *testing.T, files map[string][]byte) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile("image", name)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(content)
	}
	mw.Close()

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func singleHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	form := buildForm(t, map[string][]byte{name: content})
	return form.File["image"][0]
}

func TestValidateHeaderAcceptsPNG(t *testing.T) {
	header := singleHeader(t, "avatar.png", pngMagic)
	if err := ValidateHeader(header); err != nil {
		t.Errorf("valid png rejected: %v", err)
	}
}

func TestValidateHeaderRejectsExtension(t *testing.T) {
	header := singleHeader(t, "notes.txt", pngMagic)
	if err := ValidateHeader(header); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("err = %v, want ErrInvalidExtension", err)
	}
}

func TestValidateHeaderRejectsSpoofedMIME(t *testing.T) {
	header := singleHeader(t, "fake.png", []byte("just some text pretending to be an image"))
	if err := ValidateHeader(header); !errors.Is(err, ErrInvalidMIME) {
		t.Errorf("err = %v, want ErrInvalidMIME", err)
	}
}

func TestValidateHeaderRejectsOversize(t *testing.T) {
	big := make([]byte, MaxFileSize+1)
	copy(big, pngMagic)
	header := singleHeader(t, "huge.png", big)
	if err := ValidateHeader(header); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestCheckFormFileCount(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for i := 0; i < MaxFilesPerRequest+1; i++ {
		part, _ := mw.CreateFormFile("image", "a.png")
		part.Write(pngMagic)
	}
	mw.Close()

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	defer form.RemoveAll()

	if err := CheckForm(form); !errors.Is(err, ErrTooManyFiles) {
		t.Errorf("err = %v, want ErrTooManyFiles", err)
	}
	if err := CheckForm(nil); err != nil {
		t.Errorf("nil form should pass: %v", err)
	}
}

func TestSaveFormFileAbsentOptional(t *testing.T) {
	url, err := SaveFormFile(nil, "image", EntityBlog, false)
	if err != nil || url != "" {
		t.Errorf("absent optional file: url=%q err=%v, want empty and nil", url, err)
	}
	if _, err := SaveFormFile(nil, "image", EntityBlog, true); err == nil {
		t.Error("absent required file should fail")
	}
}

func TestPublicURLShape(t *testing.T) {
	got := PublicURL(EntityProject, "abc.png")
	want := "/static/uploads/project/photo/abc.png"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}
