// Package web embeds the single-page frontend.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// FS returns the frontend files rooted at the site root.
func FS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return sub
}

// Handler serves index.html at / and the scripts under /assets/. Directories
// other than the root are reported as missing instead of listed.
func Handler() http.Handler {
	return http.FileServer(http.FS(filesOnly{FS()}))
}

type filesOnly struct {
	fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err != nil || name == "." {
		return file, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}
