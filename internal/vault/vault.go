package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Vault is the filesystem capability the note routines run against. All paths
// are relative to the vault root. Implementations are not expected to be safe
// for concurrent use; the app runs its commands one at a time.
type Vault interface {
	// ReadDir lists the direct children of a folder.
	ReadDir(folder string) ([]fs.DirEntry, error)
	// Exists reports whether a file or folder exists at the path.
	Exists(rel string) bool
	// ReadFile returns the contents of a file.
	ReadFile(rel string) ([]byte, error)
	// CreateFile creates a new file with the given content. It fails if the
	// file already exists.
	CreateFile(rel string, content []byte) error
	// DeleteFile removes a file.
	DeleteFile(rel string) error
	// CreateFolder creates a folder, including missing parents. Creating an
	// existing folder is not an error.
	CreateFolder(rel string) error
	// Abs returns the absolute path for a vault-relative path.
	Abs(rel string) string
}

// DirVault implements Vault over a directory on the local filesystem.
type DirVault struct {
	root string
}

// NewDirVault creates a DirVault rooted at dir. The directory itself is
// created if missing.
func NewDirVault(dir string) (*DirVault, error) {
	absRoot, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault dir %q: %w", dir, err)
	}
	if err := os.MkdirAll(absRoot, dirPerm); err != nil {
		return nil, fmt.Errorf("create vault dir %q: %w", absRoot, err)
	}
	return &DirVault{root: absRoot}, nil
}

// Root returns the absolute vault root directory.
func (v *DirVault) Root() string {
	return v.root
}

func (v *DirVault) ReadDir(folder string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(v.Abs(folder))
	if err != nil {
		return nil, fmt.Errorf("read folder %q: %w", folder, err)
	}
	return entries, nil
}

func (v *DirVault) Exists(rel string) bool {
	_, err := os.Stat(v.Abs(rel))
	return err == nil
}

func (v *DirVault) ReadFile(rel string) ([]byte, error) {
	data, err := os.ReadFile(v.Abs(rel))
	if err != nil {
		return nil, fmt.Errorf("read file %q: %w", rel, err)
	}
	return data, nil
}

func (v *DirVault) CreateFile(rel string, content []byte) error {
	f, err := os.OpenFile(v.Abs(rel), os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("create file %q: %w", rel, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("write file %q: %w", rel, err)
	}
	return f.Close()
}

func (v *DirVault) DeleteFile(rel string) error {
	if err := os.Remove(v.Abs(rel)); err != nil {
		return fmt.Errorf("delete file %q: %w", rel, err)
	}
	return nil
}

func (v *DirVault) CreateFolder(rel string) error {
	if err := os.MkdirAll(v.Abs(rel), dirPerm); err != nil {
		return fmt.Errorf("create folder %q: %w", rel, err)
	}
	return nil
}

func (v *DirVault) Abs(rel string) string {
	return filepath.Join(v.root, filepath.FromSlash(rel))
}
