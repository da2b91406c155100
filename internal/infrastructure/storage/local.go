// Package storage guarda los archivos de comprobantes en disco local.
// La base de datos solo conserva metadatos y la ruta pública.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore implementación de FileStore sobre el sistema de archivos.
// Los archivos se sirven como estáticos bajo publicURL (ej. /uploads/comprobantes).
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore crea el directorio si no existe y devuelve el store.
func NewLocalStore(dir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Save escribe el archivo con un nombre único (timestamp + nombre saneado)
// y devuelve su ruta pública.
func (s *LocalStore) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(originalName))
	dst := filepath.Join(s.dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("cerrar archivo: %w", err)
	}
	return s.publicURL + "/" + name, nil
}

// Remove borra el archivo identificado por su ruta pública.
func (s *LocalStore) Remove(publicPath string) error {
	name := path.Base(publicPath)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("ruta inválida: %q", publicPath)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("borrar archivo: %w", err)
	}
	return nil
}

// sanitize deja solo caracteres seguros para nombre de archivo y descarta
// cualquier componente de ruta del nombre original.
func sanitize(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "archivo"
	}
	return b.String()
}
