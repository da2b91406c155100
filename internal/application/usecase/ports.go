package usecase

import "io"

// FileStore almacenamiento de archivos de comprobantes. Lo implementa el
// adaptador de disco local en infrastructure/storage.
// Save escribe el archivo completo antes de devolver la ruta pública;
// Remove es best-effort y se invoca después de borrar la fila en DB.
type FileStore interface {
	Save(originalName string, r io.Reader) (publicPath string, err error)
	Remove(publicPath string) error
}
