package ports

import "io"

type TempStore interface {
	// Save пишет содержимое src во временный файл с расширением ext,
	// возвращает полный путь
	Save(src io.Reader, ext string) (string, error)
	Remove(path string) error
	Root() string
}
