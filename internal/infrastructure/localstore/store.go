// Package localstore implementa los repositorios de dominio sobre un
// almacén de documentos JSON en disco: el análogo local del storage del
// navegador. Un archivo por colección (company.json, settings.json,
// products.json, invoices.json), escrituras atómicas vía archivo temporal
// + rename, y defaults explícitos al leer registros antiguos con campos
// ausentes.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store acceso serializado al directorio de datos. Los repositorios
// comparten una instancia; el mutex cubre el ciclo read-modify-write de
// cada operación.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore crea el directorio de datos si no existe.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// read carga un documento JSON. Devuelve false sin error si el archivo
// aún no existe (instalación nueva).
func (s *Store) read(name string, v interface{}) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("leer %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", name, err)
	}
	return true, nil
}

// write guarda un documento JSON de forma atómica (temp + rename), para
// que un corte a mitad de escritura no corrompa el archivo anterior.
func (s *Store) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renombrar %s: %w", name, err)
	}
	return nil
}
