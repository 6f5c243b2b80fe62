package ports

import "context"

// PageCache es el puerto del caché de vistas de listado. Las mutaciones lo
// invalidan por ruta después de escribir; los listados lo consultan antes de ir
// a la base de datos.
type PageCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, path string) error
}
