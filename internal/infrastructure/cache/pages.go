// Package cache implementa el caché de vistas de listado sobre Redis.
// Las claves se arman con la ruta de la página ("/dashboard/invoices") más los
// parámetros de la consulta; invalidar una ruta borra todas sus variantes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Pages guarda respuestas serializadas de listados con TTL e invalidación por ruta.
// Un *Pages nil (Redis no configurado) es seguro de usar: todo es miss y las
// escrituras son no-op.
type Pages struct {
	rdb *redis.Client
	ttl time.Duration
}

// New construye el caché de páginas sobre un cliente Redis.
func New(rdb *redis.Client, ttl time.Duration) *Pages {
	return &Pages{rdb: rdb, ttl: ttl}
}

// Get recupera y deserializa el valor de la clave en dest. El segundo retorno
// indica hit; una clave ausente no es error.
func (p *Pages) Get(ctx context.Context, key string, dest any) (bool, error) {
	if p == nil || p.rdb == nil {
		return false, nil
	}
	val, err := p.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set serializa value y lo guarda bajo la clave con el TTL del caché.
func (p *Pages) Set(ctx context.Context, key string, value any) error {
	if p == nil || p.rdb == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, key, b, p.ttl).Err()
}

// Invalidate borra todas las claves cacheadas de la ruta (la ruta exacta y
// cualquier variante con parámetros).
func (p *Pages) Invalidate(ctx context.Context, path string) error {
	if p == nil || p.rdb == nil {
		return nil
	}
	iter := p.rdb.Scan(ctx, 0, path+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return p.rdb.Del(ctx, keys...).Err()
}
