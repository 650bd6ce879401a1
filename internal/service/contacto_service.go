package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ventadiaria/internal/dto"
	"ventadiaria/internal/model"
	"ventadiaria/internal/phone"
	"ventadiaria/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyContactos = "cache:contactos"

type ContactoService interface {
	// Listar returns the whole directory, ordered by name (Redis-cached).
	Listar(ctx context.Context) ([]dto.ContactoResponse, error)
	// Guardar upserts one entry manually, keyed by canonical phone.
	Guardar(ctx context.Context, req dto.GuardarContactoRequest) (*dto.ContactoResponse, error)
	// ImportarCSV parses an uploaded file and merge-upserts every valid row.
	// Structural failures abort with no partial writes.
	ImportarCSV(ctx context.Context, data []byte) (*dto.CSVImportResponse, error)
}

type contactoService struct {
	repo     repository.ContactoRepository
	rdb      *redis.Client // nil in unit tests, cache becomes a no-op
	cacheTTL time.Duration
}

func NewContactoService(repo repository.ContactoRepository, rdb *redis.Client, cacheTTL time.Duration) ContactoService {
	return &contactoService{repo: repo, rdb: rdb, cacheTTL: cacheTTL}
}

func (s *contactoService) Listar(ctx context.Context) ([]dto.ContactoResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKeyContactos).Result(); err == nil {
			var cached []dto.ContactoResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	contactos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ContactoResponse, 0, len(contactos))
	for _, c := range contactos {
		resp = append(resp, dto.ContactoResponse{Nombre: c.Nombre, Telefono: c.Telefono})
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKeyContactos, data, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear el directorio de contactos")
			}
		}
	}
	return resp, nil
}

func (s *contactoService) Guardar(ctx context.Context, req dto.GuardarContactoRequest) (*dto.ContactoResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, ErrNombreInvalido
	}
	tel := phone.Normalize(req.Telefono)
	if tel == "" {
		return nil, ErrTelefonoInvalido
	}

	if err := s.repo.Upsert(ctx, &model.Contacto{Nombre: nombre, Telefono: tel}); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)
	return &dto.ContactoResponse{Nombre: nombre, Telefono: tel}, nil
}

func (s *contactoService) ImportarCSV(ctx context.Context, data []byte) (*dto.CSVImportResponse, error) {
	contactos, errores, err := parseContactosCSV(string(data))
	if err != nil {
		return nil, err
	}

	// The directory is only touched once the whole file parsed cleanly.
	if err := s.repo.UpsertBatch(ctx, contactos); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)

	importados := make([]dto.ContactoResponse, 0, len(contactos))
	for _, c := range contactos {
		importados = append(importados, dto.ContactoResponse{Nombre: c.Nombre, Telefono: c.Telefono})
	}
	return &dto.CSVImportResponse{
		Importados: importados,
		Omitidas:   len(errores),
		Errores:    errores,
	}, nil
}

func (s *contactoService) invalidarCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKeyContactos).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de contactos")
	}
}
