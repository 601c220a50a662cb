package jsonfile

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/bnema/dmbot/internal/ports"
	"go.uber.org/zap"
)

type CharacterRepository struct {
	path string
	mu   *sync.RWMutex
	log  *zap.Logger
}

var _ ports.CharacterRepository = (*CharacterRepository)(nil)

func NewCharacterRepository(path string, log *zap.Logger) (*CharacterRepository, error) {
	path, err := normalizeDocumentPath(path)
	if err != nil {
		return nil, err
	}

	return &CharacterRepository{
		path: path,
		mu:   lockForPath(path),
		log:  noopLogger(log),
	}, nil
}

func (r *CharacterRepository) Load(ctx context.Context) map[domain.UserID]domain.Character {
	r.mu.RLock()
	defer r.mu.RUnlock()

	characters := map[domain.UserID]domain.Character{}

	data, ok, err := readDocument(r.path)
	if err != nil {
		r.log.Error("load character document", zap.String("path", r.path), zap.Error(err))
		return characters
	}
	if !ok {
		return characters
	}

	var file map[string]characterSchema
	if err := json.Unmarshal(data, &file); err != nil {
		r.log.Error("decode character document", zap.String("path", r.path), zap.Error(err))
		return characters
	}

	for userID, entry := range file {
		characters[domain.UserID(userID)] = fromCharacterSchema(entry)
	}

	return characters
}

func (r *CharacterRepository) Save(ctx context.Context, characters map[domain.UserID]domain.Character) {
	file := make(map[string]characterSchema, len(characters))
	for userID, character := range characters {
		file[string(userID)] = toCharacterSchema(character)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		r.log.Error("encode character document", zap.String("path", r.path), zap.Error(err))
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeDocument(r.path, data); err != nil {
		r.log.Error("save character document", zap.String("path", r.path), zap.Error(err))
	}
}
