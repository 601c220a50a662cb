package jsonfile

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/bnema/dmbot/internal/ports"
	"go.uber.org/zap"
)

type CombatRepository struct {
	path string
	mu   *sync.RWMutex
	log  *zap.Logger
}

var _ ports.CombatRepository = (*CombatRepository)(nil)

func NewCombatRepository(path string, log *zap.Logger) (*CombatRepository, error) {
	path, err := normalizeDocumentPath(path)
	if err != nil {
		return nil, err
	}

	return &CombatRepository{
		path: path,
		mu:   lockForPath(path),
		log:  noopLogger(log),
	}, nil
}

func (r *CombatRepository) Load(ctx context.Context) domain.Encounter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok, err := readDocument(r.path)
	if err != nil {
		r.log.Error("load combat document", zap.String("path", r.path), zap.Error(err))
		return domain.Encounter{}
	}
	if !ok {
		return domain.Encounter{}
	}

	var file encounterSchema
	if err := json.Unmarshal(data, &file); err != nil {
		r.log.Error("decode combat document", zap.String("path", r.path), zap.Error(err))
		return domain.Encounter{}
	}

	return fromEncounterSchema(file)
}

func (r *CombatRepository) Save(ctx context.Context, encounter domain.Encounter) {
	data, err := json.MarshalIndent(toEncounterSchema(encounter), "", "  ")
	if err != nil {
		r.log.Error("encode combat document", zap.String("path", r.path), zap.Error(err))
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeDocument(r.path, data); err != nil {
		r.log.Error("save combat document", zap.String("path", r.path), zap.Error(err))
	}
}
