package storage

import (
	"time"

	"github.com/drakos74/line-fit/ols"
	"github.com/google/uuid"
)

// Document is a persisted fit record.
type Document struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Created time.Time   `json:"created"`
	Result  *ols.Result `json:"result"`
}

// NewDocument wraps a fit result under a fresh identifier.
func NewDocument(name string, result *ols.Result) Document {
	return Document{
		ID:      uuid.New().String(),
		Name:    name,
		Created: time.Now(),
		Result:  result,
	}
}

// Snapshot is a raw dataset, the paired samples a fit is computed on.
type Snapshot struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}
