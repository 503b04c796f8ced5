package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/drakos74/line-fit/internal/metrics"
	"github.com/drakos74/line-fit/internal/server"
	"github.com/drakos74/line-fit/internal/storage"
	"github.com/drakos74/line-fit/ols"
	"github.com/rs/zerolog/log"
)

const (
	latestLabel = "latest"
	fitLabel    = "fit"
	rawLabel    = "raw"
	apiShard    = "api"
)

// service wires the estimator to persistence and metrics behind the http routes.
type service struct {
	confidence float64
	fits       storage.Persistence
	snapshots  storage.Persistence
}

func newService(fits storage.Shard, snapshots storage.Shard, confidence float64) (*service, error) {
	if confidence <= 0 {
		confidence = ols.DefaultConfidence
	}
	fitStore, err := fits(apiShard)
	if err != nil {
		return nil, fmt.Errorf("could not create fit storage: %w", err)
	}
	snapshotStore, err := snapshots(apiShard)
	if err != nil {
		return nil, fmt.Errorf("could not create snapshot storage: %w", err)
	}
	return &service{
		confidence: confidence,
		fits:       fitStore,
		snapshots:  snapshotStore,
	}, nil
}

// Routes returns the http surface of the service.
func (s *service) Routes() []server.Route {
	return []server.Route{
		{Action: server.Api, Path: "fit", Method: server.POST, Exec: s.fit},
		{Action: server.Api, Path: "predict", Method: server.POST, Exec: s.predict},
		{Action: server.Api, Path: "forecast", Method: server.POST, Exec: s.forecast},
	}
}

func (s *service) fit(r *http.Request) ([]byte, int, error) {
	var request FitRequest
	if err := server.JsonRead(r, false, &request); err != nil {
		return []byte(err.Error()), http.StatusBadRequest, nil
	}
	if request.Name == "" {
		return []byte("name is required"), http.StatusBadRequest, nil
	}

	result, err := ols.Fit(request.X, request.Y, ols.WithConfidence(s.level(request.Confidence)))
	if err != nil {
		metrics.Observer.Increment(request.Name, metrics.OutcomeErr)
		return []byte(err.Error()), http.StatusBadRequest, nil
	}

	doc := storage.NewDocument(request.Name, result)
	if err := s.store(doc, request); err != nil {
		metrics.Observer.Increment(request.Name, metrics.OutcomeErr)
		return nil, 0, err
	}

	metrics.Observer.Increment(request.Name, metrics.OutcomeOK)
	log.Info().
		Str("dataset", request.Name).
		Str("id", doc.ID).
		Int("n", result.N).
		Float64("slope", result.Slope.Value).
		Float64("intercept", result.Intercept.Value).
		Float64("r2", result.R2).
		Msg("fitted dataset")

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, 0, fmt.Errorf("could not encode document: %w", err)
	}
	return b, http.StatusOK, nil
}

// store persists the fit under the dataset name and the fit id,
// together with the raw snapshot the line was computed on.
func (s *service) store(doc storage.Document, request FitRequest) error {
	if err := s.fits.Store(storage.NewKey(doc.Name, latestLabel), doc); err != nil {
		return fmt.Errorf("could not store document '%s': %w", doc.Name, err)
	}
	if err := s.fits.Store(storage.NewKey(doc.ID, fitLabel), doc); err != nil {
		return fmt.Errorf("could not store document '%s': %w", doc.ID, err)
	}
	if err := s.snapshots.Store(storage.NewKey(doc.Name, rawLabel), storage.Snapshot{
		Name: doc.Name,
		X:    request.X,
		Y:    request.Y,
	}); err != nil {
		return fmt.Errorf("could not store snapshot '%s': %w", doc.Name, err)
	}
	return nil
}

func (s *service) predict(r *http.Request) ([]byte, int, error) {
	var request PredictRequest
	if err := server.JsonRead(r, false, &request); err != nil {
		return []byte(err.Error()), http.StatusBadRequest, nil
	}

	result, code, err := s.resolve(request)
	if err != nil {
		if code == 0 {
			return nil, 0, err
		}
		return []byte(err.Error()), code, nil
	}

	b, err := json.Marshal(PredictResponse{Values: result.PredictAll(request.X)})
	if err != nil {
		return nil, 0, fmt.Errorf("could not encode response: %w", err)
	}
	return b, http.StatusOK, nil
}

// resolve finds the line for the request : explicit coefficients win,
// then the fit id, then the latest fit of the dataset name.
func (s *service) resolve(request PredictRequest) (*ols.Result, int, error) {
	if request.Slope != nil && request.Intercept != nil {
		return &ols.Result{
			Slope:     ols.Coefficient{Value: *request.Slope},
			Intercept: ols.Coefficient{Value: *request.Intercept},
		}, 0, nil
	}

	var key storage.Key
	switch {
	case request.ID != "":
		key = storage.NewKey(request.ID, fitLabel)
	case request.Name != "":
		key = storage.NewKey(request.Name, latestLabel)
	default:
		return nil, http.StatusBadRequest, fmt.Errorf("predict needs coefficients, a fit id or a dataset name")
	}

	var doc storage.Document
	if err := s.fits.Load(key, &doc); err != nil {
		if errors.Is(err, storage.NotFoundErr) {
			return nil, http.StatusNotFound, err
		}
		return nil, 0, err
	}
	if doc.Result == nil {
		return nil, http.StatusNotFound, fmt.Errorf("document '%s' holds no result: %w", key.Name, storage.NotFoundErr)
	}
	return doc.Result, 0, nil
}

// forecast refits the stored snapshot, as interval widths draw on fit
// internals that do not survive serialization.
func (s *service) forecast(r *http.Request) ([]byte, int, error) {
	var request ForecastRequest
	if err := server.JsonRead(r, false, &request); err != nil {
		return []byte(err.Error()), http.StatusBadRequest, nil
	}
	if request.Name == "" {
		return []byte("name is required"), http.StatusBadRequest, nil
	}

	var snapshot storage.Snapshot
	if err := s.snapshots.Load(storage.NewKey(request.Name, rawLabel), &snapshot); err != nil {
		if errors.Is(err, storage.NotFoundErr) {
			return []byte(err.Error()), http.StatusNotFound, nil
		}
		return nil, 0, err
	}

	result, err := ols.Fit(snapshot.X, snapshot.Y, ols.WithConfidence(s.level(request.Confidence)))
	if err != nil {
		return []byte(err.Error()), http.StatusBadRequest, nil
	}

	response := ForecastResponse{Forecasts: make([]ols.Forecast, len(request.X))}
	for i, x := range request.X {
		forecast, err := result.Forecast(x)
		if err != nil {
			return []byte(err.Error()), http.StatusBadRequest, nil
		}
		response.Forecasts[i] = *forecast
	}

	b, err := json.Marshal(response)
	if err != nil {
		return nil, 0, fmt.Errorf("could not encode response: %w", err)
	}
	return b, http.StatusOK, nil
}

// level picks the request confidence. Only 0 means absent, json omitempty
// drops the zero value ; anything else passes through for Fit to validate.
func (s *service) level(confidence float64) float64 {
	if confidence == 0 {
		return s.confidence
	}
	return confidence
}
