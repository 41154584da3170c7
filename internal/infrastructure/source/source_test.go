package source_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplychain-analytics/internal/domain"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/source"
	"github.com/jhoicas/supplychain-analytics/pkg/config"
	"github.com/jhoicas/supplychain-analytics/pkg/logger"
)

const csvData = "Product type,SKU,Price,Availability,Number of products sold,Revenue generated," +
	"Customer demographics,Stock levels,Order quantities,Shipping times,Shipping carriers," +
	"Shipping costs,Supplier name,Lead time,Production volumes,Manufacturing costs," +
	"Inspection results,Defect rates,Transportation modes,Costs\n" +
	"cosmetics,SKU9,10,1,2,20,Male,3,4,5,Carrier C,1.5,Supplier 1,6,7,8.5,Pass,0.5,Air,100\n"

type failingSource struct{}

func (failingSource) Load(context.Context) (*entity.Dataset, error) {
	return nil, domain.ErrEmptyDataset
}

func TestOpen_CSVRegistraCarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SCA.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})
	cfg := &config.Config{Dataset: config.DatasetConfig{Source: "csv", Path: path, Delimiter: ","}}

	src, closeFn, err := source.Open(context.Background(), cfg, log)
	require.NoError(t, err)
	defer closeFn()

	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.Contains(t, buf.String(), `"message":"dataset cargado"`)
	assert.Contains(t, buf.String(), `"rows":1`)
}

func TestOpen_OrigenDesconocido(t *testing.T) {
	cfg := &config.Config{Dataset: config.DatasetConfig{Source: "s3", Delimiter: ","}}
	_, closeFn, err := source.Open(context.Background(), cfg, nil)
	require.NotNil(t, closeFn)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWithLogging_PropagaError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	_, err := source.WithLogging(failingSource{}, log).Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrEmptyDataset))
	assert.Contains(t, buf.String(), `"level":"error"`)
}
