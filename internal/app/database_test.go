//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/circuitbreaker"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
}

func TestDatabaseComponents_CloseNil(t *testing.T) {
	var components *DatabaseComponents
	assert.NotPanics(t, components.Close)
	assert.NotPanics(t, (&DatabaseComponents{}).Close)
}

func TestNewCircuitBreaker(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 1,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}
	duplicate := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "duplicate key"}},
	}

	tests := []struct {
		name          string
		err           error
		expectedState circuitbreaker.State
	}{
		{name: "duplicate key does not trip", err: duplicate, expectedState: circuitbreaker.StateClosed},
		{name: "server error trips", err: errors.New("connection refused"), expectedState: circuitbreaker.StateOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newCircuitBreaker("mongodb-test", cfg)

			err := cb.Execute(context.Background(), func() error { return tt.err })

			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.expectedState, cb.State())
			assert.Equal(t, "mongodb-test", cb.Name())
		})
	}
}
