//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fittracker/internal/activities"
	"github.com/2beens/fittracker/internal/dashboard"
	"github.com/2beens/fittracker/internal/kvstore"
	"github.com/2beens/fittracker/internal/water"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, url, body string) (int, []byte) {
	t := s.T()

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestTrackerFlow() {
	for _, backend := range []string{kvstore.BackendRedis, kvstore.BackendPostgres} {
		s.Run(backend, func() {
			s.trackerFlow(backend)
		})
	}
}

func (s *IntegrationTestSuite) trackerFlow(backend string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	endpoint := s.endpoint(backend)

	status, respBytes := s.doRequest(ctx, "POST", endpoint+"/activities",
		`{"activity": "Running", "duration": "30", "distance": "5", "calories": "300", "notes": "intervals"}`)
	require.Equal(t, http.StatusCreated, status, string(respBytes))

	var running activities.Activity
	require.NoError(t, json.Unmarshal(respBytes, &running))

	status, _ = s.doRequest(ctx, "POST", endpoint+"/activities",
		`{"activity": "Swimming", "duration": "45", "distance": "1.5", "calories": "400"}`)
	require.Equal(t, http.StatusCreated, status)

	status, respBytes = s.doRequest(ctx, "PUT", endpoint+"/activities/"+running.ID,
		`{"activity": "Running", "duration": "35", "distance": "5.2", "calories": "320", "date": "`+running.Date+`"}`)
	require.Equal(t, http.StatusOK, status, string(respBytes))

	status, _ = s.doRequest(ctx, "POST", endpoint+"/water/increment", "")
	require.Equal(t, http.StatusOK, status)

	status, _ = s.doRequest(ctx, "PUT", endpoint+"/profile", `{"name": "Sam", "weight": "80", "height": "180"}`)
	require.Equal(t, http.StatusOK, status)

	status, respBytes = s.doRequest(ctx, "GET", endpoint+"/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(respBytes), fmt.Sprintf(`"backend":"%s"`, backend))

	// a fresh server on the same medium sees everything written so far
	restartPort := redisServerPort + 10
	if backend == kvstore.BackendPostgres {
		restartPort = postgresServerPort + 10
	}
	restarted, err := s.startServer(ctx, backend, restartPort)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, restarted.GracefulShutdown())
	}()

	status, respBytes = s.doRequest(ctx, "GET", fmt.Sprintf("http://%s:%d/dashboard", serverHost, restartPort), "")
	require.Equal(t, http.StatusOK, status)

	var snapshot dashboard.Snapshot
	require.NoError(t, json.Unmarshal(respBytes, &snapshot))
	require.Len(t, snapshot.Activities, 2)
	assert.Equal(t, running.ID, snapshot.Activities[0].ID)
	assert.Equal(t, 35, snapshot.Activities[0].Duration)
	assert.Equal(t, "Swimming", snapshot.Activities[1].Activity)
	assert.Equal(t, 80, snapshot.Analytics.Totals.DurationMinutes)
	assert.Equal(t, "Sam", snapshot.Profile.Name)
	assert.Equal(t, "24.69", snapshot.BMI.ValueLabel)
	assert.Equal(t, water.Intake{Date: snapshot.Water.Date, Count: 1}, snapshot.Water)
}
