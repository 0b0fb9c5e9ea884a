package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

const mondaySnapshot = `{
  "date": "2025-03-10",
  "durationMinutes": 60,
  "professional": {"workDays": ["segunda", "Terça"], "dayStart": "08:00", "dayEnd": "12:00"},
  "appointments": [
    {"id": 1, "startTime": "09:00", "durationMinutes": 60, "status": "agendado"},
    {"id": 2, "startTime": "08:00", "durationMinutes": 60, "status": "cancelado"}
  ],
  "blocks": [
    {"id": 7, "startDate": "2025-03-10", "startTime": "11:00", "endTime": "12:00"}
  ]
}`

func TestSnapshot_ToRequest(t *testing.T) {
	snapshot, err := ReadSnapshot(strings.NewReader(mondaySnapshot))
	require.NoError(t, err)

	req, err := snapshot.ToRequest()
	require.NoError(t, err)

	assert.Equal(t, 60, req.DurationMinutes)
	assert.Len(t, req.Appointments, 2)
	require.Len(t, req.Blocks, 1)
	assert.Equal(t, req.Blocks[0].StartDate, req.Blocks[0].EndDate)
}

func TestSnapshot_Rejects(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader(`{"date":"2025-03-10","extra":true}`))
	assert.Error(t, err)

	snapshot, err := ReadSnapshot(strings.NewReader(`{"date":"10/03/2025","durationMinutes":30,"professional":{"workDays":["segunda"],"dayStart":"08:00","dayEnd":"12:00"}}`))
	require.NoError(t, err)
	_, err = snapshot.ToRequest()
	assert.Error(t, err)
}

func TestSnapshot_UnknownStatus(t *testing.T) {
	snapshot, err := ReadSnapshot(strings.NewReader(`{
  "date": "2025-03-10",
  "durationMinutes": 60,
  "professional": {"workDays": ["segunda"], "dayStart": "08:00", "dayEnd": "12:00"},
  "appointments": [{"id": 3, "startTime": "09:00", "durationMinutes": 60, "status": "cancelled"}]
}`))
	require.NoError(t, err)

	_, err = snapshot.ToRequest()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown status "cancelled"`)

	snapshot.Appointments[0].Status = ""
	req, err := snapshot.ToRequest()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, req.Appointments[0].Status)
}

func TestRun(t *testing.T) {
	color.NoColor = true

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(mondaySnapshot), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(path, nil, &out))

	// 08:00 свободно (запись отменена), 09:00-10:00 занято, 11:00-12:00 перерыв
	assert.Contains(t, out.String(), "2 slots: 08:00 10:00")
	assert.Contains(t, out.String(), "busy 09:00-10:00  appointment #1")
	assert.Contains(t, out.String(), "busy 11:00-12:00  manual_block #7")
}

func TestRun_NonWorkingDayFromStdin(t *testing.T) {
	color.NoColor = true

	sunday := strings.Replace(mondaySnapshot, "2025-03-10", "2025-03-09", 1)

	var out bytes.Buffer
	require.NoError(t, run("-", strings.NewReader(sunday), &out))
	assert.Contains(t, out.String(), "non-working day")
}
