package main

import (
	"bytes"
	"flag"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/forkjoin/reduce"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.workers)
	assert.Equal(t, 100000, cfg.size)
	assert.Equal(t, 25000, cfg.limit)
	assert.Zero(t, cfg.grain)

	cfg, err = parseConfig([]string{"-nworkers", "2", "-size", "10", "-seed", "7"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.workers)
	assert.Equal(t, 10, cfg.size)
	assert.EqualValues(t, 7, cfg.seed)

	_, err = parseConfig([]string{"-nworkers", "0"})
	assert.Error(t, err)

	_, err = parseConfig([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun(t *testing.T) {
	procs := runtime.GOMAXPROCS(0)
	defer func() { assert.Equal(t, procs, runtime.GOMAXPROCS(0)) }()

	var out bytes.Buffer
	cfg := config{workers: 2, size: 5000, limit: 100, seed: 1}
	require.NoError(t, run(cfg, []int{10, 100}, &out))

	report := out.String()
	assert.Contains(t, report, "Before sort:")
	assert.Contains(t, report, "After sort:")
	// sorted ascending, so the first minimum and the first maximum are
	// found at the front of their runs
	assert.Contains(t, report, "Minimal element = 1 has index = 0")
	assert.Contains(t, report, "Number elements: 100")
	assert.Contains(t, report, "Cycle time parallel for is:")
}

func TestRunWithGrain(t *testing.T) {
	var out bytes.Buffer
	cfg := config{workers: 2, size: 5000, limit: 1000, grain: 64, seed: 3}
	require.NoError(t, run(cfg, nil, &out))
	assert.Contains(t, out.String(), "Duration parallel sort for 5000 elements")
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	err := run(config{workers: 1, size: 0, limit: 10, seed: 1}, nil, &out)
	assert.ErrorIs(t, err, reduce.ErrEmptyInput)
}

func TestCrossCheck(t *testing.T) {
	s := []int{5, 3, 8, 1, 9, 2, 9, 1}
	assert.NoError(t, crossCheck(s, 9, 4, 1, 3))
	assert.Error(t, crossCheck(s, 9, 6, 1, 3))
	assert.Error(t, crossCheck(s, 9, 4, 2, 5))
}
