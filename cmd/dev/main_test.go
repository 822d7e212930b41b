package main

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestDevLoggerLevel(t *testing.T) {
	assert.Equal(t, log.InfoLevel, devLogger(false, false).GetLevel())
	assert.Equal(t, log.DebugLevel, devLogger(true, false).GetLevel())
	assert.Equal(t, log.WarnLevel, devLogger(false, true).GetLevel())
}

func TestDebugAndQuietConflict(t *testing.T) {
	assert.Equal(t, 1, execute([]string{"--debug", "--quiet", "lint"}))
}

func TestCommandsRegistered(t *testing.T) {
	root := newRoot()
	for _, name := range []string{"build", "test", "lint", "check"} {
		c, _, err := root.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, c.Name())
		}
	}
}
