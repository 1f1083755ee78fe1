package service

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	os.Setenv("ENVIRONMENT", "test")
	log.SetLevel(log.ErrorLevel)
	os.Exit(m.Run())
}
