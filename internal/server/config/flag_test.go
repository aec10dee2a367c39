package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", ":8088", "-s", "flag_secret", "-t", "15", "-b", "bucket1"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8088", cfg.EndpointAddr)
	assert.Equal(t, "flag_secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "bucket1", cfg.S3Bucket)
	// untouched flags keep defaults
	assert.Equal(t, "uploads", cfg.UploadDir)
}
