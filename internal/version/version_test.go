package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOmitsGoVersionUnderTest(t *testing.T) {
	assert.Empty(t, Get().GoVersion)
	assert.Equal(t, Version, Get().Version)
}

func TestBuildInfoString(t *testing.T) {
	assert.Equal(t, "v1.2.0", BuildInfo{Version: "v1.2.0"}.String())
	assert.Equal(t, "v1.2.0 (0123456)", BuildInfo{Version: "v1.2.0", GitCommit: "0123456789abcdef"}.String())
	assert.Equal(t, "v1.2.0 (abc)", BuildInfo{Version: "v1.2.0", GitCommit: "abc"}.String())
}
