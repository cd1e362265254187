package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("REDLINE_NODES")
	os.Unsetenv("REDLINE_CONNECT_TIMEOUT")
	opts := Load()
	if opts.ConnectTimeout != DefaultConnectTimeout {
		t.Errorf("expected default connect timeout, got %s", opts.ConnectTimeout)
	}
	if len(opts.Nodes) != 0 {
		t.Errorf("expected no nodes by default, got %v", opts.Nodes)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("REDLINE_NODES", "a:1, b:2")
	os.Setenv("REDLINE_CONNECT_TIMEOUT", "500ms")
	defer os.Unsetenv("REDLINE_NODES")
	defer os.Unsetenv("REDLINE_CONNECT_TIMEOUT")

	opts := Load()
	if len(opts.Nodes) != 2 || opts.Nodes[0] != "a:1" || opts.Nodes[1] != "b:2" {
		t.Errorf("expected trimmed node list, got %v", opts.Nodes)
	}
	if opts.ConnectTimeout != 500*time.Millisecond {
		t.Errorf("expected 500ms connect timeout, got %s", opts.ConnectTimeout)
	}
}

func TestValidateRejectsNoNodes(t *testing.T) {
	opts := DefaultClientOptions()
	if err := opts.Validate(); err == nil {
		t.Error("expected an error with no nodes configured")
	}
}

func TestValidateRejectsMalformedNode(t *testing.T) {
	opts := DefaultClientOptions()
	opts.Nodes = []string{"missing-port"}
	if err := opts.Validate(); err == nil {
		t.Error("expected an error for a node with no port")
	}
}

func TestValidateAcceptsGoodOptions(t *testing.T) {
	opts := DefaultClientOptions()
	opts.Nodes = []string{"localhost:6379"}
	if err := opts.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
