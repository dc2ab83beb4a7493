package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	want := map[string]bool{
		"run":        false,
		"path":       false,
		"serve":      false,
		"view":       false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug logged at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug not logged at debug level")
	}
}

func TestDemoGraph(t *testing.T) {
	g, err := demoGraph()
	if err != nil {
		t.Fatalf("demoGraph: %v", err)
	}
	if g.NodeCount() == 0 || g.EdgeCount() == 0 {
		t.Fatal("demo graph is empty")
	}

	// The demo diagram is fully connected: every node reaches the gateway.
	for _, n := range g.Nodes() {
		if _, ok := g.ShortestPath("gateway", n.ID); !ok {
			t.Errorf("node %s unreachable from gateway", n.ID)
		}
	}
}

func TestNewSimUsesDemoGraphByDefault(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	s, err := c.newSim("")
	if err != nil {
		t.Fatalf("newSim: %v", err)
	}
	if s.Graph().NodeCount() == 0 {
		t.Error("sim built with empty graph")
	}
}
