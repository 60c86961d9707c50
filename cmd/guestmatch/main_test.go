package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/guestmatch/guestmatch/pkg/config"
	"github.com/guestmatch/guestmatch/pkg/matchgraph"
	"github.com/guestmatch/guestmatch/pkg/surface"
)

const smallRoster = "../../testdata/roster_small.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGraphCmdFlags(t *testing.T) {
	cmd := newGraphCmd(&globalOpts{})
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}

	for _, flag := range []string{"name", "output", "guests"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestRootPersistentFlags(t *testing.T) {
	f := newRootCmd().PersistentFlags()
	for _, flag := range []string{"config", "event", "roster"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing persistent flag: %s", flag)
		}
	}
}

func TestGraphCmdText(t *testing.T) {
	out, err := run(t, "graph", "--roster", smallRoster, "--name", "ALICE")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	if !strings.Contains(out, "Matches for Alice") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestGraphCmdJSON(t *testing.T) {
	out, err := run(t, "graph", "--roster", smallRoster, "--name", "alice", "--output", "json")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	var res matchgraph.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(res.Nodes) != 4 || len(res.Links) != 1 || len(res.Shortlist) != 1 {
		t.Errorf("got %d nodes, %d links, %d shortlist", len(res.Nodes), len(res.Links), len(res.Shortlist))
	}
}

func TestGraphCmdNotFound(t *testing.T) {
	out, err := run(t, "graph", "--roster", smallRoster, "--name", "zed")
	if !errors.Is(err, matchgraph.ErrGuestNotFound) {
		t.Errorf("err = %v, want ErrGuestNotFound", err)
	}
	if err != nil && err.Error() != surface.MsgNotFound {
		t.Errorf("err text = %q, want the single user-facing message", err.Error())
	}
	if strings.Contains(out, surface.MsgNotFound) {
		t.Errorf("message should be reported once, by main; command output was %q", out)
	}
}

func TestGraphCmdBlankName(t *testing.T) {
	_, err := run(t, "graph", "--roster", smallRoster, "--name", "  ")
	if err == nil || !strings.Contains(err.Error(), "Please enter your name") {
		t.Errorf("err = %v, want blank-name message", err)
	}
}

func TestGraphCmdBadOutput(t *testing.T) {
	_, err := run(t, "graph", "--roster", smallRoster, "--name", "alice", "--output", "xml")
	if err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestShortlistCmd(t *testing.T) {
	out, err := run(t, "shortlist", "--name", "amara okafor")
	if err != nil {
		t.Fatalf("shortlist: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d shortlist lines, want 2:\n%s", len(lines), out)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, " 98") {
			t.Errorf("unexpected line %q", l)
		}
	}
}

func TestGuestCmd(t *testing.T) {
	out, err := run(t, "guest", "carol", "--roster", smallRoster, "--viewer", "alice")
	if err != nil {
		t.Fatalf("guest: %v", err)
	}
	for _, want := range []string{"Carol", "No prompts this time. Chat with them!", "Match: 72"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "validate", "--roster", smallRoster)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "4 guests, 1 warning\n") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "validate", "--roster", smallRoster, "--strict"); err == nil {
		t.Error("expected --strict to fail on warnings")
	}
}

func TestSelectEvent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Events = []config.EventConfig{
		{Slug: "gala", Source: "gala.json"},
		{Slug: "mixer", Source: "s3://rosters/mixer.json"},
	}

	tests := []struct {
		name       string
		slug       string
		roster     string
		wantSlug   string
		wantSource string
		wantErr    bool
	}{
		{"first by default", "", "", "gala", "gala.json", false},
		{"by slug", "mixer", "", "mixer", "s3://rosters/mixer.json", false},
		{"roster override", "mixer", "local.json", "mixer", "local.json", false},
		{"unknown slug", "brunch", "", "", "", true},
		{"unknown slug with roster", "brunch", "b.json", "brunch", "b.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := selectEvent(cfg, tt.slug, tt.roster)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if ev.Slug != tt.wantSlug || ev.Source != tt.wantSource {
				t.Errorf("got (%q, %q), want (%q, %q)", ev.Slug, ev.Source, tt.wantSlug, tt.wantSource)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestGuestCmdNotFoundReportsOnce(t *testing.T) {
	_, err := run(t, "guest", "zed", "--roster", smallRoster)
	if !errors.Is(err, matchgraph.ErrGuestNotFound) {
		t.Fatalf("err = %v, want ErrGuestNotFound", err)
	}
	if err.Error() != surface.MsgNotFound {
		t.Errorf("err text = %q, want %q", err.Error(), surface.MsgNotFound)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 warnings"},
		{1, "1 warning"},
		{2, "2 warnings"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "warning"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
